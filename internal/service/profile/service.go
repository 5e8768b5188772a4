package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

type ProfileRepository interface {
	Create(ctx context.Context, params model.CreateProfileParams) (*model.CompatibilityProfile, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*model.CompatibilityProfile, error)
	List(ctx context.Context, filter model.ProfilesFilter) ([]model.CompatibilityProfile, error)
	Update(ctx context.Context, upd model.UpdateProfileParams) (*model.CompatibilityProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PartReader interface {
	PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
}

type service struct {
	repo           ProfileRepository
	parts          PartReader
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewProfileService(
	repo ProfileRepository,
	parts PartReader,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		parts:          parts,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) List(ctx context.Context, filter model.ProfilesFilter) ([]model.CompatibilityProfile, error) {
	const op = "profile.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list profiles", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Profile(ctx context.Context, id uuid.UUID) (*model.CompatibilityProfile, error) {
	const op = "profile.service.Profile"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.ProfileByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository profile by id",
			logger.String("profile_id", id.String()),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// Create attaches a profile to an existing part.
func (s *service) Create(ctx context.Context, params model.CreateProfileParams) (*model.CompatibilityProfile, error) {
	const op = "profile.service.Create"
	log := logger.With(
		logger.String("part_id", params.PartID.String()),
	)

	if err := s.ensurePart(ctx, params.PartID); err != nil {
		log.Warn(ctx, "owning part lookup", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	p, err := s.repo.Create(wctx, params)
	if err != nil {
		log.Error(ctx, "repository create profile", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// Update applies a partial update. A new owning part must exist.
func (s *service) Update(ctx context.Context, upd model.UpdateProfileParams) (*model.CompatibilityProfile, error) {
	const op = "profile.service.Update"
	log := logger.With(
		logger.String("profile_id", upd.ID.String()),
	)

	if upd.PartID != nil {
		if err := s.ensurePart(ctx, *upd.PartID); err != nil {
			log.Warn(ctx, "new owning part lookup", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	p, err := s.repo.Update(wctx, upd)
	if err != nil {
		log.Error(ctx, "repository update profile", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "profile.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete profile",
			logger.String("profile_id", id.String()),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ensurePart(ctx context.Context, partID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	_, err := s.parts.PartByID(ctx, partID)
	return err
}
