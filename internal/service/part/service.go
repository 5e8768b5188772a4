package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

// maxPrice is the first value that does not fit NUMERIC(10,2).
var maxPrice = decimal.New(1, 8)

type PartRepository interface {
	Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
	List(ctx context.Context, filter model.PartsFilter) (model.PartsPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventSender interface {
	SendPartEvent(ctx context.Context, event model.PartEvent) error
}

type service struct {
	repo           PartRepository
	events         EventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repo PartRepository,
	events EventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) ListParts(ctx context.Context, filter model.PartsFilter) (model.PartsPage, error) {
	const op = "part.service.ListParts"
	log := logger.With(
		logger.String("q", filter.Q),
		logger.String("category", filter.Category),
		logger.Int("page", filter.Page),
		logger.Int("page_size", filter.PageSize),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	page, err := s.repo.List(ctx, filter.Normalize())
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return model.PartsPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *service) Part(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	const op = "part.service.Part"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository part by id",
			logger.String("part_id", id.String()),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// CreatePart stores the part and its inline profiles atomically and announces it.
func (s *service) CreatePart(ctx context.Context, params model.CreatePartParams) (*model.Part, error) {
	const op = "part.service.CreatePart"

	params.Name = strings.TrimSpace(params.Name)
	params.SKU = strings.TrimSpace(params.SKU)
	params.Brand = strings.TrimSpace(params.Brand)

	log := logger.With(
		logger.String("sku", params.SKU),
		logger.String("category", string(params.Category)),
	)

	if err := validatePart(params); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	p, err := s.repo.Create(wctx, params)
	if err != nil {
		log.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.PartEvent{
		EventID:    uuid.New(),
		Type:       model.PartCreated,
		PartID:     p.ID,
		SKU:        p.SKU,
		Category:   p.Category,
		Price:      p.Price,
		OccurredAt: p.CreatedAt,
	})

	return p, nil
}

// DeletePart removes the part with its profiles and every build item using it.
func (s *service) DeletePart(ctx context.Context, id uuid.UUID) error {
	const op = "part.service.DeletePart"

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(wctx, id); err != nil {
		logger.Error(ctx, "repository delete part",
			logger.String("part_id", id.String()),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.PartEvent{
		EventID:    uuid.New(),
		Type:       model.PartDeleted,
		PartID:     id,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// publish only logs send failures.
func (s *service) publish(ctx context.Context, event model.PartEvent) {
	if err := s.events.SendPartEvent(ctx, event); err != nil {
		logger.Warn(ctx, "send part event",
			logger.String("type", string(event.Type)),
			logger.String("part_id", event.PartID.String()),
			logger.ErrorF(err),
		)
	}
}

func validatePart(params model.CreatePartParams) error {
	var errs []model.FieldError
	add := func(field, msg string) {
		errs = append(errs, model.FieldError{Field: field, Message: msg})
	}

	if params.Name == "" {
		add("name", "is required")
	}
	if params.SKU == "" {
		add("sku", "is required")
	}
	if params.Brand == "" {
		add("brand", "is required")
	}
	if !params.Category.Valid() {
		add("category", "is not a known category")
	}
	switch {
	case !params.Price.IsPositive():
		add("price", "must be greater than 0")
	case !params.Price.Equal(params.Price.Round(2)):
		add("price", "must have at most 2 decimal places")
	case params.Price.GreaterThanOrEqual(maxPrice):
		add("price", "must be less than 100000000")
	}

	if len(errs) > 0 {
		return model.NewValidationErrors(errs)
	}
	return nil
}
