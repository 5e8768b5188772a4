package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

type BuildRepository interface {
	CreateBuild(ctx context.Context, label string) (*model.Build, error)
	BuildByID(ctx context.Context, id uuid.UUID) (*model.Build, error)
	ListBuilds(ctx context.Context) ([]model.Build, error)
	DeleteBuild(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*model.BuildItem, error)
	ListItems(ctx context.Context, filter model.BuildItemsFilter) ([]model.BuildItem, error)
	UpdateItem(ctx context.Context, upd model.UpdateItemParams) (*model.BuildItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type PartReader interface {
	PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
	PartsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Part, error)
}

type service struct {
	repo           BuildRepository
	parts          PartReader
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewBuildService(
	repo BuildRepository,
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

func (s *service) CreateBuild(ctx context.Context, label string) (*model.Build, error) {
	const op = "build.service.CreateBuild"

	label = strings.TrimSpace(label)
	if label == "" {
		logger.Warn(ctx, "validation: empty build label")
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("label", "is required"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	b, err := s.repo.CreateBuild(ctx, label)
	if err != nil {
		logger.Error(ctx, "repository create build", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *service) ListBuilds(ctx context.Context) ([]model.Build, error) {
	const op = "build.service.ListBuilds"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	builds, err := s.repo.ListBuilds(ctx)
	if err != nil {
		logger.Error(ctx, "repository list builds", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return builds, nil
}

// Build returns the build with its items ordered by id and the live total price.
func (s *service) Build(ctx context.Context, id uuid.UUID) (*model.BuildView, error) {
	const op = "build.service.Build"
	log := logger.With(
		logger.String("build_id", id.String()),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	b, err := s.repo.BuildByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository build by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.repo.ListItems(ctx, model.BuildItemsFilter{BuildID: &id})
	if err != nil {
		log.Error(ctx, "repository list build items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err = s.embedParts(ctx, items)
	if err != nil {
		log.Error(ctx, "embed parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	model.SortItemsByID(items)

	return &model.BuildView{
		Build:      *b,
		Items:      items,
		TotalPrice: model.TotalPrice(items),
	}, nil
}

func (s *service) TotalPrice(ctx context.Context, buildID uuid.UUID) (decimal.Decimal, error) {
	view, err := s.Build(ctx, buildID)
	if err != nil {
		return decimal.Zero, err
	}
	return view.TotalPrice, nil
}

// DeleteBuild removes the build together with its items.
func (s *service) DeleteBuild(ctx context.Context, id uuid.UUID) error {
	const op = "build.service.DeleteBuild"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.DeleteBuild(ctx, id); err != nil {
		logger.Error(ctx, "repository delete build",
			logger.String("build_id", id.String()),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddItem always creates a new item; an identical earlier item is left as is.
func (s *service) AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error) {
	const op = "build.service.AddItem"
	log := logger.With(
		logger.String("build_id", params.BuildID.String()),
		logger.String("part_id", params.PartID.String()),
		logger.String("slot_category", string(params.SlotCategory)),
		logger.Int("quantity", params.Quantity),
	)

	if err := validateItem(&params.SlotCategory, &params.Quantity); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ensureBuild(ctx, params.BuildID); err != nil {
		log.Warn(ctx, "build lookup", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	part, err := s.part(ctx, params.PartID)
	if err != nil {
		log.Warn(ctx, "part lookup", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	item, err := s.repo.AddItem(wctx, params)
	if err != nil {
		log.Error(ctx, "repository add item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	item.Part = part

	return item, nil
}

func (s *service) Item(ctx context.Context, id uuid.UUID) (*model.BuildItem, error) {
	const op = "build.service.Item"
	log := logger.With(
		logger.String("item_id", id.String()),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	item, err := s.repo.ItemByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository item by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.Part, err = s.parts.PartByID(ctx, item.PartID); err != nil {
		log.Error(ctx, "part of item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListItems returns matching items newest first, each with its part.
func (s *service) ListItems(ctx context.Context, filter model.BuildItemsFilter) ([]model.BuildItem, error) {
	const op = "build.service.ListItems"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list build items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err = s.embedParts(ctx, items)
	if err != nil {
		logger.Error(ctx, "embed parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// UpdateItem applies a partial update. A changed build or part must still resolve.
func (s *service) UpdateItem(ctx context.Context, upd model.UpdateItemParams) (*model.BuildItem, error) {
	const op = "build.service.UpdateItem"
	log := logger.With(
		logger.String("item_id", upd.ID.String()),
	)

	if err := validateItem(upd.SlotCategory, upd.Quantity); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rctx, rcancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rcancel()

	if _, err := s.repo.ItemByID(rctx, upd.ID); err != nil {
		log.Warn(ctx, "repository item by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if upd.BuildID != nil {
		if err := s.ensureBuild(ctx, *upd.BuildID); err != nil {
			log.Warn(ctx, "new build lookup", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if upd.PartID != nil {
		if _, err := s.part(ctx, *upd.PartID); err != nil {
			log.Warn(ctx, "new part lookup", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	wctx, wcancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wcancel()

	item, err := s.repo.UpdateItem(wctx, upd)
	if err != nil {
		log.Error(ctx, "repository update item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.Part, err = s.part(ctx, item.PartID); err != nil {
		log.Error(ctx, "part of item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// RemoveItem fails with not found for an id that is already gone.
func (s *service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	const op = "build.service.RemoveItem"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		logger.Error(ctx, "repository delete item",
			logger.String("item_id", id.String()),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ensureBuild(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	_, err := s.repo.BuildByID(ctx, id)
	return err
}

func (s *service) part(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	return s.parts.PartByID(ctx, id)
}

// embedParts attaches parts to items. Items whose part disappeared meanwhile are dropped,
// matching the cascade that is about to remove them.
func (s *service) embedParts(ctx context.Context, items []model.BuildItem) ([]model.BuildItem, error) {
	if len(items) == 0 {
		return []model.BuildItem{}, nil
	}

	ids := lo.Uniq(lo.Map(items, func(it model.BuildItem, _ int) uuid.UUID {
		return it.PartID
	}))

	parts, err := s.parts.PartsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.BuildItem, 0, len(items))
	for _, it := range items {
		p, ok := parts[it.PartID]
		if !ok {
			continue
		}
		it.Part = p
		out = append(out, it)
	}

	return out, nil
}

func validateItem(slot *model.Category, quantity *int) error {
	var errs []model.FieldError
	if slot != nil && !slot.Valid() {
		errs = append(errs, model.FieldError{Field: "slotCategory", Message: "is not a known category"})
	}
	if quantity != nil && *quantity < 1 {
		errs = append(errs, model.FieldError{Field: "quantity", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return model.NewValidationErrors(errs)
	}
	return nil
}
