package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type BuildEntity struct {
	ID        uuid.UUID
	Label     string
	CreatedAt time.Time
}

type ItemEntity struct {
	ID           uuid.UUID
	BuildID      uuid.UUID
	PartID       uuid.UUID
	SlotCategory model.Category
	Quantity     int
	CreatedAt    time.Time
}

var (
	buildColumns = []string{"id", "label", "created_at"}
	itemColumns  = []string{"id", "build_id", "part_id", "slot_category", "quantity", "created_at"}
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuild(row rowScanner) (*BuildEntity, error) {
	var e BuildEntity
	if err := row.Scan(&e.ID, &e.Label, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanItem(row rowScanner) (*ItemEntity, error) {
	var e ItemEntity
	err := row.Scan(
		&e.ID,
		&e.BuildID,
		&e.PartID,
		&e.SlotCategory,
		&e.Quantity,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func buildEntityToModel(e *BuildEntity) *model.Build {
	return &model.Build{
		ID:        e.ID,
		Label:     e.Label,
		CreatedAt: e.CreatedAt,
	}
}

func itemEntityToModel(e *ItemEntity) model.BuildItem {
	return model.BuildItem{
		ID:           e.ID,
		BuildID:      e.BuildID,
		PartID:       e.PartID,
		SlotCategory: e.SlotCategory,
		Quantity:     e.Quantity,
		CreatedAt:    e.CreatedAt,
	}
}
