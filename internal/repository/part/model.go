package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type PartEntity struct {
	ID          uuid.UUID
	Name        string
	SKU         string
	Brand       string
	Category    model.Category
	Description *string
	Price       decimal.Decimal
	ImageURLs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProfileEntity struct {
	ID            uuid.UUID
	PartID        uuid.UUID
	EngineModel   *string
	ShaftDiameter *string
	BoltPattern   *string
	ChainSize     *string
	FrameType     *string
	Notes         *string
	CreatedAt     time.Time
}

var partColumns = []string{
	"p.id",
	"p.name",
	"p.sku",
	"p.brand",
	"p.category",
	"p.description",
	"p.price",
	"p.image_urls",
	"p.created_at",
	"p.updated_at",
}

// ProfileColumns is shared with the profile repository so both scan rows the same way.
var ProfileColumns = []string{
	"id",
	"part_id",
	"engine_model",
	"shaft_diameter",
	"bolt_pattern",
	"chain_size",
	"frame_type",
	"notes",
	"created_at",
}

var ProfileReturning = strings.Join(ProfileColumns, ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPart(row rowScanner) (*PartEntity, error) {
	var e PartEntity
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.SKU,
		&e.Brand,
		&e.Category,
		&e.Description,
		&e.Price,
		&e.ImageURLs,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func ScanProfile(row rowScanner) (*ProfileEntity, error) {
	var e ProfileEntity
	err := row.Scan(
		&e.ID,
		&e.PartID,
		&e.EngineModel,
		&e.ShaftDiameter,
		&e.BoltPattern,
		&e.ChainSize,
		&e.FrameType,
		&e.Notes,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
