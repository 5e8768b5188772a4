package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryEngine   Category = "engine"
	CategoryClutch   Category = "clutch"
	CategorySprocket Category = "sprocket"
	CategoryChain    Category = "chain"
	CategoryTire     Category = "tire"
	CategoryWheel    Category = "wheel"
	CategoryBrake    Category = "brake"
	CategoryFrame    Category = "frame"
	CategorySeat     Category = "seat"
	CategorySteering Category = "steering"
	CategoryOther    Category = "other"
)

// Categories lists the closed set used both for part categories and build slots.
var Categories = []Category{
	CategoryEngine,
	CategoryClutch,
	CategorySprocket,
	CategoryChain,
	CategoryTire,
	CategoryWheel,
	CategoryBrake,
	CategoryFrame,
	CategorySeat,
	CategorySteering,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Part struct {
	// Stable unique identifier of the part.
	ID uuid.UUID
	// Human-readable part name.
	Name string
	// Stock-keeping code, unique across the catalog.
	SKU   string
	Brand string
	// Catalog category of the part.
	Category Category
	// Optional free-text description.
	Description *string
	// Unit price. Kept exact; converted to a float only at the HTTP boundary.
	Price decimal.Decimal
	// Ordered image references.
	ImageURLs []string
	// Fitment attributes owned by the part, deleted together with it.
	CompatibilityProfiles []CompatibilityProfile
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CompatibilityProfile is a set of opaque fitment attributes used for filtering and display.
// Every attribute is optional.
type CompatibilityProfile struct {
	ID            uuid.UUID
	PartID        uuid.UUID
	EngineModel   *string
	ShaftDiameter *string
	BoltPattern   *string
	ChainSize     *string
	FrameType     *string
	Notes         *string
}

type ProfileAttributes struct {
	EngineModel   *string
	ShaftDiameter *string
	BoltPattern   *string
	ChainSize     *string
	FrameType     *string
	Notes         *string
}

type CreatePartParams struct {
	Name        string
	SKU         string
	Brand       string
	Category    Category
	Description *string
	Price       decimal.Decimal
	ImageURLs   []string
	Profiles    []ProfileAttributes
}

type CreateProfileParams struct {
	PartID uuid.UUID
	ProfileAttributes
}

// UpdateProfileParams carries a partial update; nil fields are left untouched.
type UpdateProfileParams struct {
	ID     uuid.UUID
	PartID *uuid.UUID
	ProfileAttributes
}

func (p UpdateProfileParams) Empty() bool {
	return p.PartID == nil &&
		p.EngineModel == nil &&
		p.ShaftDiameter == nil &&
		p.BoltPattern == nil &&
		p.ChainSize == nil &&
		p.FrameType == nil &&
		p.Notes == nil
}

// Apply writes the set fields of the update onto profile.
func (p UpdateProfileParams) Apply(profile *CompatibilityProfile) {
	if p.PartID != nil {
		profile.PartID = *p.PartID
	}
	if p.EngineModel != nil {
		profile.EngineModel = p.EngineModel
	}
	if p.ShaftDiameter != nil {
		profile.ShaftDiameter = p.ShaftDiameter
	}
	if p.BoltPattern != nil {
		profile.BoltPattern = p.BoltPattern
	}
	if p.ChainSize != nil {
		profile.ChainSize = p.ChainSize
	}
	if p.FrameType != nil {
		profile.FrameType = p.FrameType
	}
	if p.Notes != nil {
		profile.Notes = p.Notes
	}
}

type ProfilesFilter struct {
	PartID *uuid.UUID
}
