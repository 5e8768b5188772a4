package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PartEventType string

const (
	PartCreated PartEventType = "part.created"
	PartDeleted PartEventType = "part.deleted"
)

// PartEvent announces a catalog change. SKU, Category and Price are empty for deletions.
type PartEvent struct {
	EventID    uuid.UUID
	Type       PartEventType
	PartID     uuid.UUID
	SKU        string
	Category   Category
	Price      decimal.Decimal
	OccurredAt time.Time
}
