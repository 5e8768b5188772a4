package model

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Build struct {
	ID uuid.UUID
	// Name or owner label supplied by the user.
	Label     string
	CreatedAt time.Time
}

type BuildItem struct {
	ID      uuid.UUID
	BuildID uuid.UUID
	PartID  uuid.UUID
	// Slot the part fills in the build; may differ from the part's own category.
	SlotCategory Category
	// Always at least 1.
	Quantity  int
	CreatedAt time.Time
	// Referenced part with its compatibility profiles, loaded on read.
	Part *Part
}

// BuildView is a build together with its items and the live total.
type BuildView struct {
	Build
	Items      []BuildItem
	TotalPrice decimal.Decimal
}

type AddItemParams struct {
	BuildID      uuid.UUID
	PartID       uuid.UUID
	SlotCategory Category
	Quantity     int
}

// UpdateItemParams carries a partial update; nil fields are left untouched.
type UpdateItemParams struct {
	ID           uuid.UUID
	BuildID      *uuid.UUID
	PartID       *uuid.UUID
	SlotCategory *Category
	Quantity     *int
}

func (p UpdateItemParams) Empty() bool {
	return p.BuildID == nil && p.PartID == nil && p.SlotCategory == nil && p.Quantity == nil
}

func (p UpdateItemParams) Apply(item *BuildItem) {
	if p.BuildID != nil {
		item.BuildID = *p.BuildID
	}
	if p.PartID != nil {
		item.PartID = *p.PartID
	}
	if p.SlotCategory != nil {
		item.SlotCategory = *p.SlotCategory
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
}

// BuildItemsFilter holds optional equality filters, AND-combined.
type BuildItemsFilter struct {
	BuildID      *uuid.UUID
	PartID       *uuid.UUID
	SlotCategory *Category
}

func (f BuildItemsFilter) Matches(it BuildItem) bool {
	if f.BuildID != nil && it.BuildID != *f.BuildID {
		return false
	}
	if f.PartID != nil && it.PartID != *f.PartID {
		return false
	}
	if f.SlotCategory != nil && it.SlotCategory != *f.SlotCategory {
		return false
	}
	return true
}

// TotalPrice sums price * quantity over items using the prices of the embedded parts.
// Items without a loaded part contribute nothing.
func TotalPrice(items []BuildItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Part == nil {
			continue
		}
		total = total.Add(it.Part.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func SortItemsByID(items []BuildItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return bytes.Compare(items[i].ID[:], items[j].ID[:]) < 0
	})
}

func SortItemsNewestFirst(items []BuildItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return bytes.Compare(items[i].ID[:], items[j].ID[:]) > 0
	})
}
