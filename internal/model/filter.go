package model

import (
	"bytes"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// PartsFilter is a catalog search request. Empty strings and nil bounds mean "no filter".
// All set filters are AND-combined.
type PartsFilter struct {
	// Q matches a case-insensitive substring of name, brand or sku.
	Q string
	// Category is compared exactly, case included.
	Category string
	// Brand matches a case-insensitive substring.
	Brand string
	// EngineModel matches a case-insensitive substring of any profile's engine model.
	EngineModel string
	// ChainSize is compared exactly against any profile's chain size.
	ChainSize string
	// PriceMin and PriceMax are inclusive.
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	// Page is 1-based.
	Page     int
	PageSize int
}

type PartsPage struct {
	Items    []*Part
	Total    int
	Page     int
	PageSize int
}

// Normalize applies pagination defaults: page < 1 becomes 1, page size < 1 becomes 20.
func (f PartsFilter) Normalize() PartsFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Offset is the number of ordered matches preceding the requested page.
// The result saturates instead of overflowing for absurd page numbers.
func (f PartsFilter) Offset() int {
	f = f.Normalize()
	maxInt := int(^uint(0) >> 1)
	if f.Page-1 > maxInt/f.PageSize {
		return maxInt
	}
	return (f.Page - 1) * f.PageSize
}

// EmptyPriceRange reports a reversed range, which can never match.
func (f PartsFilter) EmptyPriceRange() bool {
	return f.PriceMin != nil && f.PriceMax != nil && f.PriceMin.GreaterThan(*f.PriceMax)
}

func (f PartsFilter) Matches(p *Part) bool {
	if p == nil {
		return false
	}

	if f.Q != "" &&
		!containsFold(p.Name, f.Q) &&
		!containsFold(p.Brand, f.Q) &&
		!containsFold(p.SKU, f.Q) {
		return false
	}
	if f.Category != "" && string(p.Category) != f.Category {
		return false
	}
	if f.Brand != "" && !containsFold(p.Brand, f.Brand) {
		return false
	}
	if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
		return false
	}
	if f.EngineModel != "" || f.ChainSize != "" {
		return f.matchesAnyProfile(p.CompatibilityProfiles)
	}

	return true
}

// matchesAnyProfile requires a single profile to satisfy every profile-level filter.
func (f PartsFilter) matchesAnyProfile(profiles []CompatibilityProfile) bool {
	for i := range profiles {
		pr := &profiles[i]
		if f.EngineModel != "" && (pr.EngineModel == nil || !containsFold(*pr.EngineModel, f.EngineModel)) {
			continue
		}
		if f.ChainSize != "" && (pr.ChainSize == nil || *pr.ChainSize != f.ChainSize) {
			continue
		}
		return true
	}
	return false
}

// QueryParts evaluates a filter against a catalog keyed by part id.
// Matches are ordered newest first with the id as tie breaker, then paginated.
func QueryParts(catalog map[uuid.UUID]*Part, f PartsFilter) PartsPage {
	f = f.Normalize()

	matched := make([]*Part, 0)
	if !f.EmptyPriceRange() {
		for _, p := range catalog {
			if f.Matches(p) {
				matched = append(matched, p)
			}
		}
	}
	SortPartsNewestFirst(matched)

	page := PartsPage{
		Items:    []*Part{},
		Total:    len(matched),
		Page:     f.Page,
		PageSize: f.PageSize,
	}

	offset := f.Offset()
	if offset >= len(matched) {
		return page
	}
	end := len(matched)
	if f.PageSize < end-offset {
		end = offset + f.PageSize
	}
	page.Items = matched[offset:end]

	return page
}

func SortPartsNewestFirst(parts []*Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		if !parts[i].CreatedAt.Equal(parts[j].CreatedAt) {
			return parts[i].CreatedAt.After(parts[j].CreatedAt)
		}
		return bytes.Compare(parts[i].ID[:], parts[j].ID[:]) < 0
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
