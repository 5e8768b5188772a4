package model

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(parts ...*Part) map[uuid.UUID]*Part {
	return lo.SliceToMap(parts, func(p *Part) (uuid.UUID, *Part) { return p.ID, p })
}

func predator(created time.Time) *Part {
	return &Part{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Predator 212 Engine",
		SKU:       "PRED212",
		Brand:     "Harbor Freight",
		Category:  CategoryEngine,
		Price:     decimal.RequireFromString("149.99"),
		CreatedAt: created,
		CompatibilityProfiles: []CompatibilityProfile{
			{ShaftDiameter: lo.ToPtr(`3/4"`), EngineModel: lo.ToPtr("212cc")},
		},
	}
}

func randomCatalog(n int) map[uuid.UUID]*Part {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	parts := make([]*Part, 0, n)
	for i := range n {
		parts = append(parts, &Part{
			ID:       uuid.Must(uuid.NewV7()),
			Name:     gofakeit.ProductName(),
			SKU:      fmt.Sprintf("SKU-%03d", i),
			Brand:    gofakeit.RandomString([]string{"Go Power Sports", "Max Torque", "Harbor Freight"}),
			Category: Categories[gofakeit.IntN(len(Categories))],
			Price:    decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
			// Every third part shares a timestamp so the id tie breaker matters.
			CreatedAt: base.Add(time.Duration(i/3) * time.Minute),
		})
	}
	return catalogOf(parts...)
}

func TestQueryPartsPredatorScenario(t *testing.T) {
	t.Parallel()

	p := predator(time.Now())
	catalog := catalogOf(p)

	byCategory := QueryParts(catalog, PartsFilter{Category: "engine"})
	require.Equal(t, 1, byCategory.Total)
	assert.Equal(t, p.ID, byCategory.Items[0].ID)

	byChain := QueryParts(catalog, PartsFilter{ChainSize: "#35"})
	assert.Equal(t, 0, byChain.Total)
	assert.Empty(t, byChain.Items)
}

func TestQueryPartsReversedPriceRange(t *testing.T) {
	t.Parallel()

	catalog := randomCatalog(30)
	page := QueryParts(catalog, PartsFilter{
		PriceMin: lo.ToPtr(decimal.RequireFromString("100")),
		PriceMax: lo.ToPtr(decimal.RequireFromString("99.99")),
	})

	assert.Equal(t, 0, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestQueryPartsPriceBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	p := predator(time.Now())
	price := decimal.RequireFromString("149.99")

	page := QueryParts(catalogOf(p), PartsFilter{PriceMin: &price, PriceMax: &price})
	assert.Equal(t, 1, page.Total)
}

func TestQueryPartsPaginationIdentity(t *testing.T) {
	t.Parallel()

	catalog := randomCatalog(47)
	full := QueryParts(catalog, PartsFilter{PageSize: 1000})
	require.Equal(t, 47, full.Total)

	for _, size := range []int{1, 5, 10, 20, 47, 50} {
		var concatenated []*Part
		for page := 1; ; page++ {
			res := QueryParts(catalog, PartsFilter{Page: page, PageSize: size})
			assert.Equal(t, 47, res.Total)
			if len(res.Items) == 0 {
				break
			}
			concatenated = append(concatenated, res.Items...)
		}
		assert.Equal(t, full.Items, concatenated, "page size %d", size)
	}
}

func TestQueryPartsOrdering(t *testing.T) {
	t.Parallel()

	page := QueryParts(randomCatalog(25), PartsFilter{PageSize: 100})
	for i := 1; i < len(page.Items); i++ {
		prev, cur := page.Items[i-1], page.Items[i]
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Negative(t, bytes.Compare(prev.ID[:], cur.ID[:]))
			continue
		}
		assert.True(t, prev.CreatedAt.After(cur.CreatedAt))
	}
}

func TestQueryPartsFreeTextIsSubset(t *testing.T) {
	t.Parallel()

	catalog := randomCatalog(40)
	p := predator(time.Now())
	catalog[p.ID] = p

	base := PartsFilter{PageSize: 1000, Brand: "harbor"}
	all := QueryParts(catalog, base)

	withQ := base
	withQ.Q = "pred"
	narrowed := QueryParts(catalog, withQ)

	require.NotZero(t, narrowed.Total)
	assert.Subset(t, all.Items, narrowed.Items)
	assert.LessOrEqual(t, narrowed.Total, all.Total)
}

func TestQueryPartsOutOfRangePage(t *testing.T) {
	t.Parallel()

	page := QueryParts(randomCatalog(7), PartsFilter{Page: 3, PageSize: 5})
	assert.Equal(t, 7, page.Total)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Page)
}

func TestPartsFilterMatches(t *testing.T) {
	t.Parallel()

	clutch := &Part{
		Name:     "Max Torque Clutch",
		SKU:      "MT-12T",
		Brand:    "Max Torque",
		Category: CategoryClutch,
		Price:    decimal.RequireFromString("45.99"),
		CompatibilityProfiles: []CompatibilityProfile{
			{EngineModel: lo.ToPtr("Predator 212"), ChainSize: lo.ToPtr("#40")},
			{EngineModel: lo.ToPtr("Tillotson 225"), ChainSize: lo.ToPtr("#35")},
		},
	}

	tests := []struct {
		name   string
		filter PartsFilter
		want   bool
	}{
		{name: "empty filter", filter: PartsFilter{}, want: true},
		{name: "q matches sku case-insensitively", filter: PartsFilter{Q: "mt-12"}, want: true},
		{name: "q matches brand", filter: PartsFilter{Q: "TORQUE"}, want: true},
		{name: "q without match", filter: PartsFilter{Q: "sprocket"}, want: false},
		{name: "category is case-sensitive", filter: PartsFilter{Category: "Clutch"}, want: false},
		{name: "category exact", filter: PartsFilter{Category: "clutch"}, want: true},
		{name: "brand substring", filter: PartsFilter{Brand: "max"}, want: true},
		{name: "engine model substring", filter: PartsFilter{EngineModel: "predator"}, want: true},
		{name: "chain size exact", filter: PartsFilter{ChainSize: "#35"}, want: true},
		{name: "chain size is not a substring match", filter: PartsFilter{ChainSize: "35"}, want: false},
		{name: "engine and chain on the same profile", filter: PartsFilter{EngineModel: "tillotson", ChainSize: "#35"}, want: true},
		{name: "engine and chain on different profiles", filter: PartsFilter{EngineModel: "predator", ChainSize: "#35"}, want: false},
		{name: "price above max", filter: PartsFilter{PriceMax: lo.ToPtr(decimal.RequireFromString("45.98"))}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.filter.Matches(clutch))
		})
	}
}

func TestPartsFilterNormalizeAndOffset(t *testing.T) {
	t.Parallel()

	f := PartsFilter{Page: 0, PageSize: -1}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PageSize)
	assert.Equal(t, 0, f.Offset())

	assert.Equal(t, 20, PartsFilter{Page: 3, PageSize: 10}.Offset())

	huge := PartsFilter{Page: int(^uint(0) >> 1), PageSize: 1000}
	assert.Equal(t, int(^uint(0)>>1), huge.Offset())
}
