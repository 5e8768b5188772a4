package seed

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type PartStore interface {
	Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	List(ctx context.Context, filter model.PartsFilter) (model.PartsPage, error)
}

type BuildStore interface {
	CreateBuild(ctx context.Context, label string) (*model.Build, error)
	AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error)
}

const SampleBuildLabel = "John Doe"

// CatalogBootstrap fills an empty catalog with the starter parts and one sample
// build holding each of them. A non-empty catalog is left as is.
func CatalogBootstrap(ctx context.Context, parts PartStore, builds BuildStore) (bool, error) {
	const op = "seed.CatalogBootstrap"

	page, err := parts.List(ctx, model.PartsFilter{Page: 1, PageSize: 1})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if page.Total > 0 {
		return false, nil
	}

	created := make([]*model.Part, 0, len(starterParts()))
	for _, params := range starterParts() {
		p, err := parts.Create(ctx, params)
		if err != nil {
			return false, fmt.Errorf("%s: part %s: %w", op, params.SKU, err)
		}
		created = append(created, p)
	}

	build, err := builds.CreateBuild(ctx, SampleBuildLabel)
	if err != nil {
		return false, fmt.Errorf("%s: build: %w", op, err)
	}
	for _, p := range created {
		if _, err := builds.AddItem(ctx, model.AddItemParams{
			BuildID:      build.ID,
			PartID:       p.ID,
			SlotCategory: p.Category,
			Quantity:     1,
		}); err != nil {
			return false, fmt.Errorf("%s: item %s: %w", op, p.SKU, err)
		}
	}

	return true, nil
}

func starterParts() []model.CreatePartParams {
	return []model.CreatePartParams{
		{
			Name:        "Predator 212 Engine",
			SKU:         "PRED212",
			Brand:       "Harbor Freight",
			Category:    model.CategoryEngine,
			Description: lo.ToPtr("212cc OHV horizontal shaft gas engine"),
			Price:       decimal.RequireFromString("149.99"),
			ImageURLs:   []string{},
			Profiles: []model.ProfileAttributes{
				{
					EngineModel:   lo.ToPtr("212cc"),
					ShaftDiameter: lo.ToPtr(`3/4"`),
					Notes:         lo.ToPtr("Keyed shaft, max RPM 3600, gasoline fuel"),
				},
			},
		},
		{
			Name:        "Max Torque Clutch",
			SKU:         "MT-12T",
			Brand:       "Max Torque",
			Category:    model.CategoryClutch,
			Description: lo.ToPtr("12 tooth centrifugal clutch for #35 chain"),
			Price:       decimal.RequireFromString("45.99"),
			ImageURLs:   []string{},
			Profiles: []model.ProfileAttributes{
				{
					ShaftDiameter: lo.ToPtr(`3/4"`),
					ChainSize:     lo.ToPtr("#35"),
					Notes:         lo.ToPtr("12 tooth, engagement RPM 1800"),
				},
			},
		},
		{
			Name:        "60T Sprocket",
			SKU:         "GPS-60T",
			Brand:       "Go Power Sports",
			Category:    model.CategorySprocket,
			Description: lo.ToPtr("60 tooth rear axle sprocket"),
			Price:       decimal.RequireFromString("24.99"),
			ImageURLs:   []string{},
			Profiles: []model.ProfileAttributes{
				{
					ChainSize:   lo.ToPtr("#35"),
					BoltPattern: lo.ToPtr("4-bolt"),
					Notes:       lo.ToPtr("60 tooth sprocket"),
				},
			},
		},
		{
			Name:        "#35 Chain 10ft",
			SKU:         "GPS-CHAIN35-10",
			Brand:       "Go Power Sports",
			Category:    model.CategoryChain,
			Description: lo.ToPtr("#35 roller chain, 10 feet"),
			Price:       decimal.RequireFromString("19.99"),
			ImageURLs:   []string{},
			Profiles: []model.ProfileAttributes{
				{
					ChainSize: lo.ToPtr("#35"),
					Notes:     lo.ToPtr(`10ft length, 3/8" pitch`),
				},
			},
		},
	}
}
