package converter

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

func TestPartsQueryToFilter(t *testing.T) {
	t.Parallel()

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		f, err := PartsQueryToFilter(url.Values{
			"q":            {"pred"},
			"category":     {"engine"},
			"brand":        {"harbor"},
			"engine_model": {"212"},
			"chain_size":   {"#35"},
			"price_min":    {"10"},
			"price_max":    {"149.99"},
			"page":         {"2"},
			"page_size":    {"5"},
		})
		require.NoError(t, err)
		assert.Equal(t, "pred", f.Q)
		assert.Equal(t, "#35", f.ChainSize)
		assert.True(t, f.PriceMax.Equal(decimal.RequireFromString("149.99")))
		assert.Equal(t, 2, f.Page)
		assert.Equal(t, 5, f.PageSize)
	})

	t.Run("bad pagination falls back to defaults", func(t *testing.T) {
		t.Parallel()

		f, err := PartsQueryToFilter(url.Values{"page": {"abc"}, "page_size": {"0"}})
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 20, f.PageSize)
	})

	t.Run("bad price is a validation error", func(t *testing.T) {
		t.Parallel()

		_, err := PartsQueryToFilter(url.Values{"price_min": {"cheap"}})
		require.ErrorIs(t, err, model.ErrValidation)

		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "price_min", vErr.Errors[0].Field)
	})
}

func TestPartToResponse(t *testing.T) {
	t.Parallel()

	p := &model.Part{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     "60T Sprocket",
		Category: model.CategorySprocket,
		Price:    decimal.RequireFromString("24.99"),
		CompatibilityProfiles: []model.CompatibilityProfile{
			{ChainSize: lo.ToPtr("#35")},
		},
	}

	resp := PartToResponse(p)
	assert.InDelta(t, 24.99, resp.Price, 1e-9)
	assert.Equal(t, "sprocket", resp.Category)
	assert.Equal(t, []string{}, resp.ImageURLs)
	require.Len(t, resp.CompatibilityProfiles, 1)
	assert.Nil(t, resp.CompatibilityProfiles[0].EngineModel)
}

func TestAddItemRequestToParams(t *testing.T) {
	t.Parallel()

	buildID := uuid.Must(uuid.NewV7())
	partID := uuid.Must(uuid.NewV7())

	params, err := AddItemRequestToParams(buildID, &apiv1.AddItemRequest{PartID: partID.String(), SlotCategory: "engine"})
	require.NoError(t, err)
	assert.Equal(t, 1, params.Quantity)

	_, err = AddItemRequestToParams(buildID, &apiv1.AddItemRequest{PartID: "not-a-uuid", SlotCategory: "engine"})
	assert.ErrorIs(t, err, model.ErrPartNotFound)

	_, err = CreateBuildItemRequestToParams(&apiv1.CreateBuildItemRequest{BuildID: "nope", PartID: partID.String(), SlotCategory: "engine"})
	assert.ErrorIs(t, err, model.ErrBuildNotFound)
}

func TestCreateBuildRequestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "B1", CreateBuildRequestLabel(&apiv1.CreateBuildRequest{Label: "B1", UserName: "ignored"}))
	assert.Equal(t, "John Doe", CreateBuildRequestLabel(&apiv1.CreateBuildRequest{UserName: "John Doe"}))
}
