package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/memory"
	"github.com/MadeByDW91/gokartpartpicker/internal/service/mocks"
)

type deps struct {
	repository *mocks.MockBuildRepository
	parts      *mocks.MockPartReader
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockBuildRepository(t),
		parts:      mocks.NewMockPartReader(t),
	}
}

func newSvc(d deps) *service {
	return NewBuildService(d.repository, d.parts, time.Second, time.Second)
}

func TestServiceCreateBuild(t *testing.T) {
	t.Parallel()

	t.Run("validation error: blank label", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		res, err := newSvc(d).CreateBuild(context.Background(), "  \t ")
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)
	})

	t.Run("success: label is trimmed", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.
			On("CreateBuild", mock.Anything, "John Doe").
			Return(&model.Build{ID: uuid.Must(uuid.NewV7()), Label: "John Doe"}, nil).
			Once()

		res, err := newSvc(d).CreateBuild(context.Background(), " John Doe ")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", res.Label)
	})
}

func TestServiceAddItem(t *testing.T) {
	t.Parallel()

	buildID := uuid.Must(uuid.NewV7())
	partID := uuid.Must(uuid.NewV7())
	part := &model.Part{ID: partID, Name: gofakeit.ProductName(), Price: decimal.RequireFromString("149.99")}
	params := model.AddItemParams{
		BuildID:      buildID,
		PartID:       partID,
		SlotCategory: model.CategoryEngine,
		Quantity:     1,
	}

	type testCase struct {
		name   string
		params model.AddItemParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.BuildItem, err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: quantity below one",
			params: model.AddItemParams{
				BuildID:      buildID,
				PartID:       partID,
				SlotCategory: model.CategoryEngine,
				Quantity:     0,
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.BuildItem, err error, d deps) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "quantity")
			},
		},
		{
			name: "validation error: unknown slot",
			params: model.AddItemParams{
				BuildID:      buildID,
				PartID:       partID,
				SlotCategory: "gearbox",
				Quantity:     1,
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.BuildItem, err error, d deps) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "slotCategory")
			},
		},
		{
			name:   "not found: build",
			params: params,
			setup: func(d deps) {
				d.repository.On("BuildByID", mock.Anything, buildID).Return((*model.Build)(nil), model.ErrBuildNotFound).Once()
			},
			assert: func(t *testing.T, res *model.BuildItem, err error, d deps) {
				require.ErrorIs(t, err, model.ErrBuildNotFound)
				d.parts.AssertNotCalled(t, "PartByID", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "not found: part",
			params: params,
			setup: func(d deps) {
				d.repository.On("BuildByID", mock.Anything, buildID).Return(&model.Build{ID: buildID}, nil).Once()
				d.parts.On("PartByID", mock.Anything, partID).Return((*model.Part)(nil), model.ErrPartNotFound).Once()
			},
			assert: func(t *testing.T, res *model.BuildItem, err error, d deps) {
				require.ErrorIs(t, err, model.ErrPartNotFound)
				d.repository.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: item carries the part",
			params: params,
			setup: func(d deps) {
				d.repository.On("BuildByID", mock.Anything, buildID).Return(&model.Build{ID: buildID}, nil).Once()
				d.parts.On("PartByID", mock.Anything, partID).Return(part, nil).Once()
				d.repository.
					On("AddItem", mock.Anything, params).
					Return(&model.BuildItem{ID: uuid.Must(uuid.NewV7()), BuildID: buildID, PartID: partID, SlotCategory: model.CategoryEngine, Quantity: 1}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.BuildItem, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, part, res.Part)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tc.setup(d)

			res, err := newSvc(d).AddItem(context.Background(), tc.params)
			tc.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdateItem(t *testing.T) {
	t.Parallel()

	itemID := uuid.Must(uuid.NewV7())
	partID := uuid.Must(uuid.NewV7())

	t.Run("not found: item", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("ItemByID", mock.Anything, itemID).Return((*model.BuildItem)(nil), model.ErrBuildItemNotFound).Once()

		_, err := newSvc(d).UpdateItem(context.Background(), model.UpdateItemParams{ID: itemID, Quantity: lo.ToPtr(2)})
		require.ErrorIs(t, err, model.ErrBuildItemNotFound)
	})

	t.Run("not found: new build", func(t *testing.T) {
		t.Parallel()

		newBuild := uuid.Must(uuid.NewV7())
		d := newDeps(t)
		d.repository.On("ItemByID", mock.Anything, itemID).Return(&model.BuildItem{ID: itemID}, nil).Once()
		d.repository.On("BuildByID", mock.Anything, newBuild).Return((*model.Build)(nil), model.ErrBuildNotFound).Once()

		_, err := newSvc(d).UpdateItem(context.Background(), model.UpdateItemParams{ID: itemID, BuildID: &newBuild})
		require.ErrorIs(t, err, model.ErrBuildNotFound)
		d.repository.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})

	t.Run("validation error before any lookup", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		_, err := newSvc(d).UpdateItem(context.Background(), model.UpdateItemParams{ID: itemID, Quantity: lo.ToPtr(0)})
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		upd := model.UpdateItemParams{ID: itemID, Quantity: lo.ToPtr(4)}
		part := &model.Part{ID: partID}

		d := newDeps(t)
		d.repository.On("ItemByID", mock.Anything, itemID).Return(&model.BuildItem{ID: itemID, PartID: partID, Quantity: 1}, nil).Once()
		d.repository.On("UpdateItem", mock.Anything, upd).Return(&model.BuildItem{ID: itemID, PartID: partID, Quantity: 4}, nil).Once()
		d.parts.On("PartByID", mock.Anything, partID).Return(part, nil).Once()

		res, err := newSvc(d).UpdateItem(context.Background(), upd)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Quantity)
		assert.Equal(t, part, res.Part)
	})
}

func TestServiceBuildOrdersItemsAndTotals(t *testing.T) {
	t.Parallel()

	buildID := uuid.Must(uuid.NewV7())
	engine := &model.Part{ID: uuid.Must(uuid.NewV7()), Price: decimal.RequireFromString("149.99")}
	chain := &model.Part{ID: uuid.Must(uuid.NewV7()), Price: decimal.RequireFromString("19.99")}

	first := model.BuildItem{ID: uuid.Must(uuid.NewV7()), BuildID: buildID, PartID: engine.ID, Quantity: 1}
	second := model.BuildItem{ID: uuid.Must(uuid.NewV7()), BuildID: buildID, PartID: chain.ID, Quantity: 3}

	d := newDeps(t)
	d.repository.On("BuildByID", mock.Anything, buildID).Return(&model.Build{ID: buildID, Label: "B1"}, nil).Once()
	d.repository.
		On("ListItems", mock.Anything, model.BuildItemsFilter{BuildID: &buildID}).
		Return([]model.BuildItem{second, first}, nil).
		Once()
	d.parts.
		On("PartsByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*model.Part{engine.ID: engine, chain.ID: chain}, nil).
		Once()

	view, err := newSvc(d).Build(context.Background(), buildID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, first.ID, view.Items[0].ID)
	assert.Equal(t, second.ID, view.Items[1].ID)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("209.96")), view.TotalPrice.String())
}

func TestServiceTotalPriceFollowsCurrentPartPrice(t *testing.T) {
	t.Parallel()

	buildID := uuid.Must(uuid.NewV7())
	partID := uuid.Must(uuid.NewV7())
	item := model.BuildItem{ID: uuid.Must(uuid.NewV7()), BuildID: buildID, PartID: partID, Quantity: 2}

	d := newDeps(t)
	d.repository.On("BuildByID", mock.Anything, buildID).Return(&model.Build{ID: buildID}, nil).Twice()
	d.repository.On("ListItems", mock.Anything, mock.Anything).Return([]model.BuildItem{item}, nil).Twice()
	d.parts.
		On("PartsByIDs", mock.Anything, []uuid.UUID{partID}).
		Return(map[uuid.UUID]*model.Part{partID: {ID: partID, Price: decimal.RequireFromString("10.00")}}, nil).
		Once()
	d.parts.
		On("PartsByIDs", mock.Anything, []uuid.UUID{partID}).
		Return(map[uuid.UUID]*model.Part{partID: {ID: partID, Price: decimal.RequireFromString("12.50")}}, nil).
		Once()

	svc := newSvc(d)

	before, err := svc.TotalPrice(context.Background(), buildID)
	require.NoError(t, err)
	after, err := svc.TotalPrice(context.Background(), buildID)
	require.NoError(t, err)

	assert.True(t, before.Equal(decimal.RequireFromString("20")), before.String())
	assert.True(t, after.Equal(decimal.RequireFromString("25")), after.String())
}

// Scenarios below run against the in-memory driver.

func newMemorySvc() (*service, *memory.Store) {
	store := memory.NewStore()
	return NewBuildService(store.Builds(), store.Parts(), time.Second, time.Second), store
}

func createEngine(t *testing.T, store *memory.Store) *model.Part {
	t.Helper()

	p, err := store.Parts().Create(context.Background(), model.CreatePartParams{
		Name:     "Predator 212 Engine",
		SKU:      gofakeit.LetterN(10),
		Brand:    "Harbor Freight",
		Category: model.CategoryEngine,
		Price:    decimal.RequireFromString("149.99"),
	})
	require.NoError(t, err)
	return p
}

func TestScenarioDuplicateItemsAndTotal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newMemorySvc()
	engine := createEngine(t, store)

	b1, err := svc.CreateBuild(ctx, "B1")
	require.NoError(t, err)

	one, err := svc.AddItem(ctx, model.AddItemParams{BuildID: b1.ID, PartID: engine.ID, SlotCategory: model.CategoryEngine, Quantity: 1})
	require.NoError(t, err)
	two, err := svc.AddItem(ctx, model.AddItemParams{BuildID: b1.ID, PartID: engine.ID, SlotCategory: model.CategoryEngine, Quantity: 2})
	require.NoError(t, err)
	assert.NotEqual(t, one.ID, two.ID)

	view, err := svc.Build(ctx, b1.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, one.ID, view.Items[0].ID)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("449.97")), view.TotalPrice.String())

	require.NoError(t, svc.RemoveItem(ctx, one.ID))
	require.ErrorIs(t, svc.RemoveItem(ctx, one.ID), model.ErrBuildItemNotFound)

	total, err := svc.TotalPrice(ctx, b1.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("299.98")), total.String())
}

func TestScenarioAddItemUnknownPartLeavesBuildUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newMemorySvc()
	engine := createEngine(t, store)

	b, err := svc.CreateBuild(ctx, "B2")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, model.AddItemParams{BuildID: b.ID, PartID: engine.ID, SlotCategory: model.CategoryEngine, Quantity: 1})
	require.NoError(t, err)

	before, err := svc.Build(ctx, b.ID)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, model.AddItemParams{BuildID: b.ID, PartID: uuid.Must(uuid.NewV7()), SlotCategory: model.CategoryEngine, Quantity: 1})
	require.ErrorIs(t, err, model.ErrPartNotFound)

	after, err := svc.Build(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
}

func TestScenarioPartDeletionCascadesIntoBuild(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newMemorySvc()
	engine := createEngine(t, store)

	b, err := svc.CreateBuild(ctx, "B3")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, model.AddItemParams{BuildID: b.ID, PartID: engine.ID, SlotCategory: model.CategoryOther, Quantity: 5})
	require.NoError(t, err)

	require.NoError(t, store.Parts().Delete(ctx, engine.ID))

	view, err := svc.Build(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalPrice.IsZero())

	items, err := svc.ListItems(ctx, model.BuildItemsFilter{PartID: &engine.ID})
	require.NoError(t, err)
	assert.Empty(t, items)
}
