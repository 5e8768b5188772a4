package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/memory"
	service "github.com/MadeByDW91/gokartpartpicker/internal/service/build"
	"github.com/MadeByDW91/gokartpartpicker/internal/validation"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

type fixture struct {
	router *chi.Mux
	store  *memory.Store
	build  *model.Build
	engine *model.Part
	clutch *model.Part
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	svc := service.NewBuildService(store.Builds(), store.Parts(), time.Second, time.Second)

	r := chi.NewRouter()
	r.Route("/api/build-items", NewBuildItemHandler(svc, validation.New()).Register)

	build, err := store.Builds().CreateBuild(ctx, "John Doe")
	require.NoError(t, err)

	mk := func(c model.Category, price string) *model.Part {
		p, err := store.Parts().Create(ctx, model.CreatePartParams{
			Name:     gofakeit.ProductName(),
			SKU:      gofakeit.LetterN(10),
			Brand:    gofakeit.Company(),
			Category: c,
			Price:    decimal.RequireFromString(price),
		})
		require.NoError(t, err)
		return p
	}

	return fixture{
		router: r,
		store:  store,
		build:  build,
		engine: mk(model.CategoryEngine, "149.99"),
		clutch: mk(model.CategoryClutch, "45.99"),
	}
}

func (f fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f fixture) create(t *testing.T, part *model.Part, quantity int) apiv1.BuildItemResponse {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/build-items", map[string]any{
		"buildId":      f.build.ID.String(),
		"partId":       part.ID.String(),
		"slotCategory": string(part.Category),
		"quantity":     quantity,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp apiv1.BuildItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateBuildItem(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		error  string
	}{
		{
			name:   "error: unknown build",
			body:   map[string]any{"buildId": gofakeit.UUID(), "partId": f.engine.ID.String(), "slotCategory": "engine"},
			status: http.StatusNotFound,
			error:  "Build not found",
		},
		{
			name:   "error: malformed part id",
			body:   map[string]any{"buildId": f.build.ID.String(), "partId": "abc", "slotCategory": "engine"},
			status: http.StatusNotFound,
			error:  "Part not found",
		},
		{
			name:   "validation error: missing ids",
			body:   map[string]any{"slotCategory": "engine"},
			status: http.StatusBadRequest,
			error:  "Validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/build-items", tt.body)
			require.Equal(t, tt.status, rec.Code)

			var resp apiv1.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.error, resp.Error)
		})
	}

	t.Run("success: duplicates are separate rows", func(t *testing.T) {
		first := f.create(t, f.engine, 1)
		second := f.create(t, f.engine, 1)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 149.99, second.Part.Price)
	})
}

func TestListBuildItems(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	engineItem := f.create(t, f.engine, 1)
	f.create(t, f.clutch, 2)

	t.Run("success: filter by part", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/build-items?partId="+f.engine.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []apiv1.BuildItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, engineItem.ID, items[0].ID)
	})

	t.Run("success: newest first", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/build-items?buildId="+f.build.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []apiv1.BuildItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, string(model.CategoryClutch), items[0].SlotCategory)
	})

	t.Run("success: malformed filter matches nothing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/build-items?buildId=zzz", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestUpdateBuildItem(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	item := f.create(t, f.engine, 1)
	target := "/api/build-items/" + item.ID

	t.Run("success: quantity and part", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, target, map[string]any{
			"partId":   f.clutch.ID.String(),
			"quantity": 3,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp apiv1.BuildItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Quantity)
		assert.Equal(t, f.clutch.ID.String(), resp.PartID)
		assert.Equal(t, "engine", resp.SlotCategory)
	})

	t.Run("error: unknown part", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, target, map[string]any{"partId": gofakeit.UUID()})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validation error: quantity below one", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, target, map[string]any{"quantity": 0})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"quantity"`)
	})

	t.Run("error: unknown item", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/build-items/"+gofakeit.UUID(), map[string]any{"quantity": 2})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Build item not found"}`, rec.Body.String())
	})
}

func TestGetAndDeleteBuildItem(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	item := f.create(t, f.engine, 1)
	target := "/api/build-items/" + item.ID

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, target, nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, target, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, target, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, target, nil).Code)
}
