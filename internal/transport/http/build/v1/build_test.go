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

func newRouter(t *testing.T) (*chi.Mux, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	svc := service.NewBuildService(store.Builds(), store.Parts(), time.Second, time.Second)

	r := chi.NewRouter()
	r.Route("/builds", NewBuildHandler(svc, validation.New()).Register)
	return r, store
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func createPart(t *testing.T, store *memory.Store, category model.Category, price string) *model.Part {
	t.Helper()

	p, err := store.Parts().Create(context.Background(), model.CreatePartParams{
		Name:     gofakeit.ProductName(),
		SKU:      gofakeit.LetterN(10),
		Brand:    gofakeit.Company(),
		Category: category,
		Price:    decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return p
}

func TestCreateBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      map[string]any
		status    int
		wantLabel string
	}{
		{name: "success: label", body: map[string]any{"label": "Race kart"}, status: http.StatusCreated, wantLabel: "Race kart"},
		{name: "success: userName fallback", body: map[string]any{"userName": "John Doe"}, status: http.StatusCreated, wantLabel: "John Doe"},
		{name: "validation error: blank label", body: map[string]any{"label": "  "}, status: http.StatusBadRequest},
		{name: "validation error: no label", body: map[string]any{}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _ := newRouter(t)
			rec := do(t, r, http.MethodPost, "/builds", tt.body)
			require.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusCreated {
				resp := decode[apiv1.BuildResponse](t, rec)
				assert.Equal(t, tt.wantLabel, resp.Label)
				assert.NotEmpty(t, resp.ID)
			}
		})
	}
}

func TestBuildLifecycle(t *testing.T) {
	t.Parallel()

	r, store := newRouter(t)
	engine := createPart(t, store, model.CategoryEngine, "149.99")
	tire := createPart(t, store, model.CategoryTire, "150.00")

	build := decode[apiv1.BuildResponse](t, do(t, r, http.MethodPost, "/builds", map[string]any{"label": "Predator build"}))

	rec := do(t, r, http.MethodPost, "/builds/"+build.ID+"/add", map[string]any{
		"partId":       engine.ID.String(),
		"slotCategory": "engine",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decode[apiv1.BuildItemResponse](t, rec)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, engine.ID.String(), item.Part.ID)

	rec = do(t, r, http.MethodPost, "/builds/"+build.ID+"/add", map[string]any{
		"partId":       tire.ID.String(),
		"slotCategory": "tire",
		"quantity":     2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, r, http.MethodGet, "/builds/"+build.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, 449.99, raw["totalPrice"])
	assert.Equal(t, build.ID, raw["buildId"])
	assert.Len(t, raw["items"], 2)

	t.Run("error: unknown part leaves build unchanged", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/builds/"+build.ID+"/add", map[string]any{
			"partId":       gofakeit.UUID(),
			"slotCategory": "engine",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Part not found"}`, rec.Body.String())

		view := decode[apiv1.BuildViewResponse](t, do(t, r, http.MethodGet, "/builds/"+build.ID, nil))
		assert.Len(t, view.Items, 2)
	})

	t.Run("validation error: bad slot and quantity", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/builds/"+build.ID+"/add", map[string]any{
			"partId":       engine.ID.String(),
			"slotCategory": "rocket",
			"quantity":     0,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decode[apiv1.ErrorResponse](t, rec)
		fields := make([]string, 0, len(resp.Details))
		for _, d := range resp.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"quantity", "slotCategory"}, fields)
	})

	t.Run("success: builds are listed", func(t *testing.T) {
		builds := decode[[]apiv1.BuildResponse](t, do(t, r, http.MethodGet, "/builds", nil))
		require.Len(t, builds, 1)
		assert.Equal(t, build.ID, builds[0].ID)
	})

	t.Run("success: delete cascades", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/builds/"+build.ID, nil).Code)
		assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/builds/"+build.ID, nil).Code)

		items, err := store.Builds().ListItems(context.Background(), model.BuildItemsFilter{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestGetBuildNotFound(t *testing.T) {
	t.Parallel()

	r, _ := newRouter(t)
	for _, id := range []string{gofakeit.UUID(), "42"} {
		rec := do(t, r, http.MethodGet, "/builds/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Build not found"}`, rec.Body.String())
	}
}
