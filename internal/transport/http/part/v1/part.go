package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/converter"
	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/transport/http/response"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

type PartService interface {
	ListParts(ctx context.Context, filter model.PartsFilter) (model.PartsPage, error)
	Part(ctx context.Context, id uuid.UUID) (*model.Part, error)
	CreatePart(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	DeletePart(ctx context.Context, id uuid.UUID) error
}

type Validator interface {
	Validate(s any) error
}

type handler struct {
	svc   PartService
	v     Validator
	admin func(http.Handler) http.Handler
}

func NewPartHandler(svc PartService, v Validator, admin func(http.Handler) http.Handler) *handler {
	return &handler{svc: svc, v: v, admin: admin}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/", h.ListParts)
	r.Get("/{id}", h.GetPart)
	r.With(h.admin).Post("/", h.CreatePart)
	r.With(h.admin).Delete("/{id}", h.DeletePart)
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	filter, err := converter.PartsQueryToFilter(r.URL.Query())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	page, err := h.svc.ListParts(r.Context(), filter)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.PartsPageToResponse(page))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrPartNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Part(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.PartToResponse(p))
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req apiv1.CreatePartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.CreatePart(r.Context(), converter.CreatePartRequestToParams(&req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, converter.PartToResponse(p))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrPartNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.DeletePart(r.Context(), id); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}
