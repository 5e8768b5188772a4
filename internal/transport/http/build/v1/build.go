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

type BuildService interface {
	CreateBuild(ctx context.Context, label string) (*model.Build, error)
	ListBuilds(ctx context.Context) ([]model.Build, error)
	Build(ctx context.Context, id uuid.UUID) (*model.BuildView, error)
	DeleteBuild(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error)
}

type Validator interface {
	Validate(s any) error
}

type handler struct {
	svc BuildService
	v   Validator
}

func NewBuildHandler(svc BuildService, v Validator) *handler {
	return &handler{svc: svc, v: v}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/", h.CreateBuild)
	r.Get("/", h.ListBuilds)
	r.Get("/{id}", h.GetBuild)
	r.Delete("/{id}", h.DeleteBuild)
	r.Post("/{id}/add", h.AddItem)
}

func (h *handler) CreateBuild(w http.ResponseWriter, r *http.Request) {
	var req apiv1.CreateBuildRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	b, err := h.svc.CreateBuild(r.Context(), converter.CreateBuildRequestLabel(&req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, converter.BuildToResponse(b))
}

func (h *handler) ListBuilds(w http.ResponseWriter, r *http.Request) {
	builds, err := h.svc.ListBuilds(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.BuildsToResponse(builds))
}

func (h *handler) GetBuild(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	view, err := h.svc.Build(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.BuildViewToResponse(view))
}

func (h *handler) DeleteBuild(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteBuild(r.Context(), id); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *handler) AddItem(w http.ResponseWriter, r *http.Request) {
	buildID, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	var req apiv1.AddItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	params, err := converter.AddItemRequestToParams(buildID, &req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), params)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, converter.BuildItemToResponse(item))
}
