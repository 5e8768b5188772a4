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

type BuildItemService interface {
	ListItems(ctx context.Context, filter model.BuildItemsFilter) ([]model.BuildItem, error)
	Item(ctx context.Context, id uuid.UUID) (*model.BuildItem, error)
	AddItem(ctx context.Context, params model.AddItemParams) (*model.BuildItem, error)
	UpdateItem(ctx context.Context, upd model.UpdateItemParams) (*model.BuildItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
}

type Validator interface {
	Validate(s any) error
}

type handler struct {
	svc BuildItemService
	v   Validator
}

func NewBuildItemHandler(svc BuildItemService, v Validator) *handler {
	return &handler{svc: svc, v: v}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/", h.ListItems)
	r.Post("/", h.CreateItem)
	r.Get("/{id}", h.GetItem)
	r.Put("/{id}", h.UpdateItem)
	r.Delete("/{id}", h.DeleteItem)
}

func (h *handler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter, ok := converter.BuildItemsQueryToFilter(r.URL.Query())
	if !ok {
		response.JSON(w, r, http.StatusOK, []apiv1.BuildItemResponse{})
		return
	}

	items, err := h.svc.ListItems(r.Context(), filter)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.BuildItemsToResponse(items))
}

func (h *handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildItemNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	item, err := h.svc.Item(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.BuildItemToResponse(item))
}

func (h *handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req apiv1.CreateBuildItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	params, err := converter.CreateBuildItemRequestToParams(&req)
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

func (h *handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildItemNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	var req apiv1.UpdateBuildItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	upd, err := converter.UpdateBuildItemRequestToParams(id, &req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), upd)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.BuildItemToResponse(item))
}

func (h *handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrBuildItemNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}
