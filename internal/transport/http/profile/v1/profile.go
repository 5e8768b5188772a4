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

type ProfileService interface {
	List(ctx context.Context, filter model.ProfilesFilter) ([]model.CompatibilityProfile, error)
	Profile(ctx context.Context, id uuid.UUID) (*model.CompatibilityProfile, error)
	Create(ctx context.Context, params model.CreateProfileParams) (*model.CompatibilityProfile, error)
	Update(ctx context.Context, upd model.UpdateProfileParams) (*model.CompatibilityProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Validator interface {
	Validate(s any) error
}

type handler struct {
	svc ProfileService
	v   Validator
}

func NewProfileHandler(svc ProfileService, v Validator) *handler {
	return &handler{svc: svc, v: v}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/", h.ListProfiles)
	r.Post("/", h.CreateProfile)
	r.Get("/{id}", h.GetProfile)
	r.Put("/{id}", h.UpdateProfile)
	r.Delete("/{id}", h.DeleteProfile)
}

func (h *handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	filter, ok := converter.ProfilesQueryToFilter(r.URL.Query())
	if !ok {
		response.JSON(w, r, http.StatusOK, []apiv1.CompatibilityProfileResponse{})
		return
	}

	profiles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.ProfilesToResponse(profiles))
}

func (h *handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrProfileNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Profile(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.ProfileToResponse(p))
}

func (h *handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req apiv1.CreateProfileRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	params, err := converter.CreateProfileRequestToParams(&req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), params)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, converter.ProfileToResponse(p))
}

func (h *handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrProfileNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	var req apiv1.UpdateProfileRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.v.Validate(&req); err != nil {
		response.Error(w, r, err)
		return
	}

	upd, err := converter.UpdateProfileRequestToParams(id, &req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), upd)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, converter.ProfileToResponse(p))
}

func (h *handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := converter.ParseID(chi.URLParam(r, "id"), model.ErrProfileNotFound)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}
