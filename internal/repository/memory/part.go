package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type partRepository struct {
	s *Store
}

func (r *partRepository) Create(_ context.Context, params model.CreatePartParams) (*model.Part, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.parts {
		if p.SKU == params.SKU {
			return nil, fmt.Errorf("%w: parts_sku_key", model.ErrConflict)
		}
	}

	now := s.now()
	imageURLs := slices.Clone(params.ImageURLs)
	if imageURLs == nil {
		imageURLs = []string{}
	}

	part := &model.Part{
		ID:          newID(),
		Name:        params.Name,
		SKU:         params.SKU,
		Brand:       params.Brand,
		Category:    params.Category,
		Description: params.Description,
		Price:       params.Price,
		ImageURLs:   imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.parts[part.ID] = part

	for _, attrs := range params.Profiles {
		s.insertProfileLocked(model.CreateProfileParams{PartID: part.ID, ProfileAttributes: attrs}, now)
	}

	out, _ := s.partLocked(part.ID)
	return out, nil
}

func (r *partRepository) PartByID(_ context.Context, id uuid.UUID) (*model.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.partLocked(id)
	if !ok {
		return nil, model.ErrPartNotFound
	}
	return p, nil
}

func (r *partRepository) PartsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[uuid.UUID]*model.Part, len(ids))
	for _, id := range ids {
		if p, ok := r.s.partLocked(id); ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *partRepository) List(_ context.Context, filter model.PartsFilter) (model.PartsPage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	catalog := make(map[uuid.UUID]*model.Part, len(r.s.parts))
	for id := range r.s.parts {
		p, _ := r.s.partLocked(id)
		catalog[id] = p
	}

	return model.QueryParts(catalog, filter), nil
}

// Delete removes the part, its profiles and every build item referencing it.
func (r *partRepository) Delete(_ context.Context, id uuid.UUID) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parts[id]; !ok {
		return model.ErrPartNotFound
	}

	delete(s.parts, id)
	for pid, rec := range s.profiles {
		if rec.profile.PartID == id {
			delete(s.profiles, pid)
		}
	}
	for iid, it := range s.items {
		if it.PartID == id {
			delete(s.items, iid)
		}
	}

	return nil
}
