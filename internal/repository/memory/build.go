package memory

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type buildRepository struct {
	s *Store
}

func (r *buildRepository) CreateBuild(_ context.Context, label string) (*model.Build, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &model.Build{
		ID:        newID(),
		Label:     label,
		CreatedAt: s.now(),
	}
	s.builds[b.ID] = b

	out := *b
	return &out, nil
}

func (r *buildRepository) BuildByID(_ context.Context, id uuid.UUID) (*model.Build, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.builds[id]
	if !ok {
		return nil, model.ErrBuildNotFound
	}

	out := *b
	return &out, nil
}

func (r *buildRepository) ListBuilds(_ context.Context) ([]model.Build, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Build, 0, len(r.s.builds))
	for _, b := range r.s.builds {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})
	return out, nil
}

// DeleteBuild removes the build together with its items.
func (r *buildRepository) DeleteBuild(_ context.Context, id uuid.UUID) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.builds[id]; !ok {
		return model.ErrBuildNotFound
	}

	delete(s.builds, id)
	for iid, it := range s.items {
		if it.BuildID == id {
			delete(s.items, iid)
		}
	}
	return nil
}

func (r *buildRepository) AddItem(_ context.Context, params model.AddItemParams) (*model.BuildItem, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.builds[params.BuildID]; !ok {
		return nil, model.ErrBuildNotFound
	}
	if _, ok := s.parts[params.PartID]; !ok {
		return nil, model.ErrPartNotFound
	}

	it := &model.BuildItem{
		ID:           newID(),
		BuildID:      params.BuildID,
		PartID:       params.PartID,
		SlotCategory: params.SlotCategory,
		Quantity:     params.Quantity,
		CreatedAt:    s.now(),
	}
	s.items[it.ID] = it

	out := *it
	return &out, nil
}

func (r *buildRepository) ItemByID(_ context.Context, id uuid.UUID) (*model.BuildItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	it, ok := r.s.items[id]
	if !ok {
		return nil, model.ErrBuildItemNotFound
	}

	out := *it
	return &out, nil
}

func (r *buildRepository) ListItems(_ context.Context, filter model.BuildItemsFilter) ([]model.BuildItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.BuildItem, 0)
	for _, it := range r.s.items {
		if filter.Matches(*it) {
			out = append(out, *it)
		}
	}
	model.SortItemsNewestFirst(out)
	return out, nil
}

func (r *buildRepository) UpdateItem(_ context.Context, upd model.UpdateItemParams) (*model.BuildItem, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[upd.ID]
	if !ok {
		return nil, model.ErrBuildItemNotFound
	}
	if upd.BuildID != nil {
		if _, ok := s.builds[*upd.BuildID]; !ok {
			return nil, model.ErrBuildNotFound
		}
	}
	if upd.PartID != nil {
		if _, ok := s.parts[*upd.PartID]; !ok {
			return nil, model.ErrPartNotFound
		}
	}

	upd.Apply(it)

	out := *it
	return &out, nil
}

func (r *buildRepository) DeleteItem(_ context.Context, id uuid.UUID) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return model.ErrBuildItemNotFound
	}
	delete(s.items, id)
	return nil
}
