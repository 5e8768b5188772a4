package memory

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type profileRepository struct {
	s *Store
}

func (r *profileRepository) Create(_ context.Context, params model.CreateProfileParams) (*model.CompatibilityProfile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parts[params.PartID]; !ok {
		return nil, model.ErrPartNotFound
	}

	p := s.insertProfileLocked(params, s.now())
	return &p, nil
}

func (r *profileRepository) ProfileByID(_ context.Context, id uuid.UUID) (*model.CompatibilityProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}

	p := rec.profile
	return &p, nil
}

// List returns profiles newest first.
func (r *profileRepository) List(_ context.Context, filter model.ProfilesFilter) ([]model.CompatibilityProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	recs := make([]*profileRecord, 0, len(r.s.profiles))
	for _, rec := range r.s.profiles {
		if filter.PartID != nil && rec.profile.PartID != *filter.PartID {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].createdAt.Equal(recs[j].createdAt) {
			return recs[i].createdAt.After(recs[j].createdAt)
		}
		return bytes.Compare(recs[i].profile.ID[:], recs[j].profile.ID[:]) > 0
	})

	out := make([]model.CompatibilityProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.profile)
	}
	return out, nil
}

func (r *profileRepository) Update(_ context.Context, upd model.UpdateProfileParams) (*model.CompatibilityProfile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.profiles[upd.ID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	if upd.PartID != nil {
		if _, ok := s.parts[*upd.PartID]; !ok {
			return nil, model.ErrPartNotFound
		}
	}

	upd.Apply(&rec.profile)
	p := rec.profile
	return &p, nil
}

func (r *profileRepository) Delete(_ context.Context, id uuid.UUID) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return model.ErrProfileNotFound
	}
	delete(s.profiles, id)
	return nil
}
