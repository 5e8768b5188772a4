// Package memory is a process-local storage driver that keeps the unique sku
// constraint and the foreign key cascades of the Postgres schema.
package memory

import (
	"bytes"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type profileRecord struct {
	profile   model.CompatibilityProfile
	createdAt time.Time
}

// Store holds all entities behind one lock so cascades are atomic.
type Store struct {
	mu sync.RWMutex

	parts    map[uuid.UUID]*model.Part
	profiles map[uuid.UUID]*profileRecord
	builds   map[uuid.UUID]*model.Build
	items    map[uuid.UUID]*model.BuildItem

	now func() time.Time
}

type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		parts:    make(map[uuid.UUID]*model.Part),
		profiles: make(map[uuid.UUID]*profileRecord),
		builds:   make(map[uuid.UUID]*model.Build),
		items:    make(map[uuid.UUID]*model.BuildItem),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Parts() *partRepository {
	return &partRepository{s: s}
}

func (s *Store) Profiles() *profileRepository {
	return &profileRepository{s: s}
}

func (s *Store) Builds() *buildRepository {
	return &buildRepository{s: s}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// partLocked returns a detached copy of the part with its profiles. Caller holds the lock.
func (s *Store) partLocked(id uuid.UUID) (*model.Part, bool) {
	p, ok := s.parts[id]
	if !ok {
		return nil, false
	}

	out := *p
	out.ImageURLs = slices.Clone(p.ImageURLs)
	if out.ImageURLs == nil {
		out.ImageURLs = []string{}
	}
	out.CompatibilityProfiles = s.profilesOfLocked(id)

	return &out, true
}

func (s *Store) profilesOfLocked(partID uuid.UUID) []model.CompatibilityProfile {
	recs := make([]*profileRecord, 0)
	for _, rec := range s.profiles {
		if rec.profile.PartID == partID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].createdAt.Equal(recs[j].createdAt) {
			return recs[i].createdAt.Before(recs[j].createdAt)
		}
		return bytes.Compare(recs[i].profile.ID[:], recs[j].profile.ID[:]) < 0
	})

	out := make([]model.CompatibilityProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.profile)
	}
	return out
}

func (s *Store) insertProfileLocked(params model.CreateProfileParams, now time.Time) model.CompatibilityProfile {
	p := model.CompatibilityProfile{
		ID:            newID(),
		PartID:        params.PartID,
		EngineModel:   params.EngineModel,
		ShaftDiameter: params.ShaftDiameter,
		BoltPattern:   params.BoltPattern,
		ChainSize:     params.ChainSize,
		FrameType:     params.FrameType,
		Notes:         params.Notes,
	}
	s.profiles[p.ID] = &profileRecord{profile: p, createdAt: now}
	return p
}
