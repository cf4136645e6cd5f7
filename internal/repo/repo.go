// Package repo holds the in-memory trip collection and keeps it durable
// through a key-value store. The repository is the sole writer of persisted
// state: every successful mutation is flushed before control returns.
package repo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"tripdeck/internal/model"
	"tripdeck/internal/store"
)

// Store keys. tripsKey holds the whole trip collection as a JSON array;
// darkModeKey holds the UI theme preference shared with the presentation
// layer.
const (
	tripsKey    = "trips"
	darkModeKey = "darkMode"
)

// Repository owns the trip collection. It is not safe for concurrent use;
// the caller is single-threaded by construction.
type Repository struct {
	store store.Store
	trips []*model.Trip
}

// Open loads the trip collection from the store. An absent key yields an
// empty repository, not an error.
func Open(s store.Store) (*Repository, error) {
	r := &Repository{store: s}

	raw, ok, err := s.Get(tripsKey)
	if err != nil {
		return nil, fmt.Errorf("loading trips: %w", err)
	}
	if ok && raw != "" {
		var trips []*model.Trip
		if err := json.Unmarshal([]byte(raw), &trips); err != nil {
			return nil, fmt.Errorf("decoding trips: %w", err)
		}
		r.trips = trips
	}
	return r, nil
}

// Create stores a new trip at the end of the collection and persists.
func (r *Repository) Create(t *model.Trip) error {
	r.trips = append(r.trips, t)
	if err := r.Persist(); err != nil {
		r.trips = r.trips[:len(r.trips)-1]
		return err
	}
	return nil
}

// Find returns the trip with the given id, or ErrNotFound.
func (r *Repository) Find(id string) (*model.Trip, error) {
	for _, t := range r.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, model.ErrNotFound
}

// Delete removes the trip with the given id and persists. Deletion is
// irreversible; there is no soft-delete. Returns the removed trip.
func (r *Repository) Delete(id string) (*model.Trip, error) {
	for i, t := range r.trips {
		if t.ID == id {
			r.trips = append(r.trips[:i], r.trips[i+1:]...)
			if err := r.Persist(); err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, model.ErrNotFound
}

// List returns all trips in creation order.
func (r *Repository) List() []*model.Trip {
	return r.trips
}

// Mutate finds a trip, applies fn to it, and persists when fn succeeds.
// When fn returns an error nothing is persisted, so a failed validation
// cannot leak partial state to the store.
func (r *Repository) Mutate(id string, fn func(*model.Trip) error) error {
	t, err := r.Find(id)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}
	return r.Persist()
}

// Persist flushes the current in-memory collection to the store.
func (r *Repository) Persist() error {
	trips := r.trips
	if trips == nil {
		trips = []*model.Trip{}
	}
	raw, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encoding trips: %w", err)
	}
	return r.store.Set(tripsKey, string(raw))
}

// DarkMode reads the persisted theme preference. Absent means light.
func (r *Repository) DarkMode() bool {
	raw, ok, err := r.store.Get(darkModeKey)
	if err != nil || !ok {
		return false
	}
	dark, _ := strconv.ParseBool(raw)
	return dark
}

// SetDarkMode persists the theme preference.
func (r *Repository) SetDarkMode(dark bool) error {
	return r.store.Set(darkModeKey, strconv.FormatBool(dark))
}
