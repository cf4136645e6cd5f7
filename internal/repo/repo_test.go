package repo

import (
	"errors"
	"testing"

	"tripdeck/internal/model"
	"tripdeck/internal/planner"
	"tripdeck/internal/store"
)

func newTrip(t *testing.T, destination string) *model.Trip {
	t.Helper()
	start, err := model.ParseDate("2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	trip, err := planner.NewTrip(destination, start, start.AddDays(3), model.TripCity)
	if err != nil {
		t.Fatalf("NewTrip: %v", err)
	}
	return trip
}

func openTestRepo(t *testing.T, s store.Store) *Repository {
	t.Helper()
	r, err := Open(s)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r
}

func TestCreateFindDelete(t *testing.T) {
	mem := store.NewMemory()
	r := openTestRepo(t, mem)

	a := newTrip(t, "Lisbon")
	b := newTrip(t, "Oslo")
	if err := r.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := r.Create(b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := r.Find(a.ID)
	if err != nil || got.Destination != "Lisbon" {
		t.Fatalf("Find = %v, %v", got, err)
	}
	if _, err := r.Find("nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("missing id: want ErrNotFound, got %v", err)
	}

	trips := r.List()
	if len(trips) != 2 || trips[0].ID != a.ID || trips[1].ID != b.ID {
		t.Fatal("List not in creation order")
	}

	removed, err := r.Delete(a.ID)
	if err != nil || removed.ID != a.ID {
		t.Fatalf("Delete = %v, %v", removed, err)
	}
	if _, err := r.Delete(a.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	mem := store.NewMemory()
	r := openTestRepo(t, mem)

	trip := newTrip(t, "Lisbon")
	if err := r.Create(trip); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := r.Mutate(trip.ID, func(tr *model.Trip) error {
		_, err := planner.AddActivity(tr, 1, "museum", "10:00", "")
		return err
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	// A second repository over the same store sees the mutation.
	r2 := openTestRepo(t, mem)
	got, err := r2.Find(trip.ID)
	if err != nil {
		t.Fatalf("Find after reopen: %v", err)
	}
	if got.ActivityCount() != 1 {
		t.Errorf("reloaded trip has %d activities, want 1", got.ActivityCount())
	}
	if len(got.PackingList) != len(trip.PackingList) {
		t.Errorf("reloaded packing list has %d items, want %d",
			len(got.PackingList), len(trip.PackingList))
	}
}

func TestMutateFailureDoesNotPersist(t *testing.T) {
	mem := store.NewMemory()
	r := openTestRepo(t, mem)

	trip := newTrip(t, "Lisbon")
	if err := r.Create(trip); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := r.Mutate(trip.ID, func(tr *model.Trip) error {
		_, err := planner.AddActivity(tr, 1, "  ", "10:00", "")
		return err
	})
	if !model.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}

	r2 := openTestRepo(t, mem)
	got, _ := r2.Find(trip.ID)
	if got.ActivityCount() != 0 {
		t.Error("failed mutation leaked to the store")
	}
}

func TestMutateMissingTrip(t *testing.T) {
	r := openTestRepo(t, store.NewMemory())
	err := r.Mutate("nope", func(*model.Trip) error { return nil })
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDarkModePreference(t *testing.T) {
	mem := store.NewMemory()
	r := openTestRepo(t, mem)

	if r.DarkMode() {
		t.Error("default dark mode should be off")
	}
	if err := r.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	if !openTestRepo(t, mem).DarkMode() {
		t.Error("dark mode preference not persisted")
	}
}
