package restaurant

import (
	"context"
	"errors"
	"testing"

	"github.com/hctsai/lunchgo/internal/group"
	"github.com/hctsai/lunchgo/internal/sheet"
)

func newTestService() (*Service, sheet.Store) {
	store := sheet.NewMemoryStore()
	return NewService(NewRepository(store)), store
}

func TestSaveNewRestaurant(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, &Restaurant{
		Name: "Lunch Corner",
		Menu: []group.MenuItem{{Name: "Rice Box", Price: 80}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected an id to be generated")
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d restaurants, want 1", len(all))
	}
	if all[0].Name != "Lunch Corner" || len(all[0].Menu) != 1 || all[0].Menu[0].Price != 80 {
		t.Errorf("restaurant round-trip mismatch: %+v", all[0])
	}
}

func TestSaveUpdatesInPlace(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, &Restaurant{Name: "Lunch Corner"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved.Menu = []group.MenuItem{{Name: "Chicken", Price: 90}}
	saved.MenuImageURL = "http://img/menu.jpg"
	if _, err := svc.Save(ctx, saved); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("upsert appended instead of updating, got %d rows", len(all))
	}
	if len(all[0].Menu) != 1 || all[0].Menu[0].Name != "Chicken" {
		t.Errorf("menu not updated: %+v", all[0].Menu)
	}
	if all[0].MenuImageURL != "http://img/menu.jpg" {
		t.Errorf("image url not updated: %q", all[0].MenuImageURL)
	}
}

func TestSaveValidation(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Save(context.Background(), &Restaurant{}); !errors.Is(err, ErrInvalidRestaurant) {
		t.Errorf("got %v, want ErrInvalidRestaurant", err)
	}
}

func TestListSkipsUndecodableRows(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	rows := [][]interface{}{
		// Header leftovers from a hand-edited sheet.
		{"ID", "Name", "MenuJSON", "MenuImageURL"},
		{"r1", "Good Eats", `[{"name":"Pork","price":85}]`, ""},
		{"r2", "Broken", `not json`, ""},
		{"r3"},
	}
	if err := store.Append(ctx, sheet.NewRange(sheet.TableRestaurants, "A2:D"), rows); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != "r1" {
		t.Fatalf("got %+v, want only r1", all)
	}
	if len(all[0].Menu) != 1 || all[0].Menu[0].Name != "Pork" {
		t.Errorf("menu mismatch: %+v", all[0].Menu)
	}
}
