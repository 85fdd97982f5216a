package sheet

import (
	"context"
	"reflect"
	"testing"
)

func TestMemoryAppendRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rng := NewRange(TableGroups, "A2:H")

	rows := [][]interface{}{
		{"g1", "Monday lunch"},
		{"g2", "Tuesday lunch"},
	}
	if err := store.Append(ctx, rng, rows); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.Read(ctx, rng)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("Read returned %v, want %v", got, rows)
	}
}

func TestMemoryReadOffset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, NewRange(TableGroups, "A2:H"), [][]interface{}{
		{"g1"}, {"g2"}, {"g3"},
	}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Row 3 is the second data row.
	got, err := store.Read(ctx, NewRange(TableGroups, "A3:H"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 2 || Str(got[0], 0) != "g2" {
		t.Errorf("Read from row 3 returned %v, want rows g2, g3", got)
	}
}

func TestMemoryTargetedUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rng := NewRange(TableGroups, "A2:H")

	if err := store.Append(ctx, rng, [][]interface{}{
		{"g1", "lunch", "old-deadline"},
		{"g2", "dinner", "other-deadline"},
	}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Overwrite only the deadline cell of the first data row.
	if err := store.Update(ctx, NewRange(TableGroups, "C2"), [][]interface{}{{"new-deadline"}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	rows, err := store.Read(ctx, rng)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if Str(rows[0], 2) != "new-deadline" {
		t.Errorf("deadline cell = %q, want new-deadline", Str(rows[0], 2))
	}
	if Str(rows[0], 0) != "g1" || Str(rows[1], 2) != "other-deadline" {
		t.Errorf("targeted update touched unrelated cells: %v", rows)
	}
}

func TestMemoryUpdatePadsShortRows(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, NewRange(TableOrders, "A2:K"), [][]interface{}{{"o1", "g1"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Writing column K of a two-cell row must grow the row.
	if err := store.Update(ctx, NewRange(TableOrders, "K2"), [][]interface{}{{true}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	rows, err := store.Read(ctx, NewRange(TableOrders, "A2:K"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rows[0]) != 11 {
		t.Fatalf("row has %d cells, want 11", len(rows[0]))
	}
	if !Bool(rows[0], 10) {
		t.Errorf("cell K = %v, want true", rows[0][10])
	}
}

func TestMemoryClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rng := NewRange(TableOrders, "A2:K")

	if err := store.Append(ctx, rng, [][]interface{}{{"o1"}, {"o2"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Clear(ctx, rng); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	rows, err := store.Read(ctx, rng)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("table still has %d rows after clear", len(rows))
	}
}

func TestMemoryTablesArePartitioned(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, NewRange(TableOrders, "A2:K"), [][]interface{}{{"o1"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Clear(ctx, NewRange(TableGroups, "A2:H")); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	rows, err := store.Read(ctx, NewRange(TableOrders, "A2:K"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("clearing Groups must not touch Orders, got %d rows", len(rows))
	}
}

func TestStartOfRange(t *testing.T) {
	tests := []struct {
		cells   string
		col     int
		row     int
		wantErr bool
	}{
		{"A2:K", 0, 2, false},
		{"C5", 2, 5, false},
		{"A2:H", 0, 2, false},
		{"K2", 10, 2, false},
		{"AA3", 26, 3, false},
		{"A:K", 0, 2, false},
		{"A1:K", 0, 0, true}, // header row is off limits
		{"2", 0, 0, true},
	}
	for _, tt := range tests {
		col, row, err := startOfRange(tt.cells)
		if tt.wantErr {
			if err == nil {
				t.Errorf("startOfRange(%q): expected error", tt.cells)
			}
			continue
		}
		if err != nil {
			t.Errorf("startOfRange(%q): %v", tt.cells, err)
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("startOfRange(%q) = (%d, %d), want (%d, %d)", tt.cells, col, row, tt.col, tt.row)
		}
	}
}
