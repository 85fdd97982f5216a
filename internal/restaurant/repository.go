package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hctsai/lunchgo/internal/group"
	"github.com/hctsai/lunchgo/internal/sheet"
)

// Restaurant column layout (A..D). The menu lives in a single JSON cell.
const (
	colID = iota
	colName
	colMenuJSON
	colMenuImageURL
)

var restaurantsRange = sheet.NewRange(sheet.TableRestaurants, "A2:D")

// Repository persists restaurants through the tabular store.
type Repository struct {
	store sheet.Store
}

// NewRepository creates a new restaurant repository
func NewRepository(store sheet.Store) *Repository {
	return &Repository{store: store}
}

// Upsert updates the row matching the restaurant's id in place, or appends
// a new row when none matches.
func (r *Repository) Upsert(ctx context.Context, rest *Restaurant) error {
	rows, err := r.store.Read(ctx, restaurantsRange)
	if err != nil {
		return fmt.Errorf("failed to read restaurants: %w", err)
	}

	menuJSON, err := json.Marshal(rest.Menu)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	row := []interface{}{rest.ID, rest.Name, string(menuJSON), rest.MenuImageURL}

	for i, existing := range rows {
		if sheet.Str(existing, colID) != rest.ID {
			continue
		}
		// Data rows start at sheet row 2.
		cells := sheet.NewRange(sheet.TableRestaurants, fmt.Sprintf("A%d:D%d", i+2, i+2))
		if err := r.store.Update(ctx, cells, [][]interface{}{row}); err != nil {
			return fmt.Errorf("failed to update restaurant: %w", err)
		}
		return nil
	}

	if err := r.store.Append(ctx, restaurantsRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("failed to append restaurant: %w", err)
	}
	return nil
}

// All returns every decodable restaurant row. Header leftovers and rows
// with broken menu JSON are skipped, never fatal.
func (r *Repository) All(ctx context.Context) ([]*Restaurant, error) {
	rows, err := r.store.Read(ctx, restaurantsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read restaurants: %w", err)
	}

	restaurants := make([]*Restaurant, 0, len(rows))
	for _, row := range rows {
		if len(row) < colMenuJSON+1 {
			continue
		}
		menuJSON := sheet.Str(row, colMenuJSON)
		if strings.EqualFold(menuJSON, "MenuJSON") || strings.EqualFold(menuJSON, "Menu") {
			continue
		}
		var menu []group.MenuItem
		if err := json.Unmarshal([]byte(menuJSON), &menu); err != nil {
			slog.Warn("skipping invalid restaurant row", "id", sheet.Str(row, colID), "error", err)
			continue
		}
		restaurants = append(restaurants, &Restaurant{
			ID:           sheet.Str(row, colID),
			Name:         sheet.Str(row, colName),
			Menu:         menu,
			MenuImageURL: sheet.Str(row, colMenuImageURL),
		})
	}
	return restaurants, nil
}
