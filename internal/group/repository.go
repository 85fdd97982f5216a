package group

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hctsai/lunchgo/internal/sheet"
)

// Group column layout (A..H). Rows written before the restaurant columns
// existed stop after createdAt; the decoder defaults the rest.
const (
	colID = iota
	colName
	colDeadline
	colCreatedAt
	colRestaurantName
	colMenuImageURL
	colNote
	colRestaurantPhone
)

// minGroupCells is the narrowest row the decoder accepts.
const minGroupCells = colCreatedAt + 1

var (
	groupsRange = sheet.NewRange(sheet.TableGroups, "A2:H")
	menusRange  = sheet.NewRange(sheet.TableMenus, "A2:C")

	// Spreadsheet numeric coercion drops the leading zero of local phone
	// numbers; nine bare digits get it back.
	nineDigits = regexp.MustCompile(`^\d{9}$`)
)

// Repository persists groups and their menus through the tabular store.
type Repository struct {
	store sheet.Store
}

// NewRepository creates a new group repository
func NewRepository(store sheet.Store) *Repository {
	return &Repository{store: store}
}

// Rows reads all group rows.
func (r *Repository) Rows(ctx context.Context) ([][]interface{}, error) {
	rows, err := r.store.Read(ctx, groupsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}
	return rows, nil
}

// Append persists one group row.
func (r *Repository) Append(ctx context.Context, g *Group) error {
	row := []interface{}{
		g.ID,
		g.Name,
		g.Deadline,
		g.CreatedAt,
		g.RestaurantName,
		g.MenuImageURL,
		g.Note,
		g.RestaurantPhone,
	}
	if err := r.store.Append(ctx, groupsRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("failed to append group: %w", err)
	}
	return nil
}

// UpdateDeadlineCell rewrites only the deadline cell of the given sheet row.
func (r *Repository) UpdateDeadlineCell(ctx context.Context, sheetRow int, deadline string) error {
	cell := sheet.NewRange(sheet.TableGroups, fmt.Sprintf("C%d", sheetRow))
	if err := r.store.Update(ctx, cell, [][]interface{}{{deadline}}); err != nil {
		return fmt.Errorf("failed to update deadline: %w", err)
	}
	return nil
}

// SaveMenu persists a group's menu, one row per item keyed by group id.
func (r *Repository) SaveMenu(ctx context.Context, groupID string, menu []MenuItem) error {
	if len(menu) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(menu))
	for _, item := range menu {
		rows = append(rows, []interface{}{groupID, item.Name, item.Price})
	}
	if err := r.store.Append(ctx, menusRange, rows); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	return nil
}

// Menu returns the menu saved for a group. Rows that fail to parse are
// skipped.
func (r *Repository) Menu(ctx context.Context, groupID string) ([]MenuItem, error) {
	rows, err := r.store.Read(ctx, menusRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read menus: %w", err)
	}

	menu := make([]MenuItem, 0)
	for _, row := range rows {
		if len(row) < 3 || sheet.Str(row, 0) != groupID {
			continue
		}
		price, err := sheet.Int(row, 2)
		if err != nil {
			continue
		}
		menu = append(menu, MenuItem{Name: sheet.Str(row, 1), Price: price})
	}
	return menu, nil
}

// groupFromRow decodes a row by column-count sniffing: at least the first
// four cells must exist, trailing columns default to empty.
func groupFromRow(row []interface{}) *Group {
	return &Group{
		ID:              sheet.Str(row, colID),
		Name:            sheet.Str(row, colName),
		Deadline:        sheet.Str(row, colDeadline),
		CreatedAt:       sheet.Str(row, colCreatedAt),
		RestaurantName:  sheet.Str(row, colRestaurantName),
		MenuImageURL:    sheet.Str(row, colMenuImageURL),
		Note:            sheet.Str(row, colNote),
		RestaurantPhone: normalizePhone(sheet.Str(row, colRestaurantPhone)),
	}
}

// normalizePhone restores the leading zero of nine-digit local numbers.
func normalizePhone(phone string) string {
	if nineDigits.MatchString(phone) {
		return "0" + phone
	}
	return phone
}
