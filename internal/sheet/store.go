// Package sheet provides range-based access to a tabular store. The live
// implementation talks to Google Sheets; an in-memory store with the same
// semantics takes over when no spreadsheet is configured.
package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Logical table names used across the application.
const (
	TableOrders      = "Orders"
	TableHistory     = "History Orders"
	TableGroups      = "Groups"
	TableRestaurants = "Restaurants"
	TableMenus       = "Menus"
)

// Range addresses a block of cells inside a named table. Cells is an
// A1-style extent ("A2:K", "C5"). Data ranges start at sheet row 2; row 1
// is reserved for headers and never read or written.
type Range struct {
	Table string
	Cells string
}

// NewRange builds a range for the given table and cell extent.
func NewRange(table, cells string) Range {
	return Range{Table: table, Cells: cells}
}

// String renders the range in A1 notation, e.g. "Orders!A2:K".
func (r Range) String() string {
	return r.Table + "!" + r.Cells
}

// Store is the contract every backing store satisfies.
//
// Read returns all rows in the range, each row an ordered slice of untyped
// cells; rows may be ragged. Append adds rows after the last data row.
// Update overwrites cells positionally starting at the range's first cell.
// Clear empties the range.
type Store interface {
	Read(ctx context.Context, r Range) ([][]interface{}, error)
	Append(ctx context.Context, r Range, rows [][]interface{}) error
	Update(ctx context.Context, r Range, rows [][]interface{}) error
	Clear(ctx context.Context, r Range) error
}

// Str returns the i-th cell of row as a trimmed string, or "" when the row
// is too short.
func Str(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

// Int parses the i-th cell of row as an integer.
func Int(row []interface{}, i int) (int, error) {
	s := Str(row, i)
	if s == "" {
		return 0, fmt.Errorf("cell %d is empty", i)
	}
	return strconv.Atoi(s)
}

// Bool interprets the i-th cell of row as a boolean flag. Sheets renders
// boolean cells as TRUE/FALSE; older rows may hold 1/0.
func Bool(row []interface{}, i int) bool {
	switch strings.ToLower(Str(row, i)) {
	case "true", "1":
		return true
	}
	return false
}

// startOfRange parses the first cell of an A1 extent into a zero-based
// column index and a one-based sheet row. A missing row component defaults
// to the first data row (2).
func startOfRange(cells string) (col int, row int, err error) {
	start := cells
	if i := strings.IndexByte(cells, ':'); i >= 0 {
		start = cells[:i]
	}
	var letters, digits string
	for _, ch := range start {
		switch {
		case ch >= 'A' && ch <= 'Z':
			letters += string(ch)
		case ch >= '0' && ch <= '9':
			digits += string(ch)
		default:
			return 0, 0, fmt.Errorf("invalid cell reference %q", start)
		}
	}
	if letters == "" {
		return 0, 0, fmt.Errorf("invalid cell reference %q", start)
	}
	for _, ch := range letters {
		col = col*26 + int(ch-'A'+1)
	}
	col--
	row = 2
	if digits != "" {
		if row, err = strconv.Atoi(digits); err != nil {
			return 0, 0, fmt.Errorf("invalid cell reference %q", start)
		}
	}
	if row < 2 {
		return 0, 0, fmt.Errorf("range %q addresses the header row", start)
	}
	return col, row, nil
}
