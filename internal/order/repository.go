package order

import (
	"context"
	"fmt"

	"github.com/hctsai/lunchgo/internal/sheet"
)

// Ledger column layout (A..K). The paid column was added after the sheet
// was already in use, so rows written earlier may be one cell short.
const (
	colID = iota
	colGroupID
	colUserName
	colItemName
	colBasePrice
	colRiceLevel
	colQuantity
	colTotalPrice
	colNote
	colCreatedAt
	colPaid

	colCount = colPaid + 1
)

// TotalSentinel marks the synthetic aggregate row that always closes the
// live ledger.
const TotalSentinel = "TOTAL"

var (
	liveRange    = sheet.NewRange(sheet.TableOrders, "A2:K")
	historyRange = sheet.NewRange(sheet.TableHistory, "A2:K")
)

// Repository persists ledger rows through the tabular store.
type Repository struct {
	store sheet.Store
}

// NewRepository creates a new order repository
func NewRepository(store sheet.Store) *Repository {
	return &Repository{store: store}
}

// LiveRows reads all rows of the live ledger, synthetic TOTAL row included.
func (r *Repository) LiveRows(ctx context.Context) ([][]interface{}, error) {
	rows, err := r.store.Read(ctx, liveRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read live orders: %w", err)
	}
	return rows, nil
}

// HistoryRows reads all archived rows.
func (r *Repository) HistoryRows(ctx context.Context) ([][]interface{}, error) {
	rows, err := r.store.Read(ctx, historyRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read history orders: %w", err)
	}
	return rows, nil
}

// RewriteLive atomically replaces the whole live range. The clear-then-write
// pair is what keeps exactly one TOTAL row in the sheet; appending instead
// would accumulate stale totals.
func (r *Repository) RewriteLive(ctx context.Context, rows [][]interface{}) error {
	if err := r.store.Clear(ctx, liveRange); err != nil {
		return fmt.Errorf("failed to clear live orders: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := r.store.Update(ctx, liveRange, rows); err != nil {
		return fmt.Errorf("failed to rewrite live orders: %w", err)
	}
	return nil
}

// AppendHistory moves rows into the archive.
func (r *Repository) AppendHistory(ctx context.Context, rows [][]interface{}) error {
	if err := r.store.Append(ctx, historyRange, rows); err != nil {
		return fmt.Errorf("failed to append history orders: %w", err)
	}
	return nil
}

// rowFromOrder encodes an order as a full-width ledger row.
func rowFromOrder(o *Order) []interface{} {
	return []interface{}{
		o.ID,
		o.GroupID,
		o.UserName,
		o.ItemName,
		o.BasePrice,
		string(o.RiceLevel),
		o.Quantity,
		o.TotalPrice,
		o.Note,
		o.CreatedAt,
		o.Paid,
	}
}

// orderFromRow decodes a ledger row. Rows narrower than the original eight
// columns or with unparseable numbers are rejected; the caller decides
// whether to skip or fail.
func orderFromRow(row []interface{}) (*Order, error) {
	if len(row) < colTotalPrice+1 {
		return nil, fmt.Errorf("row has %d cells, want at least %d", len(row), colTotalPrice+1)
	}
	basePrice, err := sheet.Int(row, colBasePrice)
	if err != nil {
		return nil, fmt.Errorf("bad base price: %w", err)
	}
	quantity, err := sheet.Int(row, colQuantity)
	if err != nil {
		return nil, fmt.Errorf("bad quantity: %w", err)
	}
	totalPrice, err := sheet.Int(row, colTotalPrice)
	if err != nil {
		return nil, fmt.Errorf("bad total price: %w", err)
	}
	return &Order{
		ID:         sheet.Str(row, colID),
		GroupID:    sheet.Str(row, colGroupID),
		UserName:   sheet.Str(row, colUserName),
		ItemName:   sheet.Str(row, colItemName),
		BasePrice:  basePrice,
		RiceLevel:  RiceLevel(sheet.Str(row, colRiceLevel)),
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Note:       sheet.Str(row, colNote),
		CreatedAt:  sheet.Str(row, colCreatedAt),
		Paid:       sheet.Bool(row, colPaid),
	}, nil
}

// isTotalRow reports whether a row is the synthetic aggregate row.
func isTotalRow(row []interface{}) bool {
	return sheet.Str(row, colID) == TotalSentinel
}

// realRows filters out TOTAL sentinels and fully empty rows.
func realRows(rows [][]interface{}) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || isTotalRow(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// totalRow derives the aggregate row over the given real rows. The count
// cell is a display string on purpose; the sheet is read by humans.
func totalRow(rows [][]interface{}) []interface{} {
	sum := 0
	count := 0
	for _, row := range rows {
		n, err := sheet.Int(row, colTotalPrice)
		if err != nil {
			continue
		}
		sum += n
		count++
	}
	return []interface{}{
		TotalSentinel,
		"",
		"---",
		"總計",
		"",
		"",
		fmt.Sprintf("%d 份", count),
		sum,
		"",
		"",
	}
}
