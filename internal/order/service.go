package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hctsai/lunchgo/internal/localtime"
	"github.com/hctsai/lunchgo/internal/sheet"
	"github.com/hctsai/lunchgo/pkg/metrics"
)

// Common errors
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")
)

// Service owns the live-ledger invariant: zero or more real rows followed
// by exactly one TOTAL row. Every mutation runs under one mutex because the
// clear-then-rewrite sequence is not atomic against the backing store.
type Service struct {
	repo *Repository
	mu   sync.Mutex
}

// NewService creates a new order service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Add normalizes, prices and persists a new order, then recomputes the
// TOTAL row and rewrites the whole live range.
func (s *Service) Add(ctx context.Context, o *Order) (*Order, error) {
	if o.UserName == "" {
		return nil, fmt.Errorf("%w: missing user name", ErrInvalidOrder)
	}
	if o.ItemName == "" {
		return nil, fmt.Errorf("%w: missing item name", ErrInvalidOrder)
	}
	if o.BasePrice < 0 {
		return nil, fmt.Errorf("%w: negative base price", ErrInvalidOrder)
	}

	if o.Quantity < 1 {
		o.Quantity = 1
	}
	// Never trust a client-supplied total.
	o.TotalPrice = o.BasePrice * o.Quantity
	if o.RiceLevel == "" {
		o.RiceLevel = RiceFull
	}
	o.ID = uuid.NewString()
	o.CreatedAt = localtime.Now().Format(localtime.TimestampLayout)
	o.Paid = false

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.LiveRows(ctx)
	if err != nil {
		return nil, err
	}
	real := realRows(rows)
	real = append(real, rowFromOrder(o))

	if err := s.repo.RewriteLive(ctx, append(real, totalRow(real))); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	slog.Info("order added", "order", o.ID, "group", o.GroupID, "item", o.ItemName, "total", o.TotalPrice)
	return o, nil
}

// Delete removes the order matching both ids. When no row matches, the
// ledger is left untouched and ErrOrderNotFound is returned.
func (s *Service) Delete(ctx context.Context, groupID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.LiveRows(ctx)
	if err != nil {
		return err
	}
	real := realRows(rows)

	idx := findOrder(real, groupID, orderID)
	if idx < 0 {
		return ErrOrderNotFound
	}
	real = append(real[:idx], real[idx+1:]...)

	if err := s.repo.RewriteLive(ctx, append(real, totalRow(real))); err != nil {
		return err
	}

	slog.Info("order deleted", "order", orderID, "group", groupID)
	return nil
}

// SetPaid flips the paid flag of one order. Rows written before the paid
// column existed are padded to full width first. The TOTAL row is carried
// over untouched: payment status does not change the aggregates.
func (s *Service) SetPaid(ctx context.Context, groupID, orderID string, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.LiveRows(ctx)
	if err != nil {
		return err
	}

	found := false
	for i, row := range rows {
		if isTotalRow(row) || sheet.Str(row, colID) != orderID || sheet.Str(row, colGroupID) != groupID {
			continue
		}
		for len(row) < colCount {
			row = append(row, "")
		}
		row[colPaid] = paid
		rows[i] = row
		found = true
		break
	}
	if !found {
		return ErrOrderNotFound
	}

	if err := s.repo.RewriteLive(ctx, rows); err != nil {
		return err
	}

	slog.Info("order payment updated", "order", orderID, "group", groupID, "paid", paid)
	return nil
}

// ListByGroup returns every order of a group across the live ledger and the
// archive. Rows that fail to decode are skipped so one bad row cannot take
// down the whole listing.
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]*Order, error) {
	live, err := s.repo.LiveRows(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.HistoryRows(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*Order, 0)
	for _, row := range append(live, history...) {
		if len(row) == 0 || isTotalRow(row) || sheet.Str(row, colGroupID) != groupID {
			continue
		}
		o, err := orderFromRow(row)
		if err != nil {
			slog.Warn("skipping malformed order row", "group", groupID, "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Archive moves every real live row into the history range and clears the
// live ledger. TOTAL rows never reach the archive. Called when a new group
// opens.
func (s *Service) Archive(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.LiveRows(ctx)
	if err != nil {
		return err
	}
	real := realRows(rows)

	if len(real) > 0 {
		if err := s.repo.AppendHistory(ctx, real); err != nil {
			return err
		}
	}
	if err := s.repo.RewriteLive(ctx, nil); err != nil {
		return err
	}

	slog.Info("archived live orders", "count", len(real))
	return nil
}

// findOrder returns the index of the row matching both ids, or -1.
func findOrder(rows [][]interface{}, groupID, orderID string) int {
	for i, row := range rows {
		if sheet.Str(row, colID) == orderID && sheet.Str(row, colGroupID) == groupID {
			return i
		}
	}
	return -1
}
