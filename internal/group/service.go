package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hctsai/lunchgo/internal/localtime"
	"github.com/hctsai/lunchgo/internal/sheet"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrGroupStillOpen = errors.New("an open group already exists")
	ErrInvalidGroup   = errors.New("invalid group")
)

// Archiver moves the live order ledger into history. Implemented by the
// order service; creating a group closes out the previous one's ledger.
type Archiver interface {
	Archive(ctx context.Context) error
}

// Service handles group lifecycle business logic
type Service struct {
	repo     *Repository
	archiver Archiver
}

// NewService creates a new group service
func NewService(repo *Repository, archiver Archiver) *Service {
	return &Service{repo: repo, archiver: archiver}
}

// Create opens a new ordering group. It is rejected while the most recently
// created group's deadline is still in the future; otherwise the previous
// ledger is archived first, then the group row (and its menu, if any) is
// persisted.
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidGroup)
	}
	if req.Deadline == "" {
		return nil, fmt.Errorf("%w: missing deadline", ErrInvalidGroup)
	}

	groups, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) > 0 {
		last := groups[len(groups)-1]
		deadline, err := localtime.ParseDeadline(last.Deadline)
		if err != nil {
			// Safety valve: a row we cannot parse must not block every
			// future group.
			slog.Warn("could not check group overlap", "group", last.ID, "error", err)
		} else if localtime.Now().Before(deadline) {
			return nil, fmt.Errorf("%w: 目前尚有未結單的團購 (%s)，結單時間：%s，請勿重複開團！",
				ErrGroupStillOpen, last.Name,
				deadline.In(localtime.Location).Format(localtime.TimestampLayout))
		}
	}

	// Close out the previous round before the new one starts.
	if err := s.archiver.Archive(ctx); err != nil {
		return nil, err
	}

	g := &Group{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Deadline:        req.Deadline,
		CreatedAt:       localtime.Now().Format(localtime.NaiveLayout),
		Menu:            req.Menu,
		RestaurantName:  req.RestaurantName,
		MenuImageURL:    req.MenuImageURL,
		Note:            req.Note,
		RestaurantPhone: req.RestaurantPhone,
	}

	if err := s.repo.Append(ctx, g); err != nil {
		return nil, err
	}
	if err := s.repo.SaveMenu(ctx, g.ID, g.Menu); err != nil {
		return nil, err
	}

	slog.Info("group created", "group", g.ID, "name", g.Name, "deadline", g.Deadline)
	return g, nil
}

// List returns all groups in creation order, skipping rows too short to
// decode.
func (s *Service) List(ctx context.Context) ([]*Group, error) {
	rows, err := s.repo.Rows(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]*Group, 0, len(rows))
	for _, row := range rows {
		if len(row) < minGroupCells {
			continue
		}
		groups = append(groups, groupFromRow(row))
	}
	return groups, nil
}

// Get returns one group with its menu attached.
func (s *Service) Get(ctx context.Context, id string) (*Group, error) {
	groups, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == id {
			menu, err := s.repo.Menu(ctx, id)
			if err != nil {
				return nil, err
			}
			g.Menu = menu
			return g, nil
		}
	}
	return nil, ErrGroupNotFound
}

// UpdateDeadline amends only the deadline of an existing group.
func (s *Service) UpdateDeadline(ctx context.Context, id, newDeadline string) error {
	if newDeadline == "" {
		return fmt.Errorf("%w: missing deadline", ErrInvalidGroup)
	}

	rows, err := s.repo.Rows(ctx)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if sheet.Str(row, colID) == id {
			// Data rows start at sheet row 2.
			return s.repo.UpdateDeadlineCell(ctx, i+2, newDeadline)
		}
	}
	return ErrGroupNotFound
}
