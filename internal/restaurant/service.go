package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidRestaurant = errors.New("invalid restaurant")

// Service handles restaurant business logic
type Service struct {
	repo *Repository
}

// NewService creates a new restaurant service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Save upserts a restaurant, generating an id for new ones.
func (s *Service) Save(ctx context.Context, rest *Restaurant) (*Restaurant, error) {
	if rest.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidRestaurant)
	}
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	if err := s.repo.Upsert(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// List returns all saved restaurants.
func (s *Service) List(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.All(ctx)
}
