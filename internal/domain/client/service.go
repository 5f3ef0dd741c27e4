package client

import (
	"context"
	"errors"
)

// Service contains the business logic for client operations
type Service struct {
	repo Repository
}

// NewService creates a new client service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateClient validates and stores a new client
func (s *Service) CreateClient(ctx context.Context, params CreateParams) (*Client, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// GetClient retrieves a client by ID
func (s *Service) GetClient(ctx context.Context, id int64) (*Client, error) {
	if id <= 0 {
		return nil, ErrClientNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListClients returns every client ordered by ID
func (s *Service) ListClients(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

// Exists reports whether a client with the given ID is stored.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetClient(ctx, id)
	if errors.Is(err, ErrClientNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
