package account

import (
	"context"
	"fmt"
)

// Service contains the business logic for account operations
type Service struct {
	repo    Repository
	clients ClientChecker
}

// NewService creates a new account service
func NewService(repo Repository, clients ClientChecker) *Service {
	return &Service{repo: repo, clients: clients}
}

// CreateAccount opens an account after checking the owner exists and does
// not already hold an account of the requested type.
func (s *Service) CreateAccount(ctx context.Context, params CreateParams) (*Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.clients.Exists(ctx, params.Owner())
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !ok {
		return nil, ErrClientNotFound
	}

	dup, err := s.repo.ExistsByClientAndType(ctx, params.Owner(), params.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if dup {
		return nil, ErrDuplicateType
	}

	return s.repo.Create(ctx, params)
}

// GetAccount retrieves an account by ID
func (s *Service) GetAccount(ctx context.Context, id int64) (*Account, error) {
	if id <= 0 {
		return nil, ErrAccountNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListAccountsByClientID returns the accounts of one client. Unknown
// clients simply have no accounts.
func (s *Service) ListAccountsByClientID(ctx context.Context, clientID int64) ([]*Account, error) {
	if clientID <= 0 {
		return []*Account{}, nil
	}
	return s.repo.ListByClientID(ctx, clientID)
}
