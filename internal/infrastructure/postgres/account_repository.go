package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"bankfront/internal/domain/account"
)

const uniqueViolation = "23505"

// AccountRepository implements the account.Repository interface for PostgreSQL
type AccountRepository struct {
	db *DB
}

var _ account.Repository = (*AccountRepository)(nil)

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. The (client_id, type) unique constraint
// backs up the service-level duplicate check.
func (r *AccountRepository) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if params.Balance == nil {
		return nil, fmt.Errorf("failed to create account: balance is required")
	}

	query := `
		INSERT INTO accounts (client_id, type, balance)
		VALUES ($1, $2, $3)
		RETURNING id, client_id, type, balance
	`

	var acc account.Account
	err := r.db.GetContext(ctx, &acc, query, params.Owner(), string(params.Type), *params.Balance)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, account.ErrDuplicateType
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &acc, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `SELECT id, client_id, type, balance FROM accounts WHERE id = $1`

	var acc account.Account
	err := r.db.GetContext(ctx, &acc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acc, nil
}

// ListByClientID retrieves all accounts owned by a client
func (r *AccountRepository) ListByClientID(ctx context.Context, clientID int64) ([]*account.Account, error) {
	query := `
		SELECT id, client_id, type, balance
		FROM accounts
		WHERE client_id = $1
		ORDER BY id
	`

	accounts := []*account.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ExistsByClientAndType checks whether the client already holds an account of type t
func (r *AccountRepository) ExistsByClientAndType(ctx context.Context, clientID int64, t account.Type) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE client_id = $1 AND type = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, clientID, string(t)); err != nil {
		return false, fmt.Errorf("failed to check account type: %w", err)
	}
	return exists, nil
}
