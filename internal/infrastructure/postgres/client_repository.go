package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankfront/internal/domain/client"
)

// ClientRepository implements the client.Repository interface for PostgreSQL
type ClientRepository struct {
	db *DB
}

var _ client.Repository = (*ClientRepository)(nil)

// NewClientRepository creates a new PostgreSQL client repository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts a new client and returns it with its assigned ID
func (r *ClientRepository) Create(ctx context.Context, params client.CreateParams) (*client.Client, error) {
	query := `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email
	`

	var c client.Client
	if err := r.db.GetContext(ctx, &c, query, params.Name, params.Email); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &c, nil
}

// GetByID retrieves a client by its ID
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	query := `SELECT id, name, email FROM customers WHERE id = $1`

	var c client.Client
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, client.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

// List returns every client ordered by ID
func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	query := `SELECT id, name, email FROM customers ORDER BY id`

	clients := []*client.Client{}
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
