package client

import "context"

// Repository defines the interface for client data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
}
