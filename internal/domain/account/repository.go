package account

import "context"

// Repository defines the interface for account data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create stores a new account. Implementations return ErrDuplicateType
	// when the client already holds an account of the same type.
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id int64) (*Account, error)

	// ListByClientID retrieves all accounts owned by a client
	ListByClientID(ctx context.Context, clientID int64) ([]*Account, error)

	// ExistsByClientAndType checks whether the client already holds an account of type t
	ExistsByClientAndType(ctx context.Context, clientID int64, t Type) (bool, error)
}

// ClientChecker confirms an owning client exists before an account is opened.
type ClientChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
