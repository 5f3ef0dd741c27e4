package memstore

import (
	"context"
	"fmt"
	"sort"

	"bankfront/internal/domain/client"
)

// ClientRepository implements client.Repository on top of Store.
type ClientRepository struct {
	store *Store
}

var _ client.Repository = (*ClientRepository)(nil)

// NewClientRepository creates a new in-memory client repository
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(ctx context.Context, params client.CreateParams) (*client.Client, error) {
	c := &client.Client{
		ID:    r.store.clientSeq.Add(1),
		Name:  params.Name,
		Email: params.Email,
	}

	txn := r.store.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tableClients, c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	txn.Commit()

	out := *c
	return &out, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableClients, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if raw == nil {
		return nil, client.ErrClientNotFound
	}

	out := *raw.(*client.Client)
	return &out, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableClients, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := []*client.Client{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		c := *raw.(*client.Client)
		clients = append(clients, &c)
	}
	// id index keys are varint-encoded, so iteration order is not numeric
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })

	return clients, nil
}
