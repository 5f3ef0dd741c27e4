package memstore

import (
	"context"
	"fmt"
	"sort"

	"bankfront/internal/domain/account"
)

// AccountRepository implements account.Repository on top of Store.
type AccountRepository struct {
	store *Store
}

var _ account.Repository = (*AccountRepository)(nil)

// NewAccountRepository creates a new in-memory account repository
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if params.Balance == nil {
		return nil, fmt.Errorf("failed to create account: balance is required")
	}

	txn := r.store.db.Txn(true)
	defer txn.Abort()

	// memdb does not enforce unique indexes, so the write txn checks first.
	existing, err := txn.First(tableAccounts, "client_type", params.Owner(), string(params.Type))
	if err != nil {
		return nil, fmt.Errorf("failed to check account type: %w", err)
	}
	if existing != nil {
		return nil, account.ErrDuplicateType
	}

	acc := &account.Account{
		ID:       r.store.accountSeq.Add(1),
		ClientID: params.Owner(),
		Type:     params.Type,
		Balance:  *params.Balance,
	}
	if err := txn.Insert(tableAccounts, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	txn.Commit()

	out := *acc
	return &out, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableAccounts, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if raw == nil {
		return nil, account.ErrAccountNotFound
	}

	out := *raw.(*account.Account)
	return &out, nil
}

func (r *AccountRepository) ListByClientID(ctx context.Context, clientID int64) ([]*account.Account, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableAccounts, "client_id", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := []*account.Account{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		acc := *raw.(*account.Account)
		accounts = append(accounts, &acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

func (r *AccountRepository) ExistsByClientAndType(ctx context.Context, clientID int64, t account.Type) (bool, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableAccounts, "client_type", clientID, string(t))
	if err != nil {
		return false, fmt.Errorf("failed to check account type: %w", err)
	}
	return raw != nil, nil
}
