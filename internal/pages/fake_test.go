package pages

import (
	"context"
	"errors"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
)

var tr = i18n.MustNew("en")

// MockAPI is a func-field implementation of bankapi.API
type MockAPI struct {
	ListClientsFunc          func(ctx context.Context) ([]client.Client, error)
	CreateClientFunc         func(ctx context.Context, params client.CreateParams) (*client.Client, error)
	GetClientFunc            func(ctx context.Context, id int64) (*client.Client, error)
	ListAccountsByClientFunc func(ctx context.Context, clientID int64) ([]account.Account, error)
	CreateAccountFunc        func(ctx context.Context, params account.CreateParams) (*account.Account, error)
	GetAccountFunc           func(ctx context.Context, id int64) (*account.Account, error)
}

var _ bankapi.API = (*MockAPI)(nil)

var errUnexpected = errors.New("unexpected call")

func (m *MockAPI) ListClients(ctx context.Context) ([]client.Client, error) {
	if m.ListClientsFunc != nil {
		return m.ListClientsFunc(ctx)
	}
	return nil, errUnexpected
}

func (m *MockAPI) CreateClient(ctx context.Context, params client.CreateParams) (*client.Client, error) {
	if m.CreateClientFunc != nil {
		return m.CreateClientFunc(ctx, params)
	}
	return nil, errUnexpected
}

func (m *MockAPI) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	if m.GetClientFunc != nil {
		return m.GetClientFunc(ctx, id)
	}
	return nil, errUnexpected
}

func (m *MockAPI) ListAccountsByClient(ctx context.Context, clientID int64) ([]account.Account, error) {
	if m.ListAccountsByClientFunc != nil {
		return m.ListAccountsByClientFunc(ctx, clientID)
	}
	return nil, errUnexpected
}

func (m *MockAPI) CreateAccount(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, params)
	}
	return nil, errUnexpected
}

func (m *MockAPI) GetAccount(ctx context.Context, id int64) (*account.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, id)
	}
	return nil, errUnexpected
}

// serverError is what the API client returns for a non-2xx with a message.
func serverError(status int, msg string) error {
	return &bankapi.RequestError{Status: status, Message: msg, FromServer: true}
}

func someClients() []client.Client {
	return []client.Client{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
		{ID: 2, Name: "Grace Hopper", Email: "grace@example.com"},
	}
}
