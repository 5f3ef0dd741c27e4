package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/infrastructure/memstore"
	httphandlers "bankfront/internal/interfaces/http"
	"bankfront/internal/shared/i18n"
)

func init() {
	color.NoColor = true
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	store, err := memstore.New()
	require.NoError(t, err)

	clients := client.NewService(memstore.NewClientRepository(store))
	accounts := account.NewService(memstore.NewAccountRepository(store), clients)
	srv := httptest.NewServer(httphandlers.NewRouter(
		httphandlers.NewCustomerHandler(clients),
		httphandlers.NewAccountHandler(accounts),
	))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &app{api: bankapi.NewClient(srv.URL), tr: i18n.MustNew("en"), out: out}, out
}

func TestClientCommands(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, runClients(ctx, a, nil))
	assert.Contains(t, out.String(), "No clients found.")

	out.Reset()
	require.NoError(t, runCreateClient(ctx, a, []string{"--name=Ada Lovelace", "--email=ada@example.com"}))
	assert.Contains(t, out.String(), "Client added successfully!")
	assert.Contains(t, out.String(), "ada@example.com")

	out.Reset()
	require.NoError(t, runClients(ctx, a, nil))
	assert.Contains(t, out.String(), "Ada Lovelace")

	out.Reset()
	require.NoError(t, runClient(ctx, a, []string{"--id=1"}))
	assert.Contains(t, out.String(), "Client ID 1 found!")

	err := runClient(ctx, a, []string{"--id=7"})
	require.Error(t, err)
	assert.Equal(t, "Client not found or lookup failed: Customer not found with ID: 7", err.Error())
}

func TestCreateClientValidation(t *testing.T) {
	a, _ := newTestApp(t)

	err := runCreateClient(context.Background(), a, []string{"--name= ", "--email=nope"})

	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, err.Error(), "email: Please enter a valid email.")
	assert.Contains(t, err.Error(), "name: Name is required.")
}

func TestAccountCommands(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, runCreateClient(ctx, a, []string{"--name=Ada Lovelace", "--email=ada@example.com"}))

	out.Reset()
	require.NoError(t, runAccounts(ctx, a, []string{"--client-id=1"}))
	assert.Contains(t, out.String(), "No accounts found.")

	out.Reset()
	require.NoError(t, runCreateAccount(ctx, a, []string{"--client-id=1", "--type=savings", "--balance=250"}))
	assert.Contains(t, out.String(), "Account created successfully!")
	assert.Contains(t, out.String(), "Savings Account")

	out.Reset()
	require.NoError(t, runAccount(ctx, a, []string{"--id=1"}))
	assert.Contains(t, out.String(), "Account ID 1 found!")

	out.Reset()
	require.NoError(t, runAccounts(ctx, a, []string{"--client-id=1"}))
	assert.Contains(t, out.String(), "Savings Account")

	err := runCreateAccount(ctx, a, []string{"--client-id=1", "--type=SAVINGS"})
	require.Error(t, err)
	assert.Equal(t, "Error creating account: Client already has a SAVINGS account.", err.Error())
}

func TestCreateAccountValidation(t *testing.T) {
	a, _ := newTestApp(t)

	err := runCreateAccount(context.Background(), a, []string{"--balance=-1"})

	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, err.Error(), "balance: Balance cannot be negative.")
	assert.Contains(t, err.Error(), "clientId: Select a client.")
	assert.Contains(t, err.Error(), "type: Select an account type.")
}

func TestRequiresPositiveID(t *testing.T) {
	a, out := newTestApp(t)

	err := runAccount(context.Background(), a, nil)

	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, out.String(), "Usage: admin account --id=<id>")
}

func TestReport(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, runReport(ctx, a, nil))
	assert.Contains(t, out.String(), "No clients found.")

	require.NoError(t, runCreateClient(ctx, a, []string{"--name=Ada Lovelace", "--email=ada@example.com"}))
	require.NoError(t, runCreateClient(ctx, a, []string{"--name=Grace Hopper", "--email=grace@example.com"}))
	require.NoError(t, runCreateAccount(ctx, a, []string{"--client-id=1", "--type=CURRENT", "--balance=100"}))
	require.NoError(t, runCreateAccount(ctx, a, []string{"--client-id=1", "--type=SAVINGS", "--balance=50"}))

	out.Reset()
	require.NoError(t, runReport(ctx, a, []string{"--workers=2"}))

	report := out.String()
	assert.Contains(t, report, "Ada Lovelace")
	assert.Contains(t, report, "Grace Hopper")
	assert.Contains(t, report, "2 client(s)")
	assert.Contains(t, report, a.tr.Money(decimal.NewFromInt(150)))
}
