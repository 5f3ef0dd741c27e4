package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return Wrap(sqlx.NewDb(raw, "postgres")), mock
}

func TestClientRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (name, email)")).
		WithArgs("Ada", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(7, "Ada", "ada@example.com"))

	c, err := repo.Create(context.Background(), client.CreateParams{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, &client.Client{ID: 7, Name: "Ada", Email: "ada@example.com"}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM customers WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(3, "Grace", "grace@example.com"))

		c, err := NewClientRepository(db).GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Grace", c.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM customers WHERE id").
			WithArgs(int64(3)).
			WillReturnError(sql.ErrNoRows)

		_, err := NewClientRepository(db).GetByID(context.Background(), 3)
		assert.ErrorIs(t, err, client.ErrClientNotFound)
	})
}

func TestClientRepositoryListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM customers ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	clients, err := NewClientRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestAccountRepositoryCreate(t *testing.T) {
	params := account.NewCreateParams(decimal.RequireFromString("250.50"), account.TypeSavings, 4)

	t.Run("inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (client_id, type, balance)")).
			WithArgs(int64(4), "SAVINGS", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "type", "balance"}).AddRow(11, 4, "SAVINGS", "250.50"))

		acc, err := NewAccountRepository(db).Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(11), acc.ID)
		assert.Equal(t, account.TypeSavings, acc.Type)
		assert.True(t, decimal.RequireFromString("250.5").Equal(acc.Balance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate type", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("INSERT INTO accounts").
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		_, err := NewAccountRepository(db).Create(context.Background(), params)
		assert.ErrorIs(t, err, account.ErrDuplicateType)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("connection refused")
		mock.ExpectQuery("INSERT INTO accounts").WillReturnError(boom)

		_, err := NewAccountRepository(db).Create(context.Background(), params)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to create account")
	})
}

func TestAccountRepositoryListByClientID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM accounts").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "type", "balance"}).
			AddRow(1, 4, "CURRENT", "10.00").
			AddRow(2, 4, "SAVINGS", "0"))

	accounts, err := NewAccountRepository(db).ListByClientID(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, account.TypeCurrent, accounts[0].Type)
	assert.True(t, accounts[1].Balance.IsZero())
}

func TestAccountRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM accounts WHERE id").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewAccountRepository(db).GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestAccountRepositoryExistsByClientAndType(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(4), "CURRENT").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewAccountRepository(db).ExistsByClientAndType(context.Background(), 4, account.TypeCurrent)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExtractSQLVerb(t *testing.T) {
	tests := map[string]string{
		"SELECT 1":                       "SELECT",
		"\n\t\tINSERT INTO accounts (x)": "INSERT",
		"update t set x = 1":             "UPDATE",
	}
	for in, want := range tests {
		if got := extractSQLVerb(in); got != want {
			t.Errorf("extractSQLVerb(%q) = %q, want %q", in, got, want)
		}
	}
}
