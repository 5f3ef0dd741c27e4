package bankapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestListClients(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"Ada","email":"ada@example.com"},{"id":2,"name":"Grace","email":"grace@example.com"}]`)
	})

	clients, err := c.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, client.Client{ID: 2, Name: "Grace", Email: "grace@example.com"}, clients[1])
}

func TestCreateClientSendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"name": " Ada ", "email": "ada@example.com"}, body)

		io.WriteString(w, `{"id":5,"name":" Ada ","email":"ada@example.com"}`)
	})

	created, err := c.CreateClient(context.Background(), client.CreateParams{Name: " Ada ", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestCreateAccountSendsNumericBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"balance":120.5,"type":"SAVINGS","clientId":3}`, string(raw))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":9,"clientId":3,"type":"SAVINGS","balance":120.5}`)
	})

	acc, err := c.CreateAccount(context.Background(), account.NewCreateParams(decimal.RequireFromString("120.5"), account.TypeSavings, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(9), acc.ID)
	assert.True(t, decimal.RequireFromString("120.5").Equal(acc.Balance))
}

func TestPaths(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/accounts/customer/5":
			io.WriteString(w, `[]`)
		default:
			io.WriteString(w, `{"id":5}`)
		}
	})
	ctx := context.Background()

	_, err := c.GetClient(ctx, 5)
	require.NoError(t, err)
	_, err = c.GetAccount(ctx, 5)
	require.NoError(t, err)
	accounts, err := c.ListAccountsByClient(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	assert.Equal(t, []string{
		"GET /customers/5",
		"GET /accounts/5",
		"GET /accounts/customer/5",
	}, got)
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		fromServer bool
	}{
		{
			name:       "server message",
			status:     http.StatusNotFound,
			body:       `{"timestamp":"2025-01-01T00:00:00","status":404,"error":"Not Found","message":"Customer not found with ID: 7"}`,
			wantMsg:    "Customer not found with ID: 7",
			fromServer: true,
		},
		{
			name:    "no body",
			status:  http.StatusInternalServerError,
			body:    ``,
			wantMsg: "Request failed with status code 500",
		},
		{
			name:    "empty message",
			status:  http.StatusBadRequest,
			body:    `{"message":""}`,
			wantMsg: "Request failed with status code 400",
		},
		{
			name:    "non-json body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: "Request failed with status code 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.GetClient(context.Background(), 7)
			require.Error(t, err)

			var re *RequestError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.status, re.Status)
			assert.Equal(t, tt.wantMsg, re.Message)
			assert.Equal(t, tt.fromServer, re.FromServer)
			assert.Equal(t, tt.wantMsg, MessageOf(err))
			assert.Equal(t, tt.status == http.StatusNotFound, IsNotFound(err))
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).ListClients(context.Background())
	require.Error(t, err)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Status)
	assert.NotEmpty(t, re.Message)
	assert.NotNil(t, re.Unwrap())
	assert.False(t, IsNotFound(err))
}

func TestMessageOfPlainError(t *testing.T) {
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
}

func TestTimeout(t *testing.T) {
	t.Run("none by default", func(t *testing.T) {
		c := NewClient("http://bank.test")
		assert.Zero(t, c.httpClient.Timeout)
	})

	t.Run("zero keeps the default", func(t *testing.T) {
		c := NewClient("http://bank.test", WithTimeout(0))
		assert.Zero(t, c.httpClient.Timeout)
	})

	t.Run("applied when set", func(t *testing.T) {
		c := NewClient("http://bank.test", WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})

	t.Run("caller client is left untouched", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Minute}
		for _, opts := range [][]Option{
			{WithHTTPClient(hc), WithTimeout(2 * time.Second)},
			{WithTimeout(2 * time.Second), WithHTTPClient(hc)},
		} {
			c := NewClient("http://bank.test", opts...)
			assert.Equal(t, 2*time.Second, c.httpClient.Timeout)
			assert.NotSame(t, hc, c.httpClient)
		}
		assert.Equal(t, time.Minute, hc.Timeout)
	})
}

func TestTimeoutAbortsSlowRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	_, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond)).ListClients(context.Background())

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Status)
}
