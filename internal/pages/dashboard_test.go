package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"bankfront/internal/domain/client"
	"bankfront/internal/view"
)

func TestDashboardMount(t *testing.T) {
	api := &MockAPI{ListClientsFunc: func(context.Context) ([]client.Client, error) {
		return someClients(), nil
	}}

	st := NewDashboard(api, tr).Mount(context.Background())
	assert.Equal(t, view.Loaded, st.Phase)
	assert.Equal(t, 2, st.Data.ClientCount)
	assert.Empty(t, st.Error)
}

func TestDashboardMountFailure(t *testing.T) {
	calls := 0
	api := &MockAPI{ListClientsFunc: func(context.Context) ([]client.Client, error) {
		calls++
		if calls == 1 {
			return someClients(), nil
		}
		return nil, errors.New("dial tcp: connection refused")
	}}

	p := NewDashboard(api, tr)
	p.Mount(context.Background())
	st := p.Mount(context.Background())

	assert.Equal(t, view.Failed, st.Phase)
	assert.Equal(t, 0, st.Data.ClientCount)
	assert.Equal(t, "Error loading data: dial tcp: connection refused", st.Error)
	assert.False(t, p.State().Loading())
}
