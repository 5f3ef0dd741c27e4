package pages

import (
	"context"

	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
)

// DashboardData is the dashboard payload.
type DashboardData struct {
	ClientCount int
}

// Dashboard shows the number of clients and links to the management pages.
type Dashboard struct {
	api     bankapi.API
	tr      *i18n.Catalog
	machine *view.Machine[DashboardData]
}

func NewDashboard(api bankapi.API, tr *i18n.Catalog) *Dashboard {
	return &Dashboard{api: api, tr: tr, machine: view.NewMachine(DashboardData{})}
}

// Mount counts the clients. The count falls back to 0 when the list fails.
func (p *Dashboard) Mount(ctx context.Context) view.State[DashboardData] {
	return p.machine.Run(ctx, view.Cycle[DashboardData]{
		Reset: true,
		Fetch: func(ctx context.Context) (view.Outcome[DashboardData], error) {
			clients, err := p.api.ListClients(ctx)
			if err != nil {
				return view.Outcome[DashboardData]{}, err
			}
			return view.Outcome[DashboardData]{
				Apply: func(d *DashboardData) { d.ClientCount = len(clients) },
			}, nil
		},
		Recover:  func(d *DashboardData) { d.ClientCount = 0 },
		Describe: describe(p.tr, i18n.ErrLoadData),
	})
}

func (p *Dashboard) State() view.State[DashboardData] {
	return p.machine.Snapshot()
}
