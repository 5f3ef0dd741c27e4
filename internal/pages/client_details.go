package pages

import (
	"context"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
)

// ClientDetailsData is the client list plus the open details panel.
type ClientDetailsData struct {
	Clients  []client.Client
	Selected *client.Client
	Accounts []account.Account
	Open     bool
}

// ClientDetails lists every client and shows one client's accounts on demand.
type ClientDetails struct {
	api     bankapi.API
	tr      *i18n.Catalog
	machine *view.Machine[ClientDetailsData]
}

func NewClientDetails(api bankapi.API, tr *i18n.Catalog) *ClientDetails {
	return &ClientDetails{api: api, tr: tr, machine: view.NewMachine(ClientDetailsData{})}
}

func (p *ClientDetails) State() view.State[ClientDetailsData] {
	return p.machine.Snapshot()
}

// Mount loads the client list.
func (p *ClientDetails) Mount(ctx context.Context) view.State[ClientDetailsData] {
	return p.machine.Run(ctx, view.Cycle[ClientDetailsData]{
		Reset: true,
		Fetch: func(ctx context.Context) (view.Outcome[ClientDetailsData], error) {
			clients, err := p.api.ListClients(ctx)
			if err != nil {
				return view.Outcome[ClientDetailsData]{}, err
			}
			return view.Outcome[ClientDetailsData]{
				Apply: func(d *ClientDetailsData) { d.Clients = clients },
			}, nil
		},
		Recover:  func(d *ClientDetailsData) { d.Clients = nil },
		Describe: describe(p.tr, i18n.ErrLoadClients),
	})
}

// Open selects c and loads its accounts into the details panel.
func (p *ClientDetails) Open(ctx context.Context, c client.Client) view.State[ClientDetailsData] {
	return p.machine.Run(ctx, view.Cycle[ClientDetailsData]{
		Enter: func(d *ClientDetailsData) { d.Selected = &c },
		Fetch: func(ctx context.Context) (view.Outcome[ClientDetailsData], error) {
			accounts, err := p.api.ListAccountsByClient(ctx, c.ID)
			if err != nil {
				return view.Outcome[ClientDetailsData]{}, err
			}
			return view.Outcome[ClientDetailsData]{
				Apply: func(d *ClientDetailsData) {
					d.Accounts = accounts
					d.Open = true
				},
				Success: p.tr.T(i18n.OkAccountsShown, c.ID),
			}, nil
		},
		Recover: func(d *ClientDetailsData) {
			d.Accounts = nil
			d.Open = false
		},
		Describe: describe(p.tr, i18n.ErrLoadAccounts),
	})
}

// OpenByID opens the panel for a client of the loaded list.
func (p *ClientDetails) OpenByID(ctx context.Context, id int64) view.State[ClientDetailsData] {
	for _, c := range p.machine.Snapshot().Data.Clients {
		if c.ID == id {
			return p.Open(ctx, c)
		}
	}
	return p.machine.Reject(p.tr.T(i18n.ErrClientNotListed, id))
}

// Close hides the details panel and forgets the selection.
func (p *ClientDetails) Close() view.State[ClientDetailsData] {
	return p.machine.Update(func(d *ClientDetailsData) {
		d.Selected = nil
		d.Accounts = nil
		d.Open = false
	})
}
