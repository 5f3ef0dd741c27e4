package pages

import (
	"context"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
)

// AccountDetailsData is the client filter and the filtered account list.
type AccountDetailsData struct {
	Clients          []client.Client
	SelectedClientID int64
	Accounts         []account.Account
	AccountsLoaded   bool
}

// Empty reports whether the selected client's accounts loaded and there are
// none. An empty list is not an error.
func (d AccountDetailsData) Empty() bool {
	return d.AccountsLoaded && len(d.Accounts) == 0
}

// AccountDetails lists the accounts of the client picked in the filter.
type AccountDetails struct {
	api     bankapi.API
	tr      *i18n.Catalog
	machine *view.Machine[AccountDetailsData]
}

func NewAccountDetails(api bankapi.API, tr *i18n.Catalog) *AccountDetails {
	return &AccountDetails{api: api, tr: tr, machine: view.NewMachine(AccountDetailsData{})}
}

func (p *AccountDetails) State() view.State[AccountDetailsData] {
	return p.machine.Snapshot()
}

// Mount loads the clients, then the accounts of clientID. A clientID of 0
// means no client was given and only the clients are fetched.
func (p *AccountDetails) Mount(ctx context.Context, clientID int64) view.State[AccountDetailsData] {
	return p.machine.Run(ctx, view.Cycle[AccountDetailsData]{
		Reset: true,
		Enter: func(d *AccountDetailsData) { d.SelectedClientID = clientID },
		Fetch: func(ctx context.Context) (view.Outcome[AccountDetailsData], error) {
			clients, err := p.api.ListClients(ctx)
			if err != nil {
				return view.Outcome[AccountDetailsData]{}, err
			}
			if clientID <= 0 {
				return view.Outcome[AccountDetailsData]{
					Apply: func(d *AccountDetailsData) {
						d.Clients = clients
						d.Accounts = nil
						d.AccountsLoaded = false
					},
				}, nil
			}

			accounts, err := p.api.ListAccountsByClient(ctx, clientID)
			if err != nil {
				return view.Outcome[AccountDetailsData]{}, err
			}
			return view.Outcome[AccountDetailsData]{
				Apply: func(d *AccountDetailsData) {
					d.Clients = clients
					d.Accounts = accounts
					d.AccountsLoaded = true
				},
			}, nil
		},
		Recover:  clearAccounts,
		Describe: describe(p.tr, i18n.ErrLoadAccounts),
	})
}

// SelectClient switches the filter to clientID and loads its accounts.
// Overlapping calls are not sequenced: whichever response settles last is
// displayed.
func (p *AccountDetails) SelectClient(ctx context.Context, clientID int64) view.State[AccountDetailsData] {
	if clientID <= 0 {
		return p.machine.Update(func(d *AccountDetailsData) {
			d.SelectedClientID = 0
			clearAccounts(d)
		})
	}

	return p.machine.Run(ctx, view.Cycle[AccountDetailsData]{
		Enter: func(d *AccountDetailsData) { d.SelectedClientID = clientID },
		Fetch: func(ctx context.Context) (view.Outcome[AccountDetailsData], error) {
			accounts, err := p.api.ListAccountsByClient(ctx, clientID)
			if err != nil {
				return view.Outcome[AccountDetailsData]{}, err
			}
			return view.Outcome[AccountDetailsData]{
				Apply: func(d *AccountDetailsData) {
					d.Accounts = accounts
					d.AccountsLoaded = true
				},
				Success: p.tr.T(i18n.OkAccountsShown, clientID),
			}, nil
		},
		Recover:  clearAccounts,
		Describe: describe(p.tr, i18n.ErrLoadAccounts),
	})
}

func clearAccounts(d *AccountDetailsData) {
	d.Accounts = nil
	d.AccountsLoaded = false
}
