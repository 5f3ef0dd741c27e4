package pages

import (
	"context"
	"strings"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/forms"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
)

// Server messages the account service answers with.
const (
	msgCustomerNotFound = "Customer not found"
	msgAlreadyHasType   = "already has a"
)

// AccountManagementData backs the open-account form and the search panel.
type AccountManagementData struct {
	Clients  []client.Client
	Form     forms.AccountForm
	Created  *account.Account
	SearchID string
	Selected *account.Account
}

// AccountManagement opens accounts and looks them up by id.
type AccountManagement struct {
	api     bankapi.API
	tr      *i18n.Catalog
	machine *view.Machine[AccountManagementData]
}

func NewAccountManagement(api bankapi.API, tr *i18n.Catalog) *AccountManagement {
	return &AccountManagement{api: api, tr: tr, machine: view.NewMachine(AccountManagementData{})}
}

func (p *AccountManagement) State() view.State[AccountManagementData] {
	return p.machine.Snapshot()
}

// Mount loads the clients offered by the owner dropdown.
func (p *AccountManagement) Mount(ctx context.Context) view.State[AccountManagementData] {
	return p.machine.Run(ctx, view.Cycle[AccountManagementData]{
		Reset: true,
		Fetch: func(ctx context.Context) (view.Outcome[AccountManagementData], error) {
			clients, err := p.api.ListClients(ctx)
			if err != nil {
				return view.Outcome[AccountManagementData]{}, err
			}
			return view.Outcome[AccountManagementData]{
				Apply: func(d *AccountManagementData) { d.Clients = clients },
			}, nil
		},
		Describe: describe(p.tr, i18n.ErrLoadData),
	})
}

// CreateAccount submits the form. A form that fails the advisory checks is
// kept with its inline errors and no request is sent. The returned bool
// reports whether the account was created.
func (p *AccountManagement) CreateAccount(ctx context.Context, form forms.AccountForm) (view.State[AccountManagementData], bool) {
	if !form.Submit(p.tr) {
		p.machine.Update(func(d *AccountManagementData) { d.Form = form })
		return p.machine.Reject(p.tr.T(i18n.ErrFormInvalid)), false
	}

	st := p.machine.Run(ctx, view.Cycle[AccountManagementData]{
		Enter: func(d *AccountManagementData) { d.Form = form },
		Fetch: func(ctx context.Context) (view.Outcome[AccountManagementData], error) {
			created, err := p.api.CreateAccount(ctx, form.Params())
			if err != nil {
				return view.Outcome[AccountManagementData]{}, err
			}
			return view.Outcome[AccountManagementData]{
				Apply: func(d *AccountManagementData) {
					d.Form = forms.AccountForm{}
					d.Created = created
				},
				Success: p.tr.T(i18n.OkAccountCreated),
			}, nil
		},
		Describe: func(err error) string { return p.createAccountMessage(form, err) },
	})
	return st, st.Phase == view.Loaded
}

// createAccountMessage turns the known account-service rejections into
// friendlier text.
func (p *AccountManagement) createAccountMessage(form forms.AccountForm, err error) string {
	msg := bankapi.MessageOf(err)
	switch {
	case strings.Contains(msg, msgCustomerNotFound):
		return p.tr.T(i18n.ErrClientIDNotFound, form.ClientID)
	case strings.Contains(msg, msgAlreadyHasType):
		return p.tr.T(i18n.ErrClientHasType, string(form.Type))
	default:
		return p.tr.T(i18n.ErrCreateAccount) + ": " + msg
	}
}

// LookupAccount searches an account by the id typed into the search box.
func (p *AccountManagement) LookupAccount(ctx context.Context, raw string) view.State[AccountManagementData] {
	id, ok := parseID(raw)
	if !ok {
		p.machine.Update(func(d *AccountManagementData) {
			d.SearchID = raw
			d.Selected = nil
		})
		return p.machine.Reject(p.tr.T(i18n.ErrInvalidID))
	}

	return p.machine.Run(ctx, view.Cycle[AccountManagementData]{
		Enter: func(d *AccountManagementData) { d.SearchID = raw },
		Fetch: func(ctx context.Context) (view.Outcome[AccountManagementData], error) {
			found, err := p.api.GetAccount(ctx, id)
			if err != nil {
				return view.Outcome[AccountManagementData]{}, err
			}
			return view.Outcome[AccountManagementData]{
				Apply:   func(d *AccountManagementData) { d.Selected = found },
				Success: p.tr.T(i18n.OkAccountFound, found.ID),
			}, nil
		},
		Recover:  func(d *AccountManagementData) { d.Selected = nil },
		Describe: describe(p.tr, i18n.ErrLookupAccount),
	})
}
