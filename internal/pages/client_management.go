package pages

import (
	"context"

	"bankfront/internal/domain/client"
	"bankfront/internal/forms"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
)

// ClientManagementData backs the add-client form and the search panel.
type ClientManagementData struct {
	Form     forms.ClientForm
	Created  *client.Client
	SearchID string
	Selected *client.Client
}

// ClientManagement adds clients and looks them up by id. It has no mount
// fetch.
type ClientManagement struct {
	api     bankapi.API
	tr      *i18n.Catalog
	machine *view.Machine[ClientManagementData]
}

func NewClientManagement(api bankapi.API, tr *i18n.Catalog) *ClientManagement {
	return &ClientManagement{api: api, tr: tr, machine: view.NewMachine(ClientManagementData{})}
}

func (p *ClientManagement) State() view.State[ClientManagementData] {
	return p.machine.Snapshot()
}

// AddClient validates the form and, when it passes, creates the client once.
// An invalid form only updates the inline errors: no banner, no call. The
// returned bool reports whether the client was created.
func (p *ClientManagement) AddClient(ctx context.Context, form forms.ClientForm) (view.State[ClientManagementData], bool) {
	if !form.Validate(p.tr) {
		return p.machine.Update(func(d *ClientManagementData) { d.Form = form }), false
	}

	st := p.machine.Run(ctx, view.Cycle[ClientManagementData]{
		Enter: func(d *ClientManagementData) { d.Form = form },
		Fetch: func(ctx context.Context) (view.Outcome[ClientManagementData], error) {
			created, err := p.api.CreateClient(ctx, form.Params())
			if err != nil {
				return view.Outcome[ClientManagementData]{}, err
			}
			return view.Outcome[ClientManagementData]{
				Apply: func(d *ClientManagementData) {
					d.Form = forms.ClientForm{}
					d.Created = created
				},
				Success: p.tr.T(i18n.OkClientAdded),
			}, nil
		},
		Describe: describe(p.tr, i18n.ErrAddClient),
	})
	return st, st.Phase == view.Loaded
}

// LookupClient searches a client by the id typed into the search box.
func (p *ClientManagement) LookupClient(ctx context.Context, raw string) view.State[ClientManagementData] {
	id, ok := parseID(raw)
	if !ok {
		p.machine.Update(func(d *ClientManagementData) {
			d.SearchID = raw
			d.Selected = nil
		})
		return p.machine.Reject(p.tr.T(i18n.ErrInvalidID))
	}

	return p.machine.Run(ctx, view.Cycle[ClientManagementData]{
		Enter: func(d *ClientManagementData) { d.SearchID = raw },
		Fetch: func(ctx context.Context) (view.Outcome[ClientManagementData], error) {
			found, err := p.api.GetClient(ctx, id)
			if err != nil {
				return view.Outcome[ClientManagementData]{}, err
			}
			return view.Outcome[ClientManagementData]{
				Apply:   func(d *ClientManagementData) { d.Selected = found },
				Success: p.tr.T(i18n.OkClientFound, found.ID),
			}, nil
		},
		Recover:  func(d *ClientManagementData) { d.Selected = nil },
		Describe: describe(p.tr, i18n.ErrLookupClient),
	})
}
