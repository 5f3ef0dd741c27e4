package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"bankfront/internal/forms"
	"bankfront/internal/pages"
)

// HandleDashboard renders the client count.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	st := pages.NewDashboard(h.api, h.tr).Mount(r.Context())
	count(r.Context(), "dashboard", "mount", st.Phase)
	render(h, w, r, PathDashboard, st)
}

// HandleClients renders the client management page; ?id= runs a lookup.
func (h *Handler) HandleClients(w http.ResponseWriter, r *http.Request) {
	p := pages.NewClientManagement(h.api, h.tr)
	st := p.State()

	q := r.URL.Query()
	if q.Has("id") {
		st = p.LookupClient(r.Context(), q.Get("id"))
		count(r.Context(), "clients", "lookup", st.Phase)
	}
	render(h, w, r, PathClients, st)
}

// HandleAddClient submits the add-client form. A created client redirects
// to the client list.
func (h *Handler) HandleAddClient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p := pages.NewClientManagement(h.api, h.tr)
	st, created := p.AddClient(r.Context(), forms.ParseClientForm(r.PostForm))
	count(r.Context(), "clients", "add", st.Phase)

	if created {
		zerolog.Ctx(r.Context()).Info().Int64("client_id", st.Data.Created.ID).Msg("client created")
		http.Redirect(w, r, PathClientDetails, http.StatusSeeOther)
		return
	}
	render(h, w, r, PathClients, st)
}

// HandleClientDetails lists clients; ?client= opens one in the details panel.
func (h *Handler) HandleClientDetails(w http.ResponseWriter, r *http.Request) {
	p := pages.NewClientDetails(h.api, h.tr)
	st := p.Mount(r.Context())
	count(r.Context(), "client_details", "mount", st.Phase)

	q := r.URL.Query()
	if q.Has("client") && st.Error == "" {
		st = p.OpenByID(r.Context(), queryID(q, "client"))
		count(r.Context(), "client_details", "open", st.Phase)
	}
	render(h, w, r, PathClientDetails, st)
}

// HandleAccounts renders the account management page; ?id= runs a lookup.
func (h *Handler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	p := pages.NewAccountManagement(h.api, h.tr)
	st := p.Mount(r.Context())
	count(r.Context(), "accounts", "mount", st.Phase)

	q := r.URL.Query()
	if q.Has("id") {
		st = p.LookupAccount(r.Context(), q.Get("id"))
		count(r.Context(), "accounts", "lookup", st.Phase)
	}
	render(h, w, r, PathAccounts, st)
}

// HandleCreateAccount submits the open-account form. A created account
// redirects to the owner's account list.
func (h *Handler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p := pages.NewAccountManagement(h.api, h.tr)
	p.Mount(r.Context())

	form := forms.ParseAccountForm(r.PostForm)
	st, created := p.CreateAccount(r.Context(), form)
	count(r.Context(), "accounts", "create", st.Phase)

	if created {
		acc := st.Data.Created
		zerolog.Ctx(r.Context()).Info().Int64("account_id", acc.ID).Int64("client_id", acc.ClientID).Msg("account created")
		http.Redirect(w, r, PathAccountDetails+"?clientId="+strconv.FormatInt(acc.ClientID, 10), http.StatusSeeOther)
		return
	}
	render(h, w, r, PathAccounts, st)
}

// HandleAccountDetails lists the accounts of ?clientId=. With filter=1 the
// request is a filter change on a mounted page rather than a fresh mount.
func (h *Handler) HandleAccountDetails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientID := queryID(q, "clientId")

	p := pages.NewAccountDetails(h.api, h.tr)
	if q.Get("filter") == "" {
		st := p.Mount(r.Context(), clientID)
		count(r.Context(), "account_details", "mount", st.Phase)
		render(h, w, r, PathAccountDetails, st)
		return
	}

	st := p.Mount(r.Context(), 0)
	count(r.Context(), "account_details", "mount", st.Phase)
	if st.Error == "" {
		st = p.SelectClient(r.Context(), clientID)
		count(r.Context(), "account_details", "filter", st.Phase)
	}
	render(h, w, r, PathAccountDetails, st)
}

// queryID parses a positive id query parameter, or returns 0.
func queryID(q url.Values, key string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(q.Get(key)), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
