// Package web serves the server-rendered back-office pages. Every request
// builds a fresh page model, runs its mount or action against the API and
// renders the resulting view state.
package web

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"bankfront/internal/domain/account"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/view"
	assets "bankfront/internal/web"
)

var (
	pageMeter      = otel.Meter("bankfront/web")
	pageActions, _ = pageMeter.Int64Counter("web.page.actions",
		metric.WithDescription("Page mounts and user actions by outcome"),
	)
)

// Handler renders the pages against the back-office API.
type Handler struct {
	api       bankapi.API
	tr        *i18n.Catalog
	templates map[string]*template.Template
}

// NewHandler parses the embedded templates once per page.
func NewHandler(api bankapi.API, tr *i18n.Catalog) (*Handler, error) {
	funcs := template.FuncMap{
		"t":     tr.T,
		"money": tr.Money,
		"typeLabel": func(t account.Type) string {
			return tr.T("account_type." + string(t))
		},
		"accountTypes": account.Types,
	}

	h := &Handler{api: api, tr: tr, templates: make(map[string]*template.Template, len(Routes))}
	for _, route := range Routes {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(assets.FS,
			"templates/layout.html",
			"templates/"+route.Template+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", route.Template, err)
		}
		h.templates[route.Template] = tmpl
	}
	return h, nil
}

// Register mounts the pages, static assets and health check on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc(PathDashboard, h.HandleDashboard).Methods(http.MethodGet)
	r.HandleFunc(PathClients, h.HandleClients).Methods(http.MethodGet)
	r.HandleFunc(PathClients, h.HandleAddClient).Methods(http.MethodPost)
	r.HandleFunc(PathClientDetails, h.HandleClientDetails).Methods(http.MethodGet)
	r.HandleFunc(PathAccounts, h.HandleAccounts).Methods(http.MethodGet)
	r.HandleFunc(PathAccounts, h.HandleCreateAccount).Methods(http.MethodPost)
	r.HandleFunc(PathAccountDetails, h.HandleAccountDetails).Methods(http.MethodGet)

	r.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static()))))
}

type pageData[T any] struct {
	Locale string
	Title  string
	Active string
	Nav    []Route
	State  view.State[T]
}

func render[T any](h *Handler, w http.ResponseWriter, r *http.Request, path string, st view.State[T]) {
	route := routeFor(path)
	data := pageData[T]{
		Locale: h.tr.Locale(),
		Title:  route.Label,
		Active: route.Path,
		Nav:    Routes,
		State:  st,
	}

	var buf bytes.Buffer
	if err := h.templates[route.Template].ExecuteTemplate(&buf, "layout.html", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", route.Template).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// count records one settled page action.
func count(ctx context.Context, page, action string, phase view.Phase) {
	pageActions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", page),
		attribute.String("action", action),
		attribute.String("outcome", phase.String()),
	))
}

// HandleHealth reports liveness of the web server.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
