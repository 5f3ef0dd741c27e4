package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the back-office API routes and /health.
func NewRouter(customers *CustomerHandler, accounts *AccountHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	customers.Register(r)
	accounts.Register(r)
	return r
}
