package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bankfront/internal/domain/client"
	"bankfront/internal/shared/validation"
)

// CustomerHandler serves /customers.
type CustomerHandler struct {
	clients *client.Service
}

func NewCustomerHandler(clients *client.Service) *CustomerHandler {
	return &CustomerHandler{clients: clients}
}

// Register mounts the customer routes on r.
func (h *CustomerHandler) Register(r *mux.Router) {
	r.HandleFunc("/customers", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/customers", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}", h.HandleGet).Methods(http.MethodGet)
}

// HandleCreate validates and stores a new customer
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var params client.CreateParams
	if !decodeBody(w, r, &params) {
		return
	}

	created, err := h.clients.CreateClient(r.Context(), params)
	if err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			writeValidationError(w, fields)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to create customer")
		writeError(w, r, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("customer_id", created.ID).Msg("customer created")
	writeJSON(w, http.StatusOK, created)
}

// HandleList returns every customer
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClients(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to list customers")
		writeError(w, r, http.StatusInternalServerError, "Failed to list customers")
		return
	}
	if clients == nil {
		clients = []*client.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

// HandleGet returns one customer
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	found, err := h.clients.GetClient(r.Context(), id)
	if errors.Is(err, client.ErrClientNotFound) {
		writeError(w, r, http.StatusNotFound, customerNotFound(id))
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("customer_id", id).Msg("failed to get customer")
		writeError(w, r, http.StatusInternalServerError, "Failed to get customer")
		return
	}

	writeJSON(w, http.StatusOK, found)
}

func customerNotFound(id int64) string {
	return fmt.Sprintf("Customer not found with ID: %d", id)
}
