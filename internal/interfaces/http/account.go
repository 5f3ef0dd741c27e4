package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bankfront/internal/domain/account"
	"bankfront/internal/shared/validation"
)

// AccountHandler serves /accounts.
type AccountHandler struct {
	accounts *account.Service
}

func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register mounts the account routes on r.
func (h *AccountHandler) Register(r *mux.Router) {
	r.HandleFunc("/accounts", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/accounts/customer/{customerId}", h.HandleListByCustomer).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}", h.HandleGet).Methods(http.MethodGet)
}

// HandleCreate opens an account for an existing customer
func (h *AccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var params account.CreateParams
	if !decodeBody(w, r, &params) {
		return
	}

	created, err := h.accounts.CreateAccount(r.Context(), params)
	var fields validation.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fields):
		writeValidationError(w, fields)
		return
	case errors.Is(err, account.ErrClientNotFound):
		writeError(w, r, http.StatusNotFound, customerNotFound(params.Owner()))
		return
	case errors.Is(err, account.ErrDuplicateType):
		writeError(w, r, http.StatusConflict, fmt.Sprintf("Client already has a %s account.", params.Type))
		return
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("customer_id", params.Owner()).Msg("failed to create account")
		writeError(w, r, http.StatusInternalServerError, "Failed to create account")
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("account_id", created.ID).
		Int64("customer_id", created.ClientID).
		Str("type", string(created.Type)).
		Msg("account created")
	writeJSON(w, http.StatusOK, created)
}

// HandleGet returns one account
func (h *AccountHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid account ID")
		return
	}

	found, err := h.accounts.GetAccount(r.Context(), id)
	if errors.Is(err, account.ErrAccountNotFound) {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("Account not found with ID: %d", id))
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("account_id", id).Msg("failed to get account")
		writeError(w, r, http.StatusInternalServerError, "Failed to get account")
		return
	}

	writeJSON(w, http.StatusOK, found)
}

// HandleListByCustomer returns the accounts of one customer, possibly none
func (h *AccountHandler) HandleListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	accounts, err := h.accounts.ListAccountsByClientID(r.Context(), customerID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("customer_id", customerID).Msg("failed to list accounts")
		writeError(w, r, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}
