package account

import (
	"errors"

	"github.com/shopspring/decimal"

	"bankfront/internal/shared/validation"
)

func init() {
	// Balances travel as JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Type is the kind of bank account. A client holds at most one of each.
type Type string

const (
	TypeCurrent Type = "CURRENT"
	TypeSavings Type = "SAVINGS"
)

// Types lists the account types in display order.
func Types() []Type {
	return []Type{TypeCurrent, TypeSavings}
}

// IsValid reports whether t is a known account type.
func (t Type) IsValid() bool {
	return t == TypeCurrent || t == TypeSavings
}

// Domain errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrDuplicateType   = errors.New("client already has an account of this type")
)

// Account represents a bank account owned by one client
type Account struct {
	ID       int64           `json:"id" db:"id"`
	ClientID int64           `json:"clientId" db:"client_id"`
	Type     Type            `json:"type" db:"type"`
	Balance  decimal.Decimal `json:"balance" db:"balance"`
}

// CreateParams contains parameters for opening a new account. Pointer
// fields distinguish "missing" from zero in decoded request bodies.
type CreateParams struct {
	Balance  *decimal.Decimal `json:"balance" validate:"required,nonneg"`
	Type     Type             `json:"type" validate:"required,oneof=CURRENT SAVINGS"`
	ClientID *int64           `json:"clientId" validate:"required"`
}

// NewCreateParams builds CreateParams from concrete values.
func NewCreateParams(balance decimal.Decimal, t Type, clientID int64) CreateParams {
	return CreateParams{Balance: &balance, Type: t, ClientID: &clientID}
}

// Owner returns the client ID, or 0 when it is missing.
func (p CreateParams) Owner() int64 {
	if p.ClientID == nil {
		return 0
	}
	return *p.ClientID
}

var fieldMessages = map[string]string{
	"balance.required":  "Balance is required.",
	"balance.nonneg":    "Balance must be at least 0.",
	"type.required":     "Account type is required.",
	"type.oneof":        "Account type must be CURRENT or SAVINGS.",
	"clientId.required": "Client ID is required.",
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	return validation.Check(p, validation.Messages(fieldMessages))
}
