// Package forms validates the add-client and open-account forms before
// anything is sent to the API. Messages are localized through i18n.
package forms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/shared/i18n"
	"bankfront/internal/shared/validation"
)

var messageKeys = map[string]string{
	"name.notblank":  i18n.FormNameRequired,
	"email.notblank": i18n.FormEmailRequired,
	"email.mailbox":  i18n.FormEmailInvalid,
	"balance.nonneg": i18n.FormBalanceNegative,
	"type.required":  i18n.FormTypeRequired,
	"type.oneof":     i18n.FormTypeRequired,
	"clientId.gt":    i18n.FormClientRequired,
}

func localized(tr *i18n.Catalog) validation.MessageFunc {
	return func(fe validator.FieldError) string {
		if key, ok := messageKeys[fe.Field()+"."+fe.Tag()]; ok {
			return tr.T(key)
		}
		return fe.Error()
	}
}

func check(s any, tr *i18n.Catalog) map[string]string {
	err := validation.Check(s, localized(tr))
	if err == nil {
		return nil
	}
	if fe, ok := err.(validation.FieldErrors); ok {
		return fe
	}
	return map[string]string{"": err.Error()}
}

// ClientForm holds the add-client inputs. Values are submitted untrimmed.
type ClientForm struct {
	Name   string            `json:"name" validate:"notblank"`
	Email  string            `json:"email" validate:"notblank,mailbox"`
	Errors map[string]string `json:"-" validate:"-"`
}

// ParseClientForm reads the add-client form fields.
func ParseClientForm(v url.Values) ClientForm {
	return ClientForm{Name: v.Get("name"), Email: v.Get("email")}
}

// Validate fills Errors and reports whether the form may be submitted.
func (f *ClientForm) Validate(tr *i18n.Catalog) bool {
	f.Errors = check(*f, tr)
	return len(f.Errors) == 0
}

// Params converts the form into an API payload.
func (f ClientForm) Params() client.CreateParams {
	return client.CreateParams{Name: f.Name, Email: f.Email}
}

// AccountForm holds the open-account inputs. Inline errors are only shown
// once the form has been submitted.
type AccountForm struct {
	BalanceInput string            `json:"-" validate:"-"`
	Balance      decimal.Decimal   `json:"balance" validate:"nonneg"`
	Type         account.Type      `json:"type" validate:"required,oneof=CURRENT SAVINGS"`
	ClientID     int64             `json:"clientId" validate:"gt=0"`
	Submitted    bool              `json:"-" validate:"-"`
	Errors       map[string]string `json:"-" validate:"-"`

	balanceUnparsable bool
}

// ParseAccountForm reads the open-account form fields. An empty balance
// counts as zero; an unparsable client id counts as no selection.
func ParseAccountForm(v url.Values) AccountForm {
	f := AccountForm{
		BalanceInput: strings.TrimSpace(v.Get("balance")),
		Type:         account.Type(v.Get("type")),
	}
	if f.BalanceInput != "" {
		d, err := decimal.NewFromString(f.BalanceInput)
		if err != nil {
			f.balanceUnparsable = true
		} else {
			f.Balance = d
		}
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(v.Get("clientId")), 10, 64); err == nil {
		f.ClientID = id
	}
	return f
}

// Submit marks the form submitted, fills Errors and reports whether the
// request may be sent.
func (f *AccountForm) Submit(tr *i18n.Catalog) bool {
	f.Submitted = true
	f.Errors = check(*f, tr)
	if f.balanceUnparsable {
		if f.Errors == nil {
			f.Errors = map[string]string{}
		}
		f.Errors["balance"] = tr.T(i18n.FormBalanceInvalid)
	}
	return len(f.Errors) == 0
}

// Params converts the form into an API payload.
func (f AccountForm) Params() account.CreateParams {
	return account.NewCreateParams(f.Balance, f.Type, f.ClientID)
}

// Selected reports whether id is the chosen client, for the dropdown.
func (f AccountForm) Selected(id int64) bool {
	return f.ClientID == id
}
