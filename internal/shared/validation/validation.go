package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// EmailPattern is the loose address shape accepted by the forms.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the project's custom tags:
// notblank (non-empty after trimming), mailbox (EmailPattern) and nonneg
// (a decimal.Decimal that is not below zero).
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
			return EmailPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("nonneg", nonNegative)
		instance = v
	})
	return instance
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// nonNegative compares the exact decimal, so amounts too small for a
// float64 keep their sign.
func nonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

// FieldErrors maps a field name to its first failing rule's message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MessageFunc resolves the message for a failed rule.
type MessageFunc func(fe validator.FieldError) string

// Messages is a MessageFunc backed by a "field.tag" lookup table.
func Messages(table map[string]string) MessageFunc {
	return func(fe validator.FieldError) string {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
		return fe.Error()
	}
}

// Check validates s and converts rule failures into FieldErrors.
// A nil return means s passed every rule.
func Check(s any, message MessageFunc) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}
