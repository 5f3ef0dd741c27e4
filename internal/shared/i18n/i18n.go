// Package i18n holds the user-facing copy of the web front-end in English
// and French, served through universal-translator.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/locales/currency"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/shopspring/decimal"
)

// DefaultLocale is used when the configured locale is unknown.
const DefaultLocale = "en"

// Catalog translates message keys for one locale.
type Catalog struct {
	trans ut.Translator
}

// New loads the catalog for locale, falling back to English.
func New(locale string) (*Catalog, error) {
	english := en.New()
	uni := ut.New(english, english, fr.New())

	for loc, msgs := range catalogs {
		trans, _ := uni.GetTranslator(loc)
		for key, text := range msgs {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("failed to add %s translation %q: %w", loc, key, err)
			}
		}
	}

	trans, found := uni.GetTranslator(locale)
	if !found {
		trans, _ = uni.GetTranslator(DefaultLocale)
	}

	return &Catalog{trans: trans}, nil
}

// MustNew is New for tests and static setup.
func MustNew(locale string) *Catalog {
	c, err := New(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the active locale code.
func (c *Catalog) Locale() string {
	return c.trans.Locale()
}

// T returns the message for key with {0}, {1}... replaced by params. An
// unknown key is returned as-is.
func (c *Catalog) T(key string, params ...any) string {
	strs := make([]string, len(params))
	for i, p := range params {
		switch v := p.(type) {
		case string:
			strs[i] = v
		case int64:
			strs[i] = strconv.FormatInt(v, 10)
		default:
			strs[i] = fmt.Sprint(v)
		}
	}

	s, err := c.trans.T(key, strs...)
	if err != nil {
		return key
	}
	return s
}

// Money formats an amount in euros for the active locale. The digits come
// from the decimal itself; the locale only supplies the separators and where
// the symbol and sign go.
func (c *Catalog) Money(d decimal.Decimal) string {
	sample := 1000.0
	if d.IsNegative() {
		sample = -sample
	}
	layout := c.trans.FmtCurrency(sample, 2, currency.EUR)

	// layout holds "1<group>000<decimal>00" between the symbol and sign.
	start := strings.IndexByte(layout, '1')
	end := strings.LastIndexByte(layout, '0') + 1
	thousands := strings.Index(layout, "000")
	if start < 0 || thousands < start || end-thousands < 5 {
		return c.trans.FmtCurrency(d.InexactFloat64(), 2, currency.EUR)
	}
	group := layout[start+1 : thousands]
	sep := layout[thousands+3 : end-2]

	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return layout[:start] + groupDigits(whole, group) + sep + frac + layout[end:]
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
