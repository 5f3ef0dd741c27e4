// Package pages holds the five page models of the back-office front-end.
//
// A page model is built per browser request. Mount runs the page's initial
// fetch, user actions run further cycles on the same view.Machine, and the
// handler renders whatever snapshot the last cycle settled on.
package pages

import (
	"strconv"
	"strings"

	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
)

// describe builds the "<prefix>: <message>" banner for a failed fetch.
func describe(tr *i18n.Catalog, prefixKey string) func(error) string {
	return func(err error) string {
		return tr.T(prefixKey) + ": " + bankapi.MessageOf(err)
	}
}

// parseID reads a positive identifier typed into a search box.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
