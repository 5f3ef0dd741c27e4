package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uitable"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/forms"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/i18n"
)

const defaultTimeout = 30 * time.Second

var errUsage = errors.New("invalid arguments")

func newFlagSet(a *app, name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		fmt.Fprintf(a.out, "Usage: admin %s %s\n\nOptions:\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

func requirePositive(fs *flag.FlagSet, name string, v int64) error {
	if v <= 0 {
		fs.Usage()
		return fmt.Errorf("%w: --%s must be a positive id", errUsage, name)
	}
	return nil
}

// apiError prefixes err with the localized failure message, the way the
// pages present it.
func (a *app) apiError(prefixKey string, err error) error {
	return fmt.Errorf("%s: %s", a.tr.T(prefixKey), bankapi.MessageOf(err))
}

func (a *app) success(msg string) {
	okColor.Fprintln(a.out, msg)
}

func (a *app) clientTable(clients ...client.Client) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow(strings.ToUpper(a.tr.T("form.id")), strings.ToUpper(a.tr.T("form.name")), strings.ToUpper(a.tr.T("form.email")))
	for _, c := range clients {
		table.AddRow(c.ID, c.Name, c.Email)
	}
	fmt.Fprintln(a.out, table)
}

func (a *app) accountTable(accounts ...account.Account) {
	table := uitable.New()
	table.AddRow(
		strings.ToUpper(a.tr.T("account.id")),
		strings.ToUpper(a.tr.T("form.type")),
		strings.ToUpper(a.tr.T("account.balance")),
		strings.ToUpper(a.tr.T("account.client_id")),
	)
	for _, acc := range accounts {
		table.AddRow(acc.ID, a.tr.T("account_type."+string(acc.Type)), a.tr.Money(acc.Balance), acc.ClientID)
	}
	fmt.Fprintln(a.out, table)
}

func runClients(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "clients", "[options]")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	clients, err := a.api.ListClients(ctx)
	if err != nil {
		return a.apiError(i18n.ErrLoadClients, err)
	}
	if len(clients) == 0 {
		fmt.Fprintln(a.out, a.tr.T("empty.clients"))
		return nil
	}

	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	a.clientTable(clients...)
	return nil
}

func runClient(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "client", "--id=<id>")
	id := fs.Int64("id", 0, "Client ID")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(fs, "id", *id); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	c, err := a.api.GetClient(ctx, *id)
	if err != nil {
		return a.apiError(i18n.ErrLookupClient, err)
	}
	a.success(a.tr.T(i18n.OkClientFound, c.ID))
	a.clientTable(*c)
	return nil
}

func runCreateClient(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "create-client", "--name=<name> --email=<email>")
	name := fs.String("name", "", "Client name")
	email := fs.String("email", "", "Client email")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := forms.ClientForm{Name: *name, Email: *email}
	if !form.Validate(a.tr) {
		return fieldErrors(form.Errors)
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	c, err := a.api.CreateClient(ctx, form.Params())
	if err != nil {
		return a.apiError(i18n.ErrAddClient, err)
	}
	a.success(a.tr.T(i18n.OkClientAdded))
	a.clientTable(*c)
	return nil
}

func runAccounts(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "accounts", "--client-id=<id>")
	clientID := fs.Int64("client-id", 0, "Client ID whose accounts are listed")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(fs, "client-id", *clientID); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	accounts, err := a.api.ListAccountsByClient(ctx, *clientID)
	if err != nil {
		return a.apiError(i18n.ErrLoadAccounts, err)
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, a.tr.T("empty.accounts"))
		return nil
	}
	a.accountTable(accounts...)
	return nil
}

func runAccount(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "account", "--id=<id>")
	id := fs.Int64("id", 0, "Account ID")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requirePositive(fs, "id", *id); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	acc, err := a.api.GetAccount(ctx, *id)
	if err != nil {
		return a.apiError(i18n.ErrLookupAccount, err)
	}
	a.success(a.tr.T(i18n.OkAccountFound, acc.ID))
	a.accountTable(*acc)
	return nil
}

func runCreateAccount(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "create-account", "--client-id=<id> --type=CURRENT|SAVINGS [--balance=<amount>]")
	clientID := fs.Int64("client-id", 0, "Owner client ID")
	typ := fs.String("type", "", "Account type (CURRENT or SAVINGS)")
	balance := fs.String("balance", "0", "Initial balance")
	timeout := fs.Duration("timeout", defaultTimeout, "Timeout for the request (e.g., 5s, 1m)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := forms.ParseAccountForm(url.Values{
		"clientId": {strconv.FormatInt(*clientID, 10)},
		"type":     {strings.ToUpper(*typ)},
		"balance":  {*balance},
	})
	if !form.Submit(a.tr) {
		return fieldErrors(form.Errors)
	}

	ctx, cancel := withTimeout(ctx, *timeout)
	defer cancel()

	acc, err := a.api.CreateAccount(ctx, form.Params())
	if err != nil {
		return a.apiError(i18n.ErrCreateAccount, err)
	}
	a.success(a.tr.T(i18n.OkAccountCreated))
	a.accountTable(*acc)
	return nil
}

// fieldErrors joins form errors in a stable order.
func fieldErrors(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+errs[f])
	}
	return fmt.Errorf("%w: %s", errUsage, strings.Join(msgs, "; "))
}
