package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/interfaces/batch"
	"bankfront/internal/shared/i18n"
)

type clientSummary struct {
	Client   client.Client
	Accounts []account.Account
	Err      error
}

func (s clientSummary) total() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range s.Accounts {
		sum = sum.Add(a.Balance)
	}
	return sum
}

// accountsJob loads the accounts of one client into a shared result slot.
type accountsJob struct {
	api    bankapi.API
	result *clientSummary
}

func (j accountsJob) Execute(ctx context.Context) error {
	accounts, err := j.api.ListAccountsByClient(ctx, j.result.Client.ID)
	j.result.Accounts = accounts
	j.result.Err = err
	return err
}

func (j accountsJob) Description() string {
	return "accounts of client " + strconv.FormatInt(j.result.Client.ID, 10)
}

func runReport(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "report", "[options]")
	workers := fs.Int("workers", 4, "Number of concurrent workers")
	delay := fs.Duration("delay", 0, "Pause between the requests of each worker")
	timeout := fs.Duration("timeout", 5*time.Minute, "Timeout for the whole report")
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

	summaries := make([]clientSummary, len(clients))
	jobs := make([]batch.Job, len(clients))
	for i, c := range clients {
		summaries[i].Client = c
		jobs[i] = accountsJob{api: a.api, result: &summaries[i]}
	}

	pool := batch.NewWorkerPool(ctx, *workers, *delay, len(jobs))
	pool.Start()
	pool.SubmitBatch(jobs)
	failed := pool.Shutdown()

	table := uitable.New()
	table.AddRow("ID", "CLIENT", "CURRENT", "SAVINGS", "TOTAL")
	grand := decimal.Zero
	for _, s := range summaries {
		if s.Err != nil {
			table.AddRow(s.Client.ID, s.Client.Name, "-", "-", bankapi.MessageOf(s.Err))
			continue
		}
		current, savings := "-", "-"
		for _, acc := range s.Accounts {
			switch acc.Type {
			case account.TypeCurrent:
				current = a.tr.Money(acc.Balance)
			case account.TypeSavings:
				savings = a.tr.Money(acc.Balance)
			}
		}
		grand = grand.Add(s.total())
		table.AddRow(s.Client.ID, s.Client.Name, current, savings, a.tr.Money(s.total()))
	}
	fmt.Fprintln(a.out, table)
	fmt.Fprintf(a.out, "\n%d client(s), total balance %s\n", len(clients), a.tr.Money(grand))

	if failed > 0 {
		return fmt.Errorf("%d of %d client(s) could not be loaded", failed, len(clients))
	}
	return nil
}
