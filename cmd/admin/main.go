// Command admin drives the back-office API from the terminal: list, look up
// and create clients and accounts.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/shared/config"
	"bankfront/internal/shared/i18n"
)

const usage = `Bank Admin CLI - Management commands for the back-office API

Usage:
  admin <command> [options]

Commands:
  clients          List all clients
  client           Show one client
  create-client    Create a client
  accounts         List the accounts of a client
  account          Show one account
  create-account   Open an account for a client
  report           Summarize the accounts of every client

Examples:
  admin clients
  admin client --id=1
  admin create-client --name="Ada Lovelace" --email=ada@example.com
  admin accounts --client-id=1
  admin account --id=3
  admin create-account --client-id=1 --type=SAVINGS --balance=250.00
  admin report --workers=8

The API is located with BANK_API_URL (default http://localhost:8081).
`

// app carries what every command needs.
type app struct {
	api bankapi.API
	tr  *i18n.Catalog
	out io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"clients":        runClients,
	"client":         runClient,
	"create-client":  runCreateClient,
	"accounts":       runAccounts,
	"account":        runAccount,
	"create-account": runCreateAccount,
	"report":         runReport,
}

var (
	okColor  = color.New(color.FgGreen)
	errColor = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage, "\n")
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "help" || name == "-h" || name == "--help" {
		fmt.Print(usage, "\n")
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Printf("Unknown command: %s\n\n", name)
		fmt.Print(usage, "\n")
		os.Exit(1)
	}

	if err := config.LoadEnvFiles(); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		errColor.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	tr, err := i18n.New(cfg.UI.Locale)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := &app{
		api: bankapi.NewClient(cfg.API.BaseURL, bankapi.WithTimeout(cfg.API.Timeout)),
		tr:  tr,
		out: os.Stdout,
	}

	if err := cmd(context.Background(), a, os.Args[2:]); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
