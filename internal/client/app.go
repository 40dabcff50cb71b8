package client

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/snesterov/ciphervault/internal/adapter"
	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/service"
	"github.com/snesterov/ciphervault/internal/store"
)

// App is the CLI client application.
type App struct {
	services *service.ClientServices
	local    store.LocalVaultStorage
	logger   *logger.Logger

	// in and out are the command's terminal streams, injectable for tests.
	in  io.Reader
	out io.Writer

	reader *bufio.Reader
}

// NewApp wires the client stack from the merged configuration.
func NewApp(ctx context.Context, cfg config.ClientConfig, log *logger.Logger, in io.Reader, out io.Writer) (*App, error) {
	local, err := store.NewLocalStorage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	return &App{
		services: service.NewClientServices(serverAdapter, local, log),
		local:    local,
		logger:   log,
		in:       in,
		out:      out,
	}, nil
}

// Close releases the local cache.
func (a *App) Close() error {
	return a.local.Close()
}

// Run dispatches one subcommand. args holds the subcommand name followed by
// its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUnknownCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, rest)
	case "add":
		return a.cmdAdd(ctx, rest)
	case "get":
		return a.cmdGet(ctx, rest)
	case "update":
		return a.cmdUpdate(ctx, rest)
	case "list":
		return a.cmdList(ctx, rest)
	case "del":
		return a.cmdDelete(ctx, rest)
	case "gen":
		return a.cmdGenerate(rest)
	case "check":
		return a.cmdCheck(rest)
	default:
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, `usage: ciphervault-client <command> [flags]

commands:
  register   create an account
  add        encrypt and store a new vault item
  get        fetch and decrypt one item (optionally copy to clipboard)
  update     re-encrypt an item with a new secret, name, or notes
  list       list stored items
  del        delete an item
  gen        generate a random password
  check      estimate password strength`)
}
