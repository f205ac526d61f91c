// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pol-safe/internal/config"
	"github.com/MKhiriev/go-pol-safe/internal/logger"
	"github.com/MKhiriev/go-pol-safe/internal/primitives"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/service"
	"github.com/MKhiriev/go-pol-safe/models"
)

// PasswordEnv names the environment variable read when -password is not
// given.
const PasswordEnv = "POL_PASSWORD"

// App runs one pol subcommand against the configured safe.
type App struct {
	svc service.SafeService
	cfg *config.StructuredConfig

	in        io.Reader
	out       io.Writer
	getenv    func(string) string
	clipboard func(string) error

	commands map[string]func(ctx context.Context, args []string) error
}

// Option overrides a dependency of [App].
type Option func(*App)

// WithIO sets the streams secrets are read from and results written to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithGetenv replaces os.Getenv for credential lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) { a.getenv = getenv }
}

// WithClipboard replaces the system clipboard used by `get -clip`.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.clipboard = write }
}

// NewApp returns the pol application for svc configured by cfg.
func NewApp(svc service.SafeService, cfg *config.StructuredConfig, opts ...Option) (*App, error) {
	if svc == nil || cfg == nil {
		return nil, fmt.Errorf("client app needs a service and a config")
	}

	a := &App{
		svc:       svc,
		cfg:       cfg,
		in:        os.Stdin,
		out:       os.Stdout,
		getenv:    os.Getenv,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.commands = map[string]func(ctx context.Context, args []string) error{
		"init":   a.runInit,
		"new":    a.runNew,
		"add":    a.runAdd,
		"list":   a.runList,
		"get":    a.runGet,
		"append": a.runAppend,
		"merge":  a.runMerge,
		"keys":   a.runKeys,
	}
	return a, nil
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	logger.FromContext(ctx).Debug().Str("command", args[0]).Str("safe", a.cfg.Safe.Path).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) runInit(ctx context.Context, args []string) error {
	fs := newFlagSet("init")
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	if err := a.svc.Init(ctx, generateOptions(a.cfg)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s with %d blocks\n", a.cfg.Safe.Path, a.cfg.Safe.NBlocks)
	return nil
}

func (a *App) runNew(ctx context.Context, args []string) error {
	fs := newFlagSet("new")
	password := fs.String("password", "", "master password")
	listPassword := fs.String("list-password", "", "list-only password")
	appendPassword := fs.String("append-password", "", "append-only password")
	derived := fs.Bool("derived", false, "let the derived list and append keys open the container")
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	var opts []safe.ContainerOption
	if *listPassword != "" {
		opts = append(opts, safe.WithListPassword(*listPassword))
	}
	if *appendPassword != "" {
		opts = append(opts, safe.WithAppendPassword(*appendPassword))
	}
	if *derived {
		opts = append(opts, safe.WithDerivedDelegates())
	}

	if err := a.svc.NewContainer(ctx, a.password(*password), opts...); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "container created")
	return nil
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	cred, e, err := a.entryArgs("add", args)
	if err != nil {
		return err
	}
	return a.svc.Add(ctx, cred, e)
}

func (a *App) runAppend(ctx context.Context, args []string) error {
	cred, e, err := a.entryArgs("append", args)
	if err != nil {
		return err
	}
	return a.svc.Append(ctx, cred, e)
}

func (a *App) runList(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	cred := a.credentialFlags(fs)
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	entries, err := a.svc.List(ctx, cred())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		pending := ""
		if e.Pending {
			pending = "(pending)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Note, pending)
	}
	return tw.Flush()
}

func (a *App) runGet(ctx context.Context, args []string) error {
	fs := newFlagSet("get")
	cred := a.credentialFlags(fs)
	clip := fs.Bool("clip", false, "copy the secret to the clipboard instead of printing it")
	rest, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}

	secret, err := a.svc.Get(ctx, cred(), rest[0])
	if err != nil {
		return err
	}

	if *clip {
		if err = a.clipboard(secret); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "secret copied to clipboard")
		return nil
	}
	fmt.Fprintln(a.out, secret)
	return nil
}

func (a *App) runMerge(ctx context.Context, args []string) error {
	fs := newFlagSet("merge")
	cred := a.credentialFlags(fs)
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}
	return a.svc.Merge(ctx, cred())
}

func (a *App) runKeys(ctx context.Context, args []string) error {
	fs := newFlagSet("keys")
	password := fs.String("password", "", "master password")
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	encoded, err := a.svc.Keys(ctx, a.password(*password))
	if err != nil {
		return err
	}
	for _, role := range models.Capabilities {
		fmt.Fprintf(a.out, "%s\t%s\n", role, encoded[role])
	}
	return nil
}

// entryArgs parses `[-password P | -key K] [-note N] [-secret S] NAME`.
// Without -secret the secret is read as one line from the input.
func (a *App) entryArgs(name string, args []string) (models.Credentials, models.Entry, error) {
	fs := newFlagSet(name)
	cred := a.credentialFlags(fs)
	note := fs.String("note", "", "entry note, visible with list access")
	secret := fs.String("secret", "", "entry secret; read from stdin when empty")
	rest, err := parseArgs(fs, args, 1)
	if err != nil {
		return models.Credentials{}, models.Entry{}, err
	}

	e := models.Entry{Key: rest[0], Note: *note, Secret: *secret}
	if e.Secret == "" {
		line, readErr := bufio.NewReader(a.in).ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return models.Credentials{}, models.Entry{}, fmt.Errorf("read secret: %w", readErr)
		}
		e.Secret = strings.TrimRight(line, "\r\n")
	}
	return cred(), e, nil
}

// credentialFlags registers -password and -key on fs. The returned func
// must be called after parsing.
func (a *App) credentialFlags(fs *flag.FlagSet) func() models.Credentials {
	password := fs.String("password", "", "container password")
	key := fs.String("key", "", "capability key printed by `pol keys`")
	return func() models.Credentials {
		if *key != "" {
			return models.Credentials{Key: *key}
		}
		return models.Credentials{Password: a.password(*password)}
	}
}

func (a *App) password(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.getenv(PasswordEnv)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs parses flags placed before or after the positional arguments
// and checks that exactly want positional arguments remain.
func parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) != want {
		return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, fs.Name(), want, len(positional))
	}
	return positional, nil
}

// generateOptions maps the configuration onto the layout of a new safe.
func generateOptions(cfg *config.StructuredConfig) safe.GenerateOptions {
	return safe.GenerateOptions{
		NBlocks:        cfg.Safe.NBlocks,
		BytesPerBlock:  cfg.Safe.BytesPerBlock,
		BlockIndexSize: cfg.Safe.BlockIndexSize,
		SliceSize:      cfg.Safe.SliceSize,
		Primitives: primitives.Options{
			BlockCipher:   cfg.Crypto.BlockCipher,
			KeyStretching: cfg.Crypto.KeyStretching,
			KeyDerivation: cfg.Crypto.KeyDerivation,
			Envelope:      primitives.EnvelopeNaClBox,
			Cost:          cfg.Crypto.Cost,
		},
	}
}
