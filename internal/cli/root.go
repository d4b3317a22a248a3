// Package cli implements coconctl, the command-line client for Notre Cocon.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/notrecocon/cocon/internal/clientstate"
	"github.com/notrecocon/cocon/internal/config"
	"github.com/notrecocon/cocon/internal/session"
	"github.com/notrecocon/cocon/pkg/logging"
)

// app carries what every command needs. The session store is built lazily
// so that commands like "admin" work without a server.
type app struct {
	v   *viper.Viper
	cfg *config.Config

	in  io.Reader
	out io.Writer

	sessionFile *clientstate.File
	gateway     *session.RemoteGateway
	store       *session.Store
	server      string

	now        func() time.Time
	readSecret func(prompt string) (string, error)
}

// NewRootCommand builds the coconctl command tree reading from in and writing to out.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{v: config.New(), in: in, out: out, now: time.Now}
	a.readSecret = a.promptSecret

	root := &cobra.Command{
		Use:   "coconctl",
		Short: "Notre Cocon from the command line",
		Long: `coconctl reads and writes a Notre Cocon journal.

Configuration sources (highest precedence first):
  1. Command line flags
  2. Environment variables (COCON_*)
  3. Config file (COCON_CONFIG, ./cocon.yaml, ~/.config/cocon/cocon.yaml)

Log in once with "coconctl login"; the role and token are kept in the
session file until "coconctl logout".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("server", "", "server URL (default from the session file or config)")
	pf.String("session-file", "", "session file (default ~/.config/cocon/session.yaml)")
	pf.String("log-level", "warn", "debug, info, warn or error")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.eventsCmd(),
		a.logCmd(),
		a.bucketCmd(),
		a.suggestCmd(),
		a.songCmd(),
		a.resetCmd(),
		a.exportCmd(),
		a.adminCmd(),
	)
	return root
}

// Execute runs coconctl with the process's arguments and streams.
func Execute() int {
	root := NewRootCommand(os.Stdin, os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := config.BindFlags(a.v, flags, "log.level"); err != nil {
		return err
	}
	if f := flags.Lookup("session-file"); f.Changed {
		a.v.Set("client.session_file", f.Value.String())
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logging.Configure(cfg.Log.Level, cfg.Log.Format)

	path := cfg.Client.SessionFile
	if path == "" {
		if path, err = clientstate.DefaultPath(); err != nil {
			return err
		}
	}
	a.sessionFile = clientstate.Open(path)

	saved, err := a.sessionFile.Read()
	if err != nil {
		return err
	}
	switch f := flags.Lookup("server"); {
	case f.Changed:
		a.server = f.Value.String()
	case saved.Server != "":
		a.server = saved.Server
	default:
		a.server = cfg.Client.Server
	}
	return nil
}

// session returns an initialized store connected to the server.
func (a *app) session(ctx context.Context) (*session.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	a.gateway = session.NewRemoteGateway(nil, a.server)
	a.store = session.NewStore(a.gateway, a.sessionFile)
	if err := a.store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("cannot reach %s: %w", a.server, err)
	}
	return a.store, nil
}

// loggedIn is session plus a check that a role is set.
func (a *app) loggedIn(ctx context.Context) (*session.Store, error) {
	s, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	if s.State().Role == "" {
		return nil, errors.New(`not logged in; run "coconctl login"`)
	}
	return s, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// promptSecret reads a line without echo when stdin is a terminal.
func (a *app) promptSecret(prompt string) (string, error) {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.printf("%s", prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		a.printf("\n")
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
