package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/veriscan/veriscan-go/internal/client/activity"
	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/config"
	"github.com/veriscan/veriscan-go/internal/client/session"
	"github.com/veriscan/veriscan-go/internal/client/stats"
	"github.com/veriscan/veriscan-go/internal/client/store"
	"github.com/veriscan/veriscan-go/internal/client/verify"
	"github.com/veriscan/veriscan-go/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session, the activity engine, and the verification flow
// behind an interactive REPL.
type App struct {
	config    *config.Config
	client    api.Client
	session   *session.Manager
	engine    *activity.Engine
	stats     *stats.Aggregator
	submitter *verify.Submitter
	store     *store.SQLiteStore
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the client from cfg: it opens the local session store and
// binds every service to one API client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error opening session store", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, st, log)

	return &App{
		config:    cfg,
		client:    apiClient,
		session:   session.NewManager(apiClient, st, log),
		engine:    activity.NewEngine(apiClient, cfg.SnapshotLimit, log),
		stats:     stats.NewAggregator(apiClient),
		submitter: verify.NewSubmitter(apiClient),
		store:     st,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores any persisted session and starts the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.session.Init(ctx)
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.displayName())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// displayName returns the current user's name, falling back to the email.
func (a *App) displayName() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// status renders the prompt decoration: the signed-in email or "guest".
func (a *App) status() string {
	if a.session.Loading() {
		return "..."
	}
	if u := a.session.CurrentUser(); u != nil {
		return u.Email
	}
	return "guest"
}
