package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/minired/internal/client/client"
	"github.com/dmitrijs2005/minired/internal/client/config"
	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/dmitrijs2005/minired/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/minired/internal/client/services"
	"github.com/dmitrijs2005/minired/internal/client/session"
	"github.com/dmitrijs2005/minired/internal/client/ui"
	"github.com/dmitrijs2005/minired/internal/filex"
	"github.com/dmitrijs2005/minired/internal/logging"
)

const (
	databaseFile = "minired.db"
	historyFile  = "history"
	logFile      = "minired.log"
)

// Session is the part of the session gateway the CLI drives.
type Session interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, email, password, bio string) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, bio, profilePic *string) error
	Verify(ctx context.Context) (*models.User, error)
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Snapshot)) (cancel func())
}

type App struct {
	sess  Session
	posts services.PostService
	// token and ping read the API client without owning its credential.
	token func() string
	ping  func(ctx context.Context) error

	rl  LineReader
	out io.Writer
	log logging.Logger

	apiURL  string
	closers []io.Closer

	// userLogout tells a requested logout apart from a rejected token.
	userLogout atomic.Bool
}

// NewApp wires the client from cfg: data directory, log file, token
// database, HTTP client, session gateway and readline.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error creating data dir: %w", err)
	}

	lf, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	logger, err := logging.NewText(lf, cfg.LogLevel)
	if err != nil {
		_ = lf.Close()
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, databaseFile))
	if err != nil {
		_ = lf.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(cfg.APIURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger.With("component", "http")),
	)
	store := metadata.NewTokenStore(metadata.NewSQLiteRepository(db))
	gw := session.New(api, store, session.WithLogger(logger.With("component", "session")))
	if cfg.ForceLogoutOn401 {
		api.SetUnauthorizedHandler(gw.HandleUnauthorized)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "minired> ",
		HistoryFile:     filepath.Join(dir, historyFile),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		_ = db.Close()
		_ = lf.Close()
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}

	a := newApp(gw, services.NewPostService(api), rl, rl.Stdout(), logger)
	a.token = api.Token
	a.ping = api.Ping
	a.apiURL = api.BaseURL()
	a.closers = []io.Closer{rl, db, lf}
	return a, nil
}

func newApp(sess Session, posts services.PostService, rl LineReader, out io.Writer, log logging.Logger) *App {
	return &App{
		sess:  sess,
		posts: posts,
		token: func() string { return "" },
		ping:  func(context.Context) error { return nil },
		rl:    rl,
		out:   out,
		log:   log,
	}
}

// Run restores the session and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println(ui.Header("Mini Red Social (type 'help' for commands)"))
	a.restore(ctx)

	cancel := a.sess.Subscribe(a.watchSession())
	defer cancel()

	runREPL(ctx, a, a.rl, a.out)
}

func (a *App) restore(ctx context.Context) {
	a.println(ui.MutedStyle.Render("Loading session..."))

	if err := a.ping(ctx); err != nil {
		a.log.Warn(ctx, "backend not reachable", "url", a.apiURL, "error", err)
		a.println(ui.Error("Server at " + a.apiURL + " is not reachable."))
	}

	if err := a.sess.Initialize(ctx); err != nil {
		a.report(err)
	}

	snap := a.sess.Snapshot()
	if snap.IsAuthenticated() {
		a.println(ui.Success("Welcome back, " + snap.User.DisplayName() + "!"))
	} else {
		a.println("You are not logged in. Use 'login' or 'register'.")
	}
}

// watchSession reports sessions that end without the user asking.
func (a *App) watchSession() func(session.Snapshot) {
	var wasAuthenticated atomic.Bool
	wasAuthenticated.Store(a.sess.Snapshot().IsAuthenticated())

	return func(s session.Snapshot) {
		prev := wasAuthenticated.Swap(s.IsAuthenticated())
		if prev && s.State == session.Anonymous && !a.userLogout.Load() {
			a.println(ui.Error("Your session has ended. Please log in again."))
		}
	}
}

func (a *App) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.Snapshot().IsAuthenticated()
}

func (a *App) prompt() string {
	snap := a.sess.Snapshot()
	if snap.IsAuthenticated() {
		return fmt.Sprintf("minired (%s)> ", snap.User.DisplayName())
	}
	return "minired (guest)> "
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints err the way a user should see it.
func (a *App) report(err error) {
	if err == nil {
		return
	}

	var (
		authErr    *session.AuthenticationError
		profileErr *session.ProfileUpdateError
		actionErr  *services.ActionError
		msg        string
	)
	switch {
	case errors.Is(err, errCanceled):
		a.println(ui.MutedStyle.Render("Canceled."))
		return
	case errors.Is(err, session.ErrSuperseded):
		msg = "The session changed while the request was running."
	case errors.Is(err, session.ErrNotAuthenticated):
		msg = "Please log in first."
	case errors.Is(err, session.ErrInvalidSession):
		msg = "Your session is no longer valid. Please log in again."
	case errors.As(err, &authErr):
		msg = authErr.Message
	case errors.As(err, &profileErr):
		msg = profileErr.Message
	case errors.As(err, &actionErr):
		msg = actionErr.Message
	default:
		msg = err.Error()
	}
	if errors.Is(err, client.ErrUnavailable) {
		msg += " (server unreachable)"
	}
	a.println(ui.Error(msg))
}
