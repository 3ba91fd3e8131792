package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/mindfulhq/mindful/internal/client/config"
	"github.com/mindfulhq/mindful/internal/client/gateway"
	"github.com/mindfulhq/mindful/internal/client/mirror"
	"github.com/mindfulhq/mindful/internal/client/session"
	"github.com/mindfulhq/mindful/internal/client/storage"
	"github.com/mindfulhq/mindful/internal/client/sync"
	"github.com/mindfulhq/mindful/internal/logging"
	"github.com/mindfulhq/mindful/internal/models"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It holds the wired sync engine, the current
// identity and the input reader shared by all prompts.
type App struct {
	config *config.Config
	engine *sync.Engine
	db     *sql.DB
	reader *bufio.Reader
	user   *models.User
}

// NewApp opens the local mirror database, wires the gateway and the sync
// engine, and returns an App ready to Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	repo := mirror.NewSQLiteRepository(db)
	sessions := session.NewStore(repo)
	remote := gateway.NewClient(c.ServerURL)

	engine := sync.NewEngine(repo, sessions, remote, logger)

	return &App{
		config: c,
		engine: engine,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session, if any, then hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if u, err := a.engine.GetCurrentAuth(ctx); err == nil && u != nil {
		a.user = u
		log.Printf("Welcome back, %s", u.Username)
	}

	log.Println("Mindful CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) isAdmin() bool {
	return a.user != nil && a.user.Role == models.RoleAdmin
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	s := a.user.Username
	if a.user.Role == models.RoleAdmin {
		s += " admin"
	}
	return "(" + s + ")"
}
