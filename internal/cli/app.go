// Package cli implements the interactive gallerie shell: a small REPL over
// the artwork repository, the credential store and the image uploader.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gallerie-app/gallerie/internal/auth"
	"github.com/gallerie-app/gallerie/internal/config"
	"github.com/gallerie-app/gallerie/internal/filex"
	"github.com/gallerie-app/gallerie/internal/gallery"
	"github.com/gallerie-app/gallerie/internal/harvard"
	"github.com/gallerie-app/gallerie/internal/images"
	"github.com/gallerie-app/gallerie/internal/kv"
	"github.com/gallerie-app/gallerie/internal/logging"
)

// App wires the services behind the REPL and carries the interactive state.
type App struct {
	config   *config.Config
	auth     *auth.Service
	repo     *gallery.Repository
	uploader images.Uploader
	log      logging.Logger
	reader   *bufio.Reader
	db       *sql.DB
}

// NewApp opens the configured key-value backend and assembles the services
// on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	app := &App{config: cfg, log: log, reader: bufio.NewReader(os.Stdin)}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open storage %q: %w", cfg.Storage, err)
	}

	source := harvard.NewClient(cfg.HarvardBaseURL, cfg.HarvardAPIKey, cfg.HTTPTimeout, log)
	app.repo = gallery.NewRepository(store, source, cfg.PageSize, log)
	app.auth = auth.NewService(store, log)
	app.uploader = images.NewFromConfig(cfg, log)

	return app, nil
}

func (a *App) openStore(ctx context.Context) (kv.Store, error) {
	switch a.config.Storage {
	case config.StorageSQLite:
		dir, err := filex.EnsureSubDir("data")
		if err != nil {
			return nil, err
		}
		db, err := kv.OpenSQLite(ctx, filepath.Join(dir, a.config.DatabaseDSN))
		if err != nil {
			return nil, err
		}
		a.db = db
		return kv.NewSQLiteStore(db), nil

	case config.StoragePostgres:
		db, err := kv.OpenPostgres(ctx, a.config.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.db = db
		return kv.NewPostgresStore(db), nil

	case config.StorageRedis:
		rdb, err := kv.OpenRedis(ctx, a.config.RedisAddr)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisStore(rdb), nil

	case config.StorageMemory:
		return kv.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", a.config.Storage)
	}
}

// Run loads the external collection and hands control to the REPL. It
// returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.repo.Initialize(ctx)

	printlnFn("Welcome to gallerie (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the storage handle, if any.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.CurrentUser(ctx) != nil
}

func (a *App) getStatus() string {
	user := a.auth.CurrentUser(context.Background())
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Email)
}
