package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/avetins/sessionkeeper/internal/client/api"
	"github.com/avetins/sessionkeeper/internal/client/config"
	"github.com/avetins/sessionkeeper/internal/client/repositories/cache"
	"github.com/avetins/sessionkeeper/internal/client/services"
	"github.com/avetins/sessionkeeper/internal/logging"
)

// sessionIface is the slice of the session service the CLI depends on.
// Tests substitute a fake; production wiring passes *services.SessionService.
type sessionIface interface {
	State() services.SessionState
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	FetchProfile(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, id int64, upd api.UserUpdate) error
	Logout()
	DeleteAccount(ctx context.Context) error
	Bootstrap(ctx context.Context) error
	Close() error
}

type App struct {
	config  *config.Config
	session sessionIface
	client  api.Client
	log     logging.Logger
	reader  *bufio.Reader
}

// NewApp wires the durable cache, REST client and session service
// according to cfg and returns an App ready to Run.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	var repo cache.Repository
	switch cfg.CacheBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		repo = cache.NewRedisRepository(rdb, "sessionkeeper")
	case config.BackendSQLite:
		db, err := cache.Open(ctx, cfg.CacheDSN)
		if err != nil {
			return nil, fmt.Errorf("open session cache: %w", err)
		}
		repo = cache.NewSQLiteRepository(db)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	apiClient := api.NewRESTClient(cfg.ServerBaseURL, cfg.APIKey, cfg.HTTPTimeout, logger)
	resolver := services.NewListScanResolver(apiClient, cfg.PageSize)
	session := services.NewSessionService(apiClient, repo, resolver, logger)

	return &App{
		config:  cfg,
		session: session,
		client:  apiClient,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().LoggedIn()
}

// getStatus renders the prompt fragment: the signed-in email, or a
// placeholder while a transition is in flight.
func (a *App) getStatus() string {
	st := a.session.State()
	switch {
	case st.Loading:
		return "(...)"
	case st.LoggedIn():
		return "(" + st.Identity.Email + ")"
	default:
		return ""
	}
}

// Run restores any cached session and then blocks in the REPL until the
// user exits. Background profile fetches are joined on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.session.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if st := a.session.State(); st.LoggedIn() {
		printlnFn("Restored session for", st.Identity.Email)
	}

	printlnFn("SessionKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
