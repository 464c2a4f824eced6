package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/notetree/internal/auth"
	"github.com/heartmarshall/notetree/internal/config"
	"github.com/heartmarshall/notetree/internal/service/tree"
	"github.com/heartmarshall/notetree/internal/transport/middleware"
	"github.com/heartmarshall/notetree/internal/transport/rest"
	"github.com/heartmarshall/notetree/internal/transport/ws"
	"github.com/jonboulle/clockwork"
)

// App is the wired application: the tree store, its change feed and the
// HTTP API in front of them.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	tree    *tree.Service
	hub     *ws.Hub
	limiter *middleware.RateLimiter
	handler http.Handler
}

// Run is the application entry point. It loads configuration, initializes
// the logger and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth", cfg.Auth.Enabled()),
	)

	a := New(cfg, logger, clockwork.NewRealClock())
	defer a.Close()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	return a.Serve(ctx, ln)
}

// New wires the application. Call Close when done, or let Serve do it.
func New(cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *App {
	svc := tree.NewService(logger, tree.UUIDGenerator{}, tree.LightColorGenerator{}, clock, tree.Options{
		RootName:                   cfg.Tree.RootName,
		DefaultIcon:                cfg.Tree.DefaultIcon,
		DefaultChatBackgroundColor: cfg.Tree.DefaultChatBackgroundColor,
	})

	hub := ws.NewHub(logger, middleware.OriginChecker(cfg.CORS))
	svc.OnChange(hub.Publish)

	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)

	var protected middleware.Middleware
	if cfg.Auth.Enabled() {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
		protected = middleware.Auth(jwt)
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Tree:   rest.NewTreeHandler(svc, logger),
		Health: rest.NewHealthHandler(svc, hub, BuildVersion(), clock),
		Feed:   hub,
		Global: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		),
		Protected: protected,
	})

	return &App{
		cfg:     cfg,
		log:     logger,
		tree:    svc,
		hub:     hub,
		limiter: limiter,
		handler: handler,
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Tree returns the note tree store.
func (a *App) Tree() *tree.Service { return a.tree }

// Close releases background resources. It is safe to call more than once.
func (a *App) Close() {
	a.limiter.Stop()
}

// Serve runs the change feed and the HTTP server on ln until ctx is
// cancelled, then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           a.handler,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	go a.hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}
