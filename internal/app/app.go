package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"

	"github.com/black-cross/backend/internal/config"
	"github.com/black-cross/backend/internal/domain"
	"github.com/black-cross/backend/internal/middleware"
	"github.com/black-cross/backend/internal/module/auth"
	"github.com/black-cross/backend/internal/module/catalog"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the stub auth service, the module catalog,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Build the stub auth service from the configured mock credential.
	authSvc, err := auth.NewService(cfg.Auth.Email, cfg.Auth.Password, cfg.Auth.Token, domain.User{
		ID:    cfg.Auth.UserID,
		Email: cfg.Auth.Email,
		Role:  cfg.Auth.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("setup auth service: %w", err)
	}

	// 3. Assemble the API modules.
	modules := []Module{
		auth.NewModule(auth.NewHandler(authSvc)),
		catalog.NewModule(catalog.NewHandler()),
	}

	// 4. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig, err := resolveCORSConfig(&cfg.Server.CORS)
	if err != nil {
		return nil, fmt.Errorf("resolve cors config: %w", err)
	}

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
	)
	if cfg.Metrics.Enabled {
		// Before CORS so short-circuited OPTIONS requests are still counted.
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// 5. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:        modules,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		logger: log,
		cfg:    cfg,
	}, nil
}

// resolveCORSConfig builds the middleware CORS config from application
// settings, falling back to the permissive default for any unset list.
// MaxAge is converted from a duration string to whole seconds.
func resolveCORSConfig(cfg *config.CORSConfig) (middleware.CORSConfig, error) {
	corsConfig := middleware.DefaultCORSConfig()

	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	if len(cfg.AllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.AllowMethods
	}
	if len(cfg.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.AllowHeaders
	}
	if cfg.MaxAge != "" {
		d, err := time.ParseDuration(cfg.MaxAge)
		if err != nil {
			return middleware.CORSConfig{}, fmt.Errorf("invalid cors max_age %q: %w", cfg.MaxAge, err)
		}
		corsConfig.MaxAge = strconv.Itoa(int(d.Seconds()))
	}

	return corsConfig, nil
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.banner(addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.log().Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log().Error("server shutdown error", slog.Any("error", err))
		}
	}

	a.log().Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}

// banner logs the startup lines the original server printed on stdout.
func (a *App) banner(addr string) {
	log := a.log()
	log.Info("server started", slog.String("addr", addr))
	log.Info("health check", slog.String("url", "http://"+addr+"/health"))
	log.Info("api endpoints", slog.String("url", "http://"+addr+"/api/v1"))
}

// log returns the app's slog logger, falling back to the process default.
func (a *App) log() *slog.Logger {
	if a.logger != nil {
		return a.logger.Logger
	}
	return slog.Default()
}
