package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/black-cross/backend/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	return cfg
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_InvalidMode(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Mode = "staging"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for invalid gin mode")
	}
}

func TestNew_ValidConfig(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	if a.engine == nil {
		t.Fatal("expected engine to be set")
	}
	if err := a.logger.Close(); err != nil {
		t.Errorf("failed to close logger: %v", err)
	}
}

func TestResolveCORSConfig(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowOrigins: []string{"https://app.blackcross.com"},
		MaxAge:       "1h",
	}
	got, err := resolveCORSConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://app.blackcross.com" {
		t.Errorf("unexpected allow origins: %v", got.AllowOrigins)
	}
	if got.MaxAge != "3600" {
		t.Errorf("expected max age in seconds, got %q", got.MaxAge)
	}
	// Unset lists keep the defaults.
	if len(got.AllowMethods) == 0 {
		t.Error("expected default allow methods")
	}
}

func TestResolveCORSConfig_BadMaxAge(t *testing.T) {
	if _, err := resolveCORSConfig(&config.CORSConfig{MaxAge: "later"}); err == nil {
		t.Fatal("expected error for invalid max age")
	}
}

func TestValidateGinMode(t *testing.T) {
	for _, mode := range []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode} {
		if err := validateGinMode(mode); err != nil {
			t.Errorf("mode %q should be valid: %v", mode, err)
		}
	}
	if err := validateGinMode("production"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

// fakeServer implements httpServer for Run tests.
type fakeServer struct {
	listenErr    error
	listenDone   chan struct{}
	shutdownDone bool
}

func (f *fakeServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.listenDone
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(_ context.Context) error {
	f.shutdownDone = true
	close(f.listenDone)
	return nil
}

func TestRun_GracefulShutdownOnSignal(t *testing.T) {
	fake := &fakeServer{listenDone: make(chan struct{})}

	origNewServer := newHTTPServer
	origNotify := notifyContext
	defer func() {
		newHTTPServer = origNewServer
		notifyContext = origNotify
	}()

	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return fake
	}
	notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		// Simulate an already-delivered interrupt.
		ctx, cancel := context.WithCancel(parent)
		cancel()
		return ctx, func() {}
	}

	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	if err := a.Run(); err != nil {
		t.Fatalf("expected clean shutdown, got: %v", err)
	}
	if !fake.shutdownDone {
		t.Error("expected Shutdown to be called")
	}
}

func TestRun_ServerError(t *testing.T) {
	fake := &fakeServer{listenErr: errors.New("bind failed")}

	origNewServer := newHTTPServer
	origNotify := notifyContext
	defer func() {
		newHTTPServer = origNewServer
		notifyContext = origNotify
	}()

	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return fake
	}
	notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(parent)
	}

	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	if err := a.Run(); err == nil {
		t.Fatal("expected server error to propagate")
	}
}

func TestRun_NilReceiver(t *testing.T) {
	var a *App
	if err := a.Run(); err == nil {
		t.Fatal("expected error for nil app")
	}
}
