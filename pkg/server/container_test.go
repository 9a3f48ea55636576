package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"

	"kalaa-saarathi-api/internal/config"
	"kalaa-saarathi-api/internal/handlers"
	"kalaa-saarathi-api/pkg/lambda"
)

func newTestContainer(t *testing.T) (*Container, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	cfg := config.Default()
	cfg.Environment = "test"

	container, err := NewContainerWithLogger(cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	return container, hook
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, _ := newTestContainer(t)

	if container.Router == nil {
		t.Fatal("Router is nil")
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}
	if got := len(container.Router.Routes()); got != 5 {
		t.Errorf("router has %d routes, want 5", got)
	}
}

func TestContainer_Handler(t *testing.T) {
	container, hook := newTestContainer(t)

	tests := []struct {
		name       string
		route      string
		method     string
		path       string
		wantStatus int
	}{
		{"health function ignores path", handlers.RouteHealth, http.MethodGet, "/default/kalaa-health", http.StatusOK},
		{"whatsapp preflight", handlers.RouteWhatsApp, http.MethodOptions, "/whatsapp", http.StatusNoContent},
		{"api function", handlers.RouteAPI, http.MethodPost, "/api", http.StatusOK},
		{"gateway routes by path", "", http.MethodGet, "/health", http.StatusOK},
		{"gateway unknown path", "", http.MethodGet, "/api/products", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			h, err := container.Handler(tt.route)
			if err != nil {
				t.Fatalf("Handler(%q) error = %v", tt.route, err)
			}

			resp, err := h(context.Background(), &lambda.Request{Method: tt.method, Path: tt.path})
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			entry := hook.LastEntry()
			if entry == nil || entry.Message != "Invocation completed" {
				t.Errorf("expected invocation log, got %+v", entry)
			}
		})
	}

	if _, err := container.Handler("products"); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestContainer_Engine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container, _ := newTestContainer(t)
	engine := container.Engine()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header from middleware chain")
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("swagger status = %d, want 200", rec.Code)
	}
}

func TestContainerManager(t *testing.T) {
	calls := 0
	manager := NewContainerManager(func() (*config.Config, error) {
		calls++
		cfg := config.Default()
		cfg.Log.Level = "error"
		return cfg, nil
	})

	first, err := manager.GetContainer()
	if err != nil {
		t.Fatalf("GetContainer() error = %v", err)
	}
	second, err := manager.GetContainer()
	if err != nil {
		t.Fatalf("GetContainer() error = %v", err)
	}

	if first != second {
		t.Error("expected the same container on warm calls")
	}
	if calls != 1 {
		t.Errorf("config loaded %d times, want 1", calls)
	}
}

func TestContainerManager_RemembersFailure(t *testing.T) {
	calls := 0
	manager := NewContainerManager(func() (*config.Config, error) {
		calls++
		return nil, errors.New("missing configuration")
	})

	for i := 0; i < 2; i++ {
		if _, err := manager.GetContainer(); err == nil {
			t.Fatal("expected error")
		}
	}
	if calls != 1 {
		t.Errorf("config loaded %d times, want 1", calls)
	}
}
