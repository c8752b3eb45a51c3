// Package server assembles the router and runs the HTTP process.
package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"smartleave/internal/domain/directory"
	"smartleave/internal/domain/leave"
	"smartleave/internal/insights"
	"smartleave/internal/platform/config"
	adminhandler "smartleave/internal/transport/http/handlers/admin"
	authhandler "smartleave/internal/transport/http/handlers/auth"
	leavehandler "smartleave/internal/transport/http/handlers/leave"
	"smartleave/internal/transport/http/middleware"
)

// Pinger reports store health for the readiness probe. The in-memory store
// has no probe and passes nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Config   config.Config
	Logger   *zap.Logger
	State    leave.State
	Engine   *leave.Service
	Dir      *directory.Service
	Insights *insights.Service
	Pinger   Pinger
}

// NewRouter wires middleware and all route groups. Split out from Run so
// end-to-end tests can drive the full stack through httptest.
func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(d.Logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Auth(d.Config.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.Pinger.Ping(ctx); err != nil {
				http.Error(w, "store not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(d.State, d.Config.JWTSecret).RegisterRoutes(r)
		leavehandler.NewHandler(d.Engine, d.Dir, d.State).RegisterRoutes(r)
		adminhandler.NewHandler(d.Dir, d.Insights, d.State).RegisterRoutes(r)
	})

	if d.Config.FrontendDir != "" {
		router.Mount("/", spaHandler{staticPath: d.Config.FrontendDir, indexPath: "index.html"})
	}

	return router
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
