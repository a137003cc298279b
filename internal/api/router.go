package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/foresight-labs/foresight/internal/api/handlers"
	mw "github.com/foresight-labs/foresight/internal/api/middleware"
	"github.com/foresight-labs/foresight/internal/config"
	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/foresight-labs/foresight/internal/service"
	"github.com/foresight-labs/foresight/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(logger *zap.Logger) *App {
	// Stores
	beliefStore := store.NewBeliefStore()
	taskStore := store.NewTaskStore()

	// Services
	beliefSvc := service.NewBeliefService(beliefStore, logger)
	taskSvc := service.NewTaskService(taskStore, logger)
	snapshotSvc := service.NewSnapshotService(beliefSvc, taskSvc)

	// Handlers
	beliefHandler := handlers.NewBeliefHandler(beliefSvc)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler())

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Route("/beliefs", func(r chi.Router) {
			r.Post("/", beliefHandler.Create)
			r.Get("/", beliefHandler.List)
			r.Route("/{key}", func(r chi.Router) {
				r.Get("/", beliefHandler.GetByKey)
				r.Post("/evidence", beliefHandler.AddEvidence)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Get("/ranked", taskHandler.Ranked)
			r.Get("/{id}", taskHandler.GetByID)
		})

		r.Get("/snapshot", snapshotHandler.Get)
	})

	return app
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.BeliefStore = (*store.BeliefStore)(nil)
	_ domain.TaskStore   = (*store.TaskStore)(nil)
)
