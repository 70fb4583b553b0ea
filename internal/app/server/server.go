package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hrportal/internal/domain/advances"
	"hrportal/internal/domain/attendance"
	"hrportal/internal/domain/expenses"
	"hrportal/internal/domain/insights"
	"hrportal/internal/domain/reports"
	"hrportal/internal/domain/roster"
	"hrportal/internal/domain/settings"
	"hrportal/internal/platform/config"
	"hrportal/internal/platform/db"
	advanceshandler "hrportal/internal/transport/http/handlers/advances"
	attendancehandler "hrportal/internal/transport/http/handlers/attendance"
	dashboardhandler "hrportal/internal/transport/http/handlers/dashboard"
	expenseshandler "hrportal/internal/transport/http/handlers/expenses"
	insightshandler "hrportal/internal/transport/http/handlers/insights"
	reportshandler "hrportal/internal/transport/http/handlers/reports"
	rosterhandler "hrportal/internal/transport/http/handlers/roster"
	salaryhandler "hrportal/internal/transport/http/handlers/salary"
	settingshandler "hrportal/internal/transport/http/handlers/settings"
	"hrportal/internal/transport/http/middleware"
	"hrportal/migrations"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrations.Files); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	rosterStore := roster.NewStore(pool)
	attendanceStore := attendance.NewStore(pool)
	expensesStore := expenses.NewStore(pool)
	advancesStore := advances.NewStore(pool)
	settingsStore := settings.NewStore(pool)
	insightsStore := insights.NewStore(pool)
	reportsService := reports.NewService(reports.NewStore(pool), attendanceStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		rosterhandler.NewHandler(rosterStore).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceStore, rosterStore).RegisterRoutes(r)
		expenseshandler.NewHandler(expensesStore, rosterStore, settingsStore).RegisterRoutes(r)
		advanceshandler.NewHandler(advancesStore, rosterStore).RegisterRoutes(r)
		dashboardhandler.NewHandler(attendanceStore, rosterStore).RegisterRoutes(r)
		settingshandler.NewHandler(settingsStore).RegisterRoutes(r)
		salaryhandler.NewHandler(rosterStore, cfg.SalaryBasic).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
		insightshandler.NewHandler(insightsStore).RegisterRoutes(r)
	})

	log.Printf("hrportal server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
