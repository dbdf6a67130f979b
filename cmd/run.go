package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sanchara/sanchara/internal/auth"
	"github.com/sanchara/sanchara/internal/config"
	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/internal/logging"
	"github.com/sanchara/sanchara/internal/middleware"
	"github.com/sanchara/sanchara/pkg/controller"
	"github.com/sanchara/sanchara/pkg/cron"
	"github.com/sanchara/sanchara/pkg/repository"
	"github.com/sanchara/sanchara/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func NewRun() *cobra.Command {
	var cfg config.ServerCmdConfig
	loader := config.NewConfigLoader()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start Sanchara server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loader.InitializeConfig(cmd); err != nil {
				return err
			}
			if err := loader.Load(&cfg); err != nil {
				return err
			}
			runApplication(&cfg)
			return nil
		},
	}
	config.AddCommonFlags(cmd.Flags(), &cfg)
	config.AddServerFlags(cmd.Flags(), &cfg)
	return cmd
}

func runApplication(conf *config.ServerCmdConfig) {
	lvl, err := zapcore.ParseLevel(conf.Log.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	logging.SetConfig(&logging.Config{
		Level:    lvl,
		FilePath: conf.Log.File,
	})

	lg := logging.DefaultLogger().Sugar()

	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDatabase(&conf.DB, lg)
	if err != nil {
		lg.Fatalw("failed to create database", "err", err)
	}

	if err := database.MigrateDB(db); err != nil {
		lg.Fatalw("failed to migrate database", "err", err)
	}

	repo := repository.NewPostgresEventRepository(db)

	if conf.CronJobs.Enable {
		scheduler, err := cron.StartCronJobs(repo, &conf.CronJobs)
		if err != nil {
			lg.Fatalw("failed to start cron jobs", "err", err)
		}
		defer scheduler.Stop()
	}

	srv := setupServer(conf, repo)

	go func() {
		lg.Infof("Server started at http://localhost:%d", conf.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Errorw("failed to start server", "err", err)
		}
	}()

	<-ctx.Done()

	lg.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.Server.GracefulShutdown)

	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorw("server shutdown failed", "err", err)
	}

	lg.Info("Server stopped")
}

func setupServer(cfg *config.ServerCmdConfig, repo repository.EventRepository) *http.Server {
	lg := logging.DefaultLogger()

	events := services.NewEventService(repo, lg.Sugar())
	summary := services.NewSummaryService(repo, lg.Sugar())
	c := controller.NewController(events, summary)

	mux := chi.NewRouter()

	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", auth.UserHeader},
		MaxAge:         86400,
	}))
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.InjectLogger(lg))
	mux.Use(middleware.RequestLogger(lg))
	mux.Use(auth.Middleware)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", c.ListEvents)
			r.Post("/", c.CreateEvent)
			r.Get("/{eventID}", c.GetEventByID)
			r.Patch("/{eventID}", c.UpdateEvent)
			r.Delete("/{eventID}", c.DeleteEvent)
		})
		r.Route("/summary", func(r chi.Router) {
			r.Get("/overview", c.OverviewSummary)
			r.Get("/financial", c.FinancialSummary)
		})
		r.Get("/version", c.Version)
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
