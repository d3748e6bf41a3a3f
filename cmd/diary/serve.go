package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MohammadaminAlbooyeh/diet-diary/config"
	"github.com/MohammadaminAlbooyeh/diet-diary/logger"
	"github.com/MohammadaminAlbooyeh/diet-diary/routes"
	"github.com/MohammadaminAlbooyeh/diet-diary/services"
	"github.com/MohammadaminAlbooyeh/diet-diary/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	foodTable, err := services.LoadFoodReferences(cfg.FoodsFile)
	if err != nil {
		return err
	}

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Warn("closing database", zap.Error(err))
		}
	}()

	rt := services.NewRealtimeHub()
	foods := services.NewFoodService(foodTable)
	entries := services.NewEntryService(store.NewGormEntryStore(db), foods, services.NewEventBus(rt),
		services.WithCalorieGoal(cfg.CalorieGoal))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRouter(routes.Deps{Entries: entries, Foods: foods, RT: rt}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DB.Driver), zap.Int("foods", len(foodTable)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
