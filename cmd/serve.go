package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"festeasy/config"
	"festeasy/handlers"
	"festeasy/middleware"
	"festeasy/routes"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig(cfgFile)
		return serve(config.AppConfig)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (APP_PORT)")
	serveCmd.Flags().String("plan-store", "", "pending plan store: memory or redis (PLAN_STORE)")
	viper.BindPFlag("APP_PORT", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("PLAN_STORE", serveCmd.Flags().Lookup("plan-store"))
}

func serve(cfg config.Config) error {
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(ctx, cfg, logger)
	defer a.Close()
	a.monitor.Start(ctx, 30*time.Second)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiterStore(cfg.MaxRequestsPerMin, cfg.MaxRequestsPerMin/2)))

	hb := handlers.NewHandlerBundle(a.store, a.sessions, a.workflow, a.monitor)
	routes.RegisterRoutes(router, hb, routes.Options{
		CORSOrigins:    cfg.CORSOrigins,
		PlannerLimiter: middleware.NewRateLimiterStore(cfg.PlannerRequestsPerMin, 1),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
