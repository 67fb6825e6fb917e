package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/maheshathikala/stress-detect/config"
	"github.com/maheshathikala/stress-detect/controllers"
	"github.com/maheshathikala/stress-detect/detector"
	"github.com/maheshathikala/stress-detect/helpers"
	"github.com/maheshathikala/stress-detect/logger"
	"github.com/maheshathikala/stress-detect/middleware"
	"github.com/maheshathikala/stress-detect/routes"
	"github.com/maheshathikala/stress-detect/services"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()
	log.Info("Starting stress detection service")

	client, err := config.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Error("failed to connect to MongoDB", zap.Error(err))
		return err
	}
	defer func() {
		ctxDisconnect, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctxDisconnect)
	}()

	det, err := detector.New(cfg.CascadePath)
	if err != nil {
		log.Error("failed to load face cascade", zap.Error(err))
		return err
	}

	helpers.SetJWTKey(cfg.JWTSecret)

	store := services.NewMongoLogStore(client.Database(cfg.DBName))
	svc := services.NewStressService(store, det, log, cfg.DetectWorkers)
	ct := controllers.NewStressController(svc, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	api := r.Group("/api")
	routes.SetupRoutes(api, ct)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
