package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "imageUploader/docs"
	"imageUploader/internal/config"
	"imageUploader/internal/http-server/handlers/image/deleteImage"
	"imageUploader/internal/http-server/handlers/image/listImages"
	"imageUploader/internal/http-server/handlers/image/saveImage"
	"imageUploader/internal/http-server/handlers/welcome"
	"imageUploader/internal/http-server/middleware/cors"
	"imageUploader/internal/http-server/middleware/mwlogger"
	"imageUploader/internal/kafka/producer"
	"imageUploader/internal/lib/logger/handlers/slogpretty"
	"imageUploader/internal/lib/logger/sl"
	"imageUploader/internal/storage/disk"
	"imageUploader/internal/storage/mongo"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title           Image Uploader API
// @description     Uploading, listing and deleting image files backed by a document store.
// @BasePath        /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting image uploader", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := mongo.InitDB(&cfg.Mongo)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	fileStorage, err := disk.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to init upload directory", sl.Err(err))
		os.Exit(1)
	}

	kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka producer", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(log, cfg.CORS.AllowedOrigins))

	router.Get("/", welcome.New(log))

	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(fileStorage.Dir()))))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/api/upload", saveImage.New(log, fileStorage, storage, kafkaProducer))
	router.Get("/getAllImage", listImages.New(log, storage))
	router.Delete("/api/delete-image/{id}", deleteImage.New(log, storage, fileStorage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	select {
	case sign := <-stop:
		log.Info("application stopping", slog.String("signal", sign.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down server", sl.Err(err))
		}
	case err = <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", sl.Err(err))
		}
	}

	if err = storage.Close(context.Background()); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}

	log.Info("mongo connection closed")

	if err = kafkaProducer.Close(); err != nil {
		log.Error("failed to close kafka producer", slog.String("error", err.Error()))
	}

	log.Info("kafka connection closed")

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
