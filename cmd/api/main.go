package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hctsai/lunchgo/internal/config"
	"github.com/hctsai/lunchgo/internal/group"
	"github.com/hctsai/lunchgo/internal/notifier"
	"github.com/hctsai/lunchgo/internal/notify"
	"github.com/hctsai/lunchgo/internal/ocr"
	"github.com/hctsai/lunchgo/internal/order"
	"github.com/hctsai/lunchgo/internal/restaurant"
	"github.com/hctsai/lunchgo/internal/sheet"
	"github.com/hctsai/lunchgo/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Backing store: Google Sheets when configured, in-memory otherwise.
	var store sheet.Store
	sheetsStore, err := sheet.NewSheetsStore(ctx, cfg.SpreadsheetID, cfg.CredentialsJSON, cfg.CredentialsPath)
	if err != nil {
		slog.Warn("google sheets unavailable, using in-memory store", "error", err)
		store = sheet.NewMemoryStore()
	} else {
		slog.Info("connected to google sheets", "spreadsheet", cfg.SpreadsheetID)
		store = sheetsStore
	}

	// Order feature
	orderRepo := order.NewRepository(store)
	orderService := order.NewService(orderRepo)

	// Group feature (archives the order ledger on creation)
	groupRepo := group.NewRepository(store)
	groupService := group.NewService(groupRepo, orderService)
	groupHandler := group.NewHandler(groupService, orderService)

	// Restaurant feature
	restaurantRepo := restaurant.NewRepository(store)
	restaurantService := restaurant.NewService(restaurantRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	// Menu image upload and OCR
	var uploader ocr.Uploader
	if cfg.CloudinaryCloudName != "" {
		cloudinaryUploader, err := ocr.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			slog.Warn("cloudinary unavailable, image upload disabled", "error", err)
		} else {
			uploader = cloudinaryUploader
		}
	}
	var parser *ocr.MenuParser
	if cfg.GeminiAPIKey != "" {
		parser = ocr.NewMenuParser(cfg.GeminiAPIKey)
	}
	ocrHandler := ocr.NewHandler(uploader, parser)

	// LINE push notifications + deadline watcher
	var sender notify.Sender
	if cfg.LineEnabled() {
		lineSender, err := notify.NewLineSender(cfg.LineChannelSecret, cfg.LineChannelToken, cfg.LineGroupID)
		if err != nil {
			slog.Warn("line unavailable, notifications disabled", "error", err)
		} else {
			sender = lineSender
		}
	}
	watcher := notifier.New(groupService, orderService, sender, cfg.AppURL)
	go watcher.Run(ctx)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/restaurants", restaurantHandler.Routes())
		r.Mount("/ocr", ocrHandler.Routes())
		r.Mount("/line", notify.NewWebhookHandler().Routes())
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
