package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/whereroomsbegin/payments-api/config"
	"github.com/whereroomsbegin/payments-api/handlers"
	"github.com/whereroomsbegin/payments-api/internal/email"
	"github.com/whereroomsbegin/payments-api/internal/payments"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	cfg := config.Load()

	api := handlers.NewAPI(
		cfg,
		payments.NewStripeClient(cfg.StripeSecretKey),
		email.NewResendMailer(cfg.ResendAPIKey),
	)

	router := http.NewServeMux()
	router.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The checkout route handles its own method check so preflight and
	// 405 responses carry the CORS headers and JSON error body.
	router.Handle("/api/checkout", handlers.WithCORS(http.HandlerFunc(api.CreateCheckout)))
	router.Handle("POST /api/stripe-webhook", http.HandlerFunc(api.StripeWebhook))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 2 * time.Minute,
	}
	go func() {
		slog.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	} else {
		slog.Info("Server gracefully stopped")
	}
}
