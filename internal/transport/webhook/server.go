package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
)

type Server struct {
	logger *slog.Logger
	bot    *bot.Bot
	host   string
	port   string
}

func NewServer(logger *slog.Logger, b *bot.Bot, host, port string) *Server {
	return &Server{
		logger: logger,
		bot:    b,
		host:   host,
		port:   port,
	}
}

// Start registers the webhook with the platform, serves it over HTTP, and
// returns a cleanup that tears both down.
func (s *Server) Start(ctx context.Context) (func() error, error) {
	webhookURL := fmt.Sprintf("%s/webhook", s.host)

	if _, err := s.bot.SetWebhook(ctx, &bot.SetWebhookParams{URL: webhookURL}); err != nil {
		return nil, fmt.Errorf("failed to set webhook: %w", err)
	}
	s.logger.Info("Webhook registered", "url", webhookURL)

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.bot.WebhookHandler())

	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: mux,
	}

	go func() {
		s.logger.Info("Webhook server listening", "port", s.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Webhook server failed", "error", err)
		}
	}()

	go s.bot.StartWebhook(ctx)

	cleanup := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := s.bot.DeleteWebhook(shutdownCtx, &bot.DeleteWebhookParams{}); err != nil {
			s.logger.Warn("Failed to delete webhook", "error", err)
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	}

	return cleanup, nil
}
