package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/bienps24/OmniGateBot/internal/config"
	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/handler"
	"github.com/bienps24/OmniGateBot/internal/metrics"
	"github.com/bienps24/OmniGateBot/internal/service"
	"github.com/bienps24/OmniGateBot/internal/store"
	"github.com/bienps24/OmniGateBot/internal/transport/polling"
	"github.com/bienps24/OmniGateBot/internal/transport/webhook"
	"github.com/bienps24/OmniGateBot/internal/verification"
	"github.com/bienps24/OmniGateBot/internal/warnings"
)

type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	bot     *bot.Bot
	handler *handler.Handler
	tracer  trace.Tracer
}

func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		tracer: otel.Tracer("omnigate-bot"),
	}

	// The handler is wired in Run, after the bot identity is known; until
	// then updates are dropped.
	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(func(ctx context.Context, _ *bot.Bot, upd *models.Update) {
		if a.handler != nil {
			a.handler.HandleUpdate(ctx, upd)
		}
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create bot client: %w", err)
	}
	a.bot = b

	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.logger.Info("Starting OmniGate Bot")

	me, err := a.bot.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot info: %w", err)
	}
	a.logger.Info("Bot connected", "username", me.Username, "id", me.ID)

	configs := store.NewChatConfigStore()
	warningCounts := store.NewWarningStore()
	floods := store.NewFloodStore()
	pending := store.NewPendingStore()
	known := store.NewKnownChatStore()

	gw := gateway.NewTelegram(a.logger, a.bot, me.ID)

	verifier := verification.NewMachine(a.logger, pending, gw, a.cfg.VerifyTTL)
	verifier.StartSweeper(ctx, a.cfg.VerifySweepInterval)

	warner := warnings.NewEscalator(a.logger, configs, warningCounts, gw, a.cfg.OwnerID)

	svc := service.NewGatekeeperService(a.logger, configs, floods, known, pending, verifier, warner, gw, a.cfg.OwnerID)
	a.handler = handler.NewHandler(a.logger, svc, gw, a.cfg)

	metricsSrv := metrics.NewServer(a.logger, a.cfg.MetricsAddr)
	go func() {
		if err := metricsSrv.Listen(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Metrics server failed", "error", err)
		}
	}()

	if a.cfg.WebhookHost != "" {
		a.logger.Info("Starting in Webhook mode", "host", a.cfg.WebhookHost)
		srv := webhook.NewServer(a.logger, a.bot, a.cfg.WebhookHost, a.cfg.Port)

		cleanup, err := srv.Start(ctx)
		if err != nil {
			return fmt.Errorf("failed to start webhook server: %w", err)
		}
		defer func() {
			if err := cleanup(); err != nil {
				a.logger.Error("Cleanup failed", "error", err)
			}
		}()

		<-ctx.Done()
	} else {
		a.logger.Info("Starting in Long Polling mode")
		poller := polling.NewPoller(a.logger, a.bot)
		poller.Start(ctx)
	}

	a.logger.Info("Shutting down...")

	return nil
}
