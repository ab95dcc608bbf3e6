package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bienps24/OmniGateBot/internal/config"
	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/handler/callbacks"
	"github.com/bienps24/OmniGateBot/internal/service"
)

type Handler struct {
	logger          *slog.Logger
	svc             service.Service
	gw              gateway.Gateway
	config          *config.Config
	tracer          trace.Tracer
	callbackHandler *callbacks.CallbackHandler
}

func NewHandler(logger *slog.Logger, svc service.Service, gw gateway.Gateway, cfg *config.Config) *Handler {
	return &Handler{
		logger:          logger,
		svc:             svc,
		gw:              gw,
		config:          cfg,
		tracer:          otel.Tracer("handler"),
		callbackHandler: callbacks.NewCallbackHandler(logger, svc, gw, otel.Tracer("callbacks")),
	}
}

// HandleUpdate routes one inbound platform event to exactly one engine path.
func (h *Handler) HandleUpdate(ctx context.Context, upd *models.Update) {
	var span trace.Span
	if h.config.EnableTelemetry {
		ctx, span = h.tracer.Start(ctx, "HandleUpdate")
		defer span.End()
	}

	switch {
	case upd.ChatJoinRequest != nil:
		if h.config.EnableTelemetry {
			span.SetAttributes(attribute.String("update_type", "chat_join_request"))
		}
		h.handleJoinRequest(ctx, upd.ChatJoinRequest)
	case upd.CallbackQuery != nil:
		if h.config.EnableTelemetry {
			span.SetAttributes(attribute.String("update_type", "callback_query"))
		}
		h.callbackHandler.Handle(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		if h.config.EnableTelemetry {
			span.SetAttributes(attribute.String("update_type", "message"))
		}
		h.handleMessage(ctx, upd.Message)
	default:
		h.logger.Debug("Received unhandled update type", "update_id", upd.ID)
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.gw.SendChatMessage(ctx, chatID, text); err != nil {
		h.logger.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}
