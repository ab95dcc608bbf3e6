package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot/models"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bienps24/OmniGateBot/internal/metrics"
	"github.com/bienps24/OmniGateBot/internal/store"
)

func (h *Handler) handleMessage(ctx context.Context, msg *models.Message) {
	start := time.Now()
	defer func() {
		metrics.ObserveUpdateProcessing("message", time.Since(start).Seconds(), nil)
	}()

	ctx, span := h.tracer.Start(ctx, "handleMessage")
	defer span.End()

	span.SetAttributes(attribute.Int64("chat_id", msg.Chat.ID))

	h.svc.TrackChat(store.KnownChat{
		ChatID: msg.Chat.ID,
		Title:  msg.Chat.Title,
		Kind:   string(msg.Chat.Type),
	})

	if isServiceMessage(msg) {
		h.handleServiceMessage(ctx, msg)
		return
	}

	if msg.Chat.Type == models.ChatTypePrivate {
		h.handlePrivateMessage(ctx, msg)
		return
	}
	h.handleGroupMessage(ctx, msg)
}

func isServiceMessage(msg *models.Message) bool {
	return len(msg.NewChatMembers) > 0 || msg.LeftChatMember != nil
}

// Service messages trigger cleanup only.
func (h *Handler) handleServiceMessage(ctx context.Context, msg *models.Message) {
	cfg := h.svc.GetChatConfig(ctx, msg.Chat.ID)
	if !cfg.CleanServiceMessages {
		return
	}
	if err := h.gw.DeleteMessage(ctx, msg.Chat.ID, msg.ID); err != nil {
		h.logger.Warn("Failed to delete service message", "chat_id", msg.Chat.ID, "message_id", msg.ID, "error", err)
		return
	}
	metrics.IncDeletedMessages("service_message")
}
