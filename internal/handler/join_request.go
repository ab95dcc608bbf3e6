package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/admission"
	"github.com/bienps24/OmniGateBot/internal/metrics"
)

func (h *Handler) handleJoinRequest(ctx context.Context, jr *models.ChatJoinRequest) {
	start := time.Now()
	defer func() {
		metrics.ObserveUpdateProcessing("chat_join_request", time.Since(start).Seconds(), nil)
	}()

	ctx, span := h.tracer.Start(ctx, "handleJoinRequest")
	defer span.End()

	req := admission.Request{
		ChatID:    jr.Chat.ID,
		ChatKind:  string(jr.Chat.Type),
		ChatTitle: jr.Chat.Title,
		UserID:    jr.From.ID,
		UserName:  jr.From.FirstName,
		Username:  jr.From.Username,
		IsBot:     jr.From.IsBot,
	}
	h.svc.HandleJoinRequest(ctx, req)
}
