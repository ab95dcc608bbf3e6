package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/pipeline"
)

func (h *Handler) handleGroupMessage(ctx context.Context, msg *models.Message) {
	if msg.From == nil {
		return
	}
	text := msg.Text

	if strings.HasPrefix(text, "/") {
		h.handleCommand(ctx, msg)
		return
	}
	if text == "" {
		return
	}

	payload := pipeline.Payload{
		ChatID:        msg.Chat.ID,
		SenderID:      msg.From.ID,
		Text:          text,
		HasLinkEntity: hasLinkEntity(msg.Entities),
	}

	res, err := h.svc.ModerateMessage(ctx, payload)
	if err != nil {
		h.logger.Error("Failed to moderate message", "error", err)
		return
	}
	if res.IsAllowed {
		h.logger.Debug("Message allowed", "chat_id", msg.Chat.ID)
		return
	}

	h.logger.Info("Message blocked",
		"chat_id", msg.Chat.ID, "sender_id", msg.From.ID,
		"reason", res.Reason, "filter", res.FilterName,
	)
	h.svc.EnforceModeration(ctx, msg.Chat.ID, msg.ID, msg.From.ID, senderName(msg.From), res)
}

func senderName(u *models.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return "User"
}

func hasLinkEntity(entities []models.MessageEntity) bool {
	for _, e := range entities {
		if e.Type == models.MessageEntityTypeURL || e.Type == models.MessageEntityTypeTextLink {
			return true
		}
	}
	return false
}
