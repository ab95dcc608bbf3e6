package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/messages"
)

// Private chats carry only the owner/admin control surface; moderation
// never runs here.
func (h *Handler) handlePrivateMessage(ctx context.Context, msg *models.Message) {
	if msg.From == nil {
		return
	}
	cmd := strings.Fields(msg.Text)
	if len(cmd) == 0 {
		return
	}
	name := cmd[0]
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "/start":
		text := messages.MsgStartPrivate
		if msg.From.ID == h.config.OwnerID {
			text += messages.MsgStartOwner
		}
		rows := [][]gateway.Button{{{Text: messages.BtnMyChats, Data: "chats"}}}
		if err := h.gw.SendUserMessage(ctx, msg.From.ID, text, rows...); err != nil {
			h.logger.Error("Failed to send start reply", "user_id", msg.From.ID, "error", err)
		}
	case "/help":
		h.reply(ctx, msg.Chat.ID, fmt.Sprintf(messages.MsgHelp, "the selected chat"))
	case "/settings", "/status", "/test_join":
		h.reply(ctx, msg.Chat.ID, messages.MsgGroupOnly)
	case "/menu":
		h.callbackHandler.SendMainMenu(ctx, msg.From.ID)
	default:
		h.callbackHandler.SendMainMenu(ctx, msg.From.ID)
	}
}
