package callbacks

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/verification"
)

// handleVerify processes one press of the safe-welcome confirmation button.
// Only the restricted member themselves can complete it.
func (c *CallbackHandler) handleVerify(ctx context.Context, query *models.CallbackQuery, action Action) {
	err := c.svc.ConfirmVerification(ctx, action.ChatID, action.UserID, query.From.ID, action.Nonce)
	switch {
	case errors.Is(err, verification.ErrWrongUser):
		c.answer(ctx, query.ID, messages.MsgVerifyNotYou)
		return
	case errors.Is(err, verification.ErrStaleNonce):
		c.answer(ctx, query.ID, messages.MsgVerifyExpired)
		return
	case errors.Is(err, verification.ErrNotPending):
		c.answer(ctx, query.ID, messages.MsgVerifyNoRecord)
		return
	case err != nil:
		c.logger.Error("Failed to confirm verification",
			"chat_id", action.ChatID, "user_id", action.UserID, "error", err)
		c.answer(ctx, query.ID, messages.MsgSettingsFailed)
		return
	}

	c.answer(ctx, query.ID, "")
	done := fmt.Sprintf(messages.MsgVerifyDone, displayName(&query.From))
	if msg := queryMessage(query); msg != nil {
		if err := c.gw.EditMessage(ctx, msg.Chat.ID, msg.ID, done); err != nil {
			c.logger.Warn("Failed to edit verification prompt", "error", err)
		}
		return
	}
	if err := c.gw.SendChatMessage(ctx, action.ChatID, done); err != nil {
		c.logger.Warn("Failed to announce verification", "error", err)
	}
}

func displayName(user *models.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	return user.FirstName
}
