package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// callTimeout bounds every outbound platform call. The engines are pure
// in-memory checks; the network is the only place an event can stall.
const callTimeout = 10 * time.Second

type Telegram struct {
	logger *slog.Logger
	bot    *bot.Bot
	selfID int64
}

func NewTelegram(logger *slog.Logger, b *bot.Bot, selfID int64) *Telegram {
	return &Telegram{
		logger: logger,
		bot:    b,
		selfID: selfID,
	}
}

func (g *Telegram) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, callTimeout)
}

func (g *Telegram) ApproveJoinRequest(ctx context.Context, chatID, userID int64) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	_, err := g.bot.ApproveChatJoinRequest(ctx, &bot.ApproveChatJoinRequestParams{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to approve join request: %w", err)
	}
	return nil
}

func (g *Telegram) DeclineJoinRequest(ctx context.Context, chatID, userID int64) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	_, err := g.bot.DeclineChatJoinRequest(ctx, &bot.DeclineChatJoinRequestParams{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to decline join request: %w", err)
	}
	return nil
}

func keyboard(rows [][]Button) models.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}
	markup := &models.InlineKeyboardMarkup{}
	for _, row := range rows {
		var line []models.InlineKeyboardButton
		for _, btn := range row {
			line = append(line, models.InlineKeyboardButton{
				Text:         btn.Text,
				CallbackData: btn.Data,
			})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, line)
	}
	return markup
}

func (g *Telegram) send(ctx context.Context, target int64, text string, rows [][]Button) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	_, err := g.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      target,
		Text:        text,
		ReplyMarkup: keyboard(rows),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %d: %w", target, err)
	}
	return nil
}

func (g *Telegram) SendChatMessage(ctx context.Context, chatID int64, text string, rows ...[]Button) error {
	return g.send(ctx, chatID, text, rows)
}

func (g *Telegram) SendUserMessage(ctx context.Context, userID int64, text string, rows ...[]Button) error {
	return g.send(ctx, userID, text, rows)
}

func (g *Telegram) EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows ...[]Button) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	}
	if markup := keyboard(rows); markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := g.bot.EditMessageText(ctx, params); err != nil {
		return fmt.Errorf("failed to edit message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

func (g *Telegram) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	if _, err := g.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	}); err != nil {
		return fmt.Errorf("failed to delete message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

func (g *Telegram) RestrictMember(ctx context.Context, chatID, userID int64, until time.Time) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	params := &bot.RestrictChatMemberParams{
		ChatID:      chatID,
		UserID:      userID,
		Permissions: &models.ChatPermissions{},
	}
	if !until.IsZero() {
		params.UntilDate = int(until.Unix())
	}
	if _, err := g.bot.RestrictChatMember(ctx, params); err != nil {
		return fmt.Errorf("failed to restrict user %d in chat %d: %w", userID, chatID, err)
	}
	return nil
}

func (g *Telegram) RestoreMember(ctx context.Context, chatID, userID int64) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	// The full default set: send messages, media, other message types and
	// link previews. Restricting with everything granted lifts the
	// restriction entirely instead of merging with the current state.
	if _, err := g.bot.RestrictChatMember(ctx, &bot.RestrictChatMemberParams{
		ChatID: chatID,
		UserID: userID,
		Permissions: &models.ChatPermissions{
			CanSendMessages:       true,
			CanSendAudios:         true,
			CanSendDocuments:      true,
			CanSendPhotos:         true,
			CanSendVideos:         true,
			CanSendVideoNotes:     true,
			CanSendVoiceNotes:     true,
			CanSendPolls:          true,
			CanSendOtherMessages:  true,
			CanAddWebPagePreviews: true,
		},
	}); err != nil {
		return fmt.Errorf("failed to restore user %d in chat %d: %w", userID, chatID, err)
	}
	return nil
}

func (g *Telegram) KickMember(ctx context.Context, chatID, userID int64) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	if _, err := g.bot.BanChatMember(ctx, &bot.BanChatMemberParams{
		ChatID: chatID,
		UserID: userID,
	}); err != nil {
		return fmt.Errorf("failed to kick user %d from chat %d: %w", userID, chatID, err)
	}
	// Lift the ban immediately so the user is removed but may request to
	// join again.
	if _, err := g.bot.UnbanChatMember(ctx, &bot.UnbanChatMemberParams{
		ChatID:       chatID,
		UserID:       userID,
		OnlyIfBanned: true,
	}); err != nil {
		g.logger.Warn("Failed to lift ban after kick", "chat_id", chatID, "user_id", userID, "error", err)
	}
	return nil
}

func (g *Telegram) ChatAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	members, err := g.bot.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{ChatID: chatID})
	if err != nil {
		return nil, fmt.Errorf("failed to get chat admins: %w", err)
	}
	return adminIDs(members), nil
}

func adminIDs(members []models.ChatMember) []int64 {
	var ids []int64
	for _, member := range members {
		switch member.Type {
		case models.ChatMemberTypeOwner:
			if member.Owner != nil && member.Owner.User != nil {
				ids = append(ids, member.Owner.User.ID)
			}
		case models.ChatMemberTypeAdministrator:
			if member.Administrator != nil {
				ids = append(ids, member.Administrator.User.ID)
			}
		}
	}
	return ids
}

func (g *Telegram) IsSelfAdmin(ctx context.Context, chatID int64) (bool, error) {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	member, err := g.bot.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: chatID,
		UserID: g.selfID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to get own member status: %w", err)
	}
	return member.Type == models.ChatMemberTypeOwner || member.Type == models.ChatMemberTypeAdministrator, nil
}

func (g *Telegram) AnswerCallback(ctx context.Context, callbackID, text string) error {
	ctx, cancel := g.bound(ctx)
	defer cancel()
	if _, err := g.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	}); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}
