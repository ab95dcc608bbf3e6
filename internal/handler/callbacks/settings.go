package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/store"
)

// SendMainMenu pushes the chat-picker menu as a fresh private message.
func (c *CallbackHandler) SendMainMenu(ctx context.Context, userID int64) {
	text, rows := c.buildMainMenu(ctx, userID)
	if err := c.gw.SendUserMessage(ctx, userID, text, rows...); err != nil {
		c.logger.Error("Failed to send main menu", "user_id", userID, "error", err)
	}
}

func (c *CallbackHandler) showMainMenu(ctx context.Context, query *models.CallbackQuery) {
	msg := queryMessage(query)
	if msg == nil {
		c.SendMainMenu(ctx, query.From.ID)
		return
	}
	text, rows := c.buildMainMenu(ctx, query.From.ID)
	if err := c.gw.EditMessage(ctx, msg.Chat.ID, msg.ID, text, rows...); err != nil {
		c.logger.Error("Failed to edit main menu", "error", err)
	}
}

// buildMainMenu lists only chats the requesting user administers.
func (c *CallbackHandler) buildMainMenu(ctx context.Context, userID int64) (string, [][]gateway.Button) {
	var rows [][]gateway.Button
	for _, chat := range c.svc.KnownChats() {
		if !c.svc.IsUserAdmin(ctx, chat.ChatID, chat.Kind, userID) {
			continue
		}
		title := chat.Title
		if title == "" {
			title = fmt.Sprintf("Chat %d", chat.ChatID)
		}
		rows = append(rows, []gateway.Button{{Text: title, Data: manageToken(chat.ChatID)}})
	}
	if len(rows) == 0 {
		return messages.MsgNoKnownChats, nil
	}
	return messages.MsgMainMenu, rows
}

func (c *CallbackHandler) showManage(ctx context.Context, query *models.CallbackQuery, chatID int64) {
	msg := queryMessage(query)
	if msg == nil {
		return
	}
	chat := c.knownChat(chatID)
	if !c.svc.IsUserAdmin(ctx, chatID, chat.Kind, query.From.ID) {
		c.answer(ctx, query.ID, messages.MsgAdminsOnly)
		return
	}
	cfg := c.svc.GetChatConfig(ctx, chatID)
	text := fmt.Sprintf(messages.MsgSettingsForChat, chatTitle(chat, chatID))
	if err := c.gw.EditMessage(ctx, msg.Chat.ID, msg.ID, text, manageKeyboard(chatID, cfg)...); err != nil {
		c.logger.Error("Failed to render manage view", "chat_id", chatID, "error", err)
	}
}

func (c *CallbackHandler) handleToggle(ctx context.Context, query *models.CallbackQuery, action Action) {
	chat := c.knownChat(action.ChatID)
	if !c.svc.IsUserAdmin(ctx, action.ChatID, chat.Kind, query.From.ID) {
		c.answer(ctx, query.ID, messages.MsgAdminsOnly)
		return
	}
	if !c.svc.IsBotAdmin(ctx, action.ChatID) {
		c.answer(ctx, query.ID, messages.MsgBotNotAdmin)
		return
	}

	if action.Setting == "mode" {
		cfg := c.svc.GetChatConfig(ctx, action.ChatID)
		if err := c.svc.SetMode(ctx, action.ChatID, nextMode(cfg.Mode)); err != nil {
			c.logger.Error("Failed to cycle mode", "chat_id", action.ChatID, "error", err)
			c.answer(ctx, query.ID, messages.MsgSettingsFailed)
			return
		}
	} else {
		if _, err := c.svc.ToggleSetting(ctx, action.ChatID, action.Setting); err != nil {
			c.logger.Error("Failed to toggle setting", "chat_id", action.ChatID, "setting", action.Setting, "error", err)
			c.answer(ctx, query.ID, messages.MsgSettingsFailed)
			return
		}
	}

	c.answer(ctx, query.ID, "")
	c.showManage(ctx, query, action.ChatID)
}

func (c *CallbackHandler) showStats(ctx context.Context, query *models.CallbackQuery, chatID int64) {
	msg := queryMessage(query)
	if msg == nil {
		return
	}
	chat := c.knownChat(chatID)
	if !c.svc.IsUserAdmin(ctx, chatID, chat.Kind, query.From.ID) {
		c.answer(ctx, query.ID, messages.MsgAdminsOnly)
		return
	}
	cfg := c.svc.GetChatConfig(ctx, chatID)
	text := fmt.Sprintf(messages.MsgChatStatsFor,
		chatTitle(chat, chatID),
		cfg.ApprovedToday, cfg.DeclinedToday,
		cfg.ApprovedTotal, cfg.DeclinedTotal,
		c.svc.PendingCount(chatID))
	rows := [][]gateway.Button{{{Text: messages.BtnBack, Data: manageToken(chatID)}}}
	if err := c.gw.EditMessage(ctx, msg.Chat.ID, msg.ID, text, rows...); err != nil {
		c.logger.Error("Failed to render stats view", "chat_id", chatID, "error", err)
	}
}

func (c *CallbackHandler) knownChat(chatID int64) store.KnownChat {
	for _, chat := range c.svc.KnownChats() {
		if chat.ChatID == chatID {
			return chat
		}
	}
	return store.KnownChat{ChatID: chatID}
}

func chatTitle(chat store.KnownChat, chatID int64) string {
	if chat.Title != "" {
		return chat.Title
	}
	return fmt.Sprintf("Chat %d", chatID)
}

func manageKeyboard(chatID int64, cfg *store.ChatConfig) [][]gateway.Button {
	return [][]gateway.Button{
		{{Text: fmt.Sprintf(messages.BtnMode, cfg.Mode), Data: toggleToken("mode", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnBlockBots, mark(cfg.BlockBots)), Data: toggleToken("block_bots", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnRequireUser, mark(cfg.RequireUsername)), Data: toggleToken("require_username", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnStrict, mark(cfg.StrictModeEnabled)), Data: toggleToken("strict", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnBlockLinks, mark(cfg.BlockLinks)), Data: toggleToken("block_links", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnFlood, mark(cfg.FloodEnabled)), Data: toggleToken("flood", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnWarnings, mark(cfg.WarningsEnabled)), Data: toggleToken("warnings", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnSafeWelcome, mark(cfg.SafeWelcomeEnabled)), Data: toggleToken("safe_welcome", chatID)}},
		{{Text: fmt.Sprintf(messages.BtnCleanSvc, mark(cfg.CleanServiceMessages)), Data: toggleToken("clean_service", chatID)}},
		{{Text: messages.BtnStatistics, Data: statsToken(chatID)}},
		{{Text: messages.BtnBack, Data: "chats"}},
	}
}

func nextMode(mode store.Mode) store.Mode {
	switch mode {
	case store.ModeAuto:
		return store.ModeFiltered
	case store.ModeFiltered:
		return store.ModeOff
	default:
		return store.ModeAuto
	}
}

func mark(enabled bool) string {
	if enabled {
		return "✅"
	}
	return "❌"
}
