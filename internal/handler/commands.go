package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/store"
	"github.com/bienps24/OmniGateBot/internal/utils"
)

func (h *Handler) handleCommand(ctx context.Context, msg *models.Message) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return
	}
	cmd := fields[0]
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	args := fields[1:]

	chatID := msg.Chat.ID
	kind := string(msg.Chat.Type)

	switch cmd {
	case "/start":
		h.reply(ctx, chatID, messages.MsgStartGroup)
	case "/help":
		h.reply(ctx, chatID, fmt.Sprintf(messages.MsgHelp, "this chat"))
	case "/status":
		cfg := h.svc.GetChatConfig(ctx, chatID)
		h.reply(ctx, chatID, fmt.Sprintf(messages.MsgStatus,
			utils.ChatKindLabel(kind), cfg.Mode,
			cfg.ApprovedToday, cfg.DeclinedToday,
			cfg.ApprovedTotal, cfg.DeclinedTotal))
	case "/settings":
		h.replySettings(ctx, chatID, kind)
	default:
		h.handleAdminCommand(ctx, msg, cmd, args)
	}
}

func (h *Handler) handleAdminCommand(ctx context.Context, msg *models.Message, cmd string, args []string) {
	chatID := msg.Chat.ID
	kind := string(msg.Chat.Type)
	if msg.From == nil || !h.svc.IsUserAdmin(ctx, chatID, kind, msg.From.ID) {
		h.reply(ctx, chatID, messages.MsgAdminsOnly)
		return
	}

	if cmd == "/test_join" {
		cfg := h.svc.GetChatConfig(ctx, chatID)
		h.reply(ctx, chatID, fmt.Sprintf(messages.MsgTestJoin,
			cfg.Mode, cfg.StrictModeEnabled, cfg.RequireUsername,
			cfg.BlockBots, cfg.MinUsernameLength))
		return
	}

	// Everything below mutates configuration; refuse when the bot itself
	// lacks admin rights, so we never promise enforcement we cannot do.
	if !h.svc.IsBotAdmin(ctx, chatID) {
		h.reply(ctx, chatID, messages.MsgBotNotAdmin)
		return
	}

	switch cmd {
	case "/set_mode":
		h.cmdSetMode(ctx, chatID, args)
	case "/set_require_username":
		h.cmdToggle(ctx, chatID, "require_username", "Require username", args, "/set_require_username on | off")
	case "/set_block_bots":
		h.cmdToggle(ctx, chatID, "block_bots", "Block bots", args, "/set_block_bots on | off")
	case "/set_strict":
		h.cmdToggle(ctx, chatID, "strict", "Strict mode", args, "/set_strict on | off")
	case "/set_block_links":
		h.cmdToggle(ctx, chatID, "block_links", "Block links", args, "/set_block_links on | off")
	case "/set_flood":
		h.cmdToggle(ctx, chatID, "flood", "Flood control", args, "/set_flood on | off")
	case "/set_warnings":
		h.cmdToggle(ctx, chatID, "warnings", "Warnings", args, "/set_warnings on | off")
	case "/set_safe_welcome":
		h.cmdToggle(ctx, chatID, "safe_welcome", "Safe welcome", args, "/set_safe_welcome on | off")
	case "/set_clean_service":
		h.cmdToggle(ctx, chatID, "clean_service", "Clean service messages", args, "/set_clean_service on | off")
	case "/set_min_username_length":
		h.cmdSetNumber(ctx, chatID, "min_username_length", "Min username length", args, 0, "/set_min_username_length <number>")
	case "/set_warnings_limit":
		h.cmdSetNumber(ctx, chatID, "warnings_limit", "Warnings limit", args, 1, "/set_warnings_limit <number>")
	case "/set_warnings_mute_minutes":
		h.cmdSetNumber(ctx, chatID, "warnings_mute_minutes", "Warnings mute minutes", args, 1, "/set_warnings_mute_minutes <number>")
	case "/set_flood_limit":
		h.cmdSetNumber(ctx, chatID, "flood_limit", "Flood limit", args, 1, "/set_flood_limit <number>")
	case "/set_flood_window":
		h.cmdSetNumber(ctx, chatID, "flood_window", "Flood window seconds", args, 1, "/set_flood_window <seconds>")
	case "/set_warnings_action":
		h.cmdSetWarningsAction(ctx, chatID, args)
	case "/set_welcome":
		h.cmdSetWelcome(ctx, chatID, args)
	case "/add_banned_words":
		h.cmdAddBannedWords(ctx, chatID, args)
	case "/clear_banned_words":
		if err := h.svc.ClearBannedWords(ctx, chatID); err != nil {
			h.logger.Error("Failed to clear banned words", "error", err)
			h.reply(ctx, chatID, messages.MsgSettingsFailed)
			return
		}
		h.reply(ctx, chatID, messages.MsgWordsCleared)
	default:
		h.logger.Debug("Unknown command", "command", cmd, "chat_id", chatID)
	}
}

func (h *Handler) cmdSetMode(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, "Usage: /set_mode auto | filtered | off")
		return
	}
	mode := store.Mode(strings.ToUpper(strings.TrimSpace(args[0])))
	if mode != store.ModeAuto && mode != store.ModeFiltered && mode != store.ModeOff {
		h.reply(ctx, chatID, messages.MsgInvalidMode)
		return
	}
	if err := h.svc.SetMode(ctx, chatID, mode); err != nil {
		h.logger.Error("Failed to set mode", "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgModeUpdated, mode))
}

func (h *Handler) cmdToggle(ctx context.Context, chatID int64, setting, label string, args []string, usage string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, "Usage: "+usage)
		return
	}
	value, ok := parseOnOff(args[0])
	if !ok {
		h.reply(ctx, chatID, messages.MsgInvalidOnOff)
		return
	}
	if err := h.svc.SetToggle(ctx, chatID, setting, value); err != nil {
		h.logger.Error("Failed to set toggle", "setting", setting, "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgToggleUpdated, label, onOff(value)))
}

func (h *Handler) cmdSetNumber(ctx context.Context, chatID int64, setting, label string, args []string, min int, usage string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, "Usage: "+usage)
		return
	}
	value, err := strconv.Atoi(args[0])
	if err != nil {
		h.reply(ctx, chatID, messages.MsgInvalidInt)
		return
	}
	if value < min {
		h.reply(ctx, chatID, fmt.Sprintf(messages.MsgValueTooLow, min))
		return
	}
	if err := h.svc.SetNumber(ctx, chatID, setting, value); err != nil {
		h.logger.Error("Failed to set number", "setting", setting, "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgNumberUpdated, label, value))
}

func (h *Handler) cmdSetWarningsAction(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, "Usage: /set_warnings_action mute | kick")
		return
	}
	action := store.WarnAction(strings.ToUpper(strings.TrimSpace(args[0])))
	if action != store.ActionMute && action != store.ActionKick {
		h.reply(ctx, chatID, messages.MsgInvalidAction)
		return
	}
	if err := h.svc.SetWarningsAction(ctx, chatID, action); err != nil {
		h.logger.Error("Failed to set warnings action", "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgActionUpdated, action))
}

func (h *Handler) cmdSetWelcome(ctx context.Context, chatID int64, args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if err := h.svc.SetWelcomeMessage(ctx, chatID, text); err != nil {
		h.logger.Error("Failed to set welcome message", "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	if text == "" {
		h.reply(ctx, chatID, messages.MsgWelcomeClear)
		return
	}
	h.reply(ctx, chatID, messages.MsgWelcomeUpdated)
}

func (h *Handler) cmdAddBannedWords(ctx context.Context, chatID int64, args []string) {
	raw := strings.Join(args, " ")
	var words []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	if len(words) == 0 {
		h.reply(ctx, chatID, messages.MsgNoValidItems)
		return
	}
	added, err := h.svc.AddBannedWords(ctx, chatID, words)
	if err != nil {
		h.logger.Error("Failed to add banned words", "error", err)
		h.reply(ctx, chatID, messages.MsgSettingsFailed)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgWordsAdded, added, utils.Plural(added, "word", "words")))
}

func (h *Handler) replySettings(ctx context.Context, chatID int64, kind string) {
	cfg := h.svc.GetChatConfig(ctx, chatID)
	h.reply(ctx, chatID, fmt.Sprintf(messages.MsgSettings,
		utils.ChatKindLabel(kind),
		cfg.Mode,
		onOff(cfg.StrictModeEnabled),
		onOff(cfg.RequireUsername),
		onOff(cfg.BlockBots),
		cfg.MinUsernameLength,
		onOff(cfg.BlockLinks),
		len(cfg.BannedWords),
		onOff(cfg.FloodEnabled), cfg.FloodMaxMsgs, cfg.FloodWindowSeconds,
		onOff(cfg.WarningsEnabled), cfg.WarningsLimit, cfg.WarningsAction, cfg.WarningsMuteMinutes,
		onOff(cfg.SafeWelcomeEnabled),
		onOff(cfg.CleanServiceMessages),
	))
}

func parseOnOff(arg string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on", "true", "yes", "y", "1":
		return true, true
	case "off", "false", "no", "n", "0":
		return false, true
	}
	return false, false
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
