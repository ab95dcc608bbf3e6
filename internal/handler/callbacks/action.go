package callbacks

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates every inline button action the bot emits. Callback data is
// parsed into an Action exactly once, at the transport boundary; the rest of
// the handlers dispatch on the typed value and never re-split strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindMainMenu
	KindChatList
	KindManage
	KindToggle
	KindStats
	KindVerify
)

type Action struct {
	Kind    Kind
	ChatID  int64
	UserID  int64
	Setting string
	Nonce   string
}

// Parse decodes one callback token. Tokens are produced by this package (and
// by the verification machine), so anything unrecognized is treated as stale
// UI rather than an attack.
func Parse(data string) (Action, error) {
	switch {
	case data == "menu":
		return Action{Kind: KindMainMenu}, nil
	case data == "chats":
		return Action{Kind: KindChatList}, nil
	case strings.HasPrefix(data, "manage_"):
		chatID, err := strconv.ParseInt(strings.TrimPrefix(data, "manage_"), 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parse manage token %q: %w", data, err)
		}
		return Action{Kind: KindManage, ChatID: chatID}, nil
	case strings.HasPrefix(data, "stats_"):
		chatID, err := strconv.ParseInt(strings.TrimPrefix(data, "stats_"), 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parse stats token %q: %w", data, err)
		}
		return Action{Kind: KindStats, ChatID: chatID}, nil
	case strings.HasPrefix(data, "toggle_"):
		// Setting names contain underscores, chat ID is always the last segment.
		rest := strings.TrimPrefix(data, "toggle_")
		sep := strings.LastIndex(rest, "_")
		if sep <= 0 {
			return Action{}, fmt.Errorf("parse toggle token %q: missing chat id", data)
		}
		chatID, err := strconv.ParseInt(rest[sep+1:], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parse toggle token %q: %w", data, err)
		}
		return Action{Kind: KindToggle, ChatID: chatID, Setting: rest[:sep]}, nil
	case strings.HasPrefix(data, "verify_"):
		parts := strings.SplitN(strings.TrimPrefix(data, "verify_"), "_", 3)
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("parse verify token %q: want 3 segments", data)
		}
		chatID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parse verify token %q: %w", data, err)
		}
		userID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("parse verify token %q: %w", data, err)
		}
		return Action{Kind: KindVerify, ChatID: chatID, UserID: userID, Nonce: parts[2]}, nil
	}
	return Action{}, fmt.Errorf("unknown callback token %q", data)
}

func manageToken(chatID int64) string {
	return fmt.Sprintf("manage_%d", chatID)
}

func statsToken(chatID int64) string {
	return fmt.Sprintf("stats_%d", chatID)
}

func toggleToken(setting string, chatID int64) string {
	return fmt.Sprintf("toggle_%s_%d", setting, chatID)
}
