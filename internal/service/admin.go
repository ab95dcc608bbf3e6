package service

import (
	"context"
)

// IsUserAdmin reports whether the user may alter the chat's configuration:
// the configured global owner, or a chat-native administrator. A failed
// administrator lookup counts as "not an admin".
func (s *GatekeeperService) IsUserAdmin(ctx context.Context, chatID int64, chatKind string, userID int64) bool {
	ctx, span := s.tracer.Start(ctx, "IsUserAdmin")
	defer span.End()

	if s.ownerID != 0 && userID == s.ownerID {
		return true
	}
	if chatKind == "private" {
		return false
	}

	admins, err := s.gw.ChatAdmins(ctx, chatID)
	if err != nil {
		s.logger.Warn("Failed to get chat admins", "chat_id", chatID, "error", err)
		return false
	}
	for _, id := range admins {
		if id == userID {
			return true
		}
	}
	return false
}

// IsBotAdmin reports whether the bot itself holds administrator rights in the
// chat. Configuration changes are refused when it does not, to avoid
// promising enforcement the bot cannot perform.
func (s *GatekeeperService) IsBotAdmin(ctx context.Context, chatID int64) bool {
	ctx, span := s.tracer.Start(ctx, "IsBotAdmin")
	defer span.End()

	ok, err := s.gw.IsSelfAdmin(ctx, chatID)
	if err != nil {
		s.logger.Warn("Failed to check own admin status", "chat_id", chatID, "error", err)
		return false
	}
	return ok
}
