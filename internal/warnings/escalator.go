package warnings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/metrics"
	"github.com/bienps24/OmniGateBot/internal/store"
)

// Escalator accumulates per-user warnings and performs the configured action
// when the limit is reached. The count resets once the action fires, so the
// next infraction starts a fresh cycle instead of re-triggering immediately.
type Escalator struct {
	logger  *slog.Logger
	configs store.ChatConfigStore
	counts  store.WarningStore
	gw      gateway.Gateway
	ownerID int64
	now     func() time.Time
}

func NewEscalator(logger *slog.Logger, configs store.ChatConfigStore, counts store.WarningStore, gw gateway.Gateway, ownerID int64) *Escalator {
	return &Escalator{
		logger:  logger,
		configs: configs,
		counts:  counts,
		gw:      gw,
		ownerID: ownerID,
		now:     time.Now,
	}
}

// Apply records one warning for (chat, user), announces the new count, and
// escalates to the configured mute or kick at the limit. Platform failures
// are logged; the owner is notified of a threshold breach either way.
func (e *Escalator) Apply(ctx context.Context, chatID, userID int64, displayName, reason string) {
	cfg := e.configs.Get(chatID)
	count := e.counts.Increment(chatID, userID)
	metrics.IncWarningsIssued()

	announcement := fmt.Sprintf(messages.MsgWarning, displayName, reason, count, cfg.WarningsLimit)
	if err := e.gw.SendChatMessage(ctx, chatID, announcement); err != nil {
		e.logger.Error("Failed to announce warning", "chat_id", chatID, "user_id", userID, "error", err)
	}

	if count < cfg.WarningsLimit {
		return
	}

	action := cfg.WarningsAction
	var actionErr error
	switch action {
	case store.ActionKick:
		actionErr = e.gw.KickMember(ctx, chatID, userID)
	default:
		until := e.now().Add(cfg.MuteDuration())
		actionErr = e.gw.RestrictMember(ctx, chatID, userID, until)
	}
	if actionErr != nil {
		e.logger.Error("Failed to perform escalation action",
			"chat_id", chatID, "user_id", userID, "action", string(action), "error", actionErr)
	} else {
		e.logger.Info("Warning limit reached, action performed",
			"chat_id", chatID, "user_id", userID, "action", string(action), "reason", reason)
	}
	metrics.IncEscalationAction(string(action))

	e.counts.Reset(chatID, userID)

	if e.ownerID != 0 {
		text := fmt.Sprintf(messages.MsgOwnerEscalation, chatID, userID, string(action), reason)
		if err := e.gw.SendUserMessage(ctx, e.ownerID, text); err != nil {
			e.logger.Warn("Failed to notify owner about escalation", "error", err)
		}
	}
}
