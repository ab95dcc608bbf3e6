package admission

import (
	"fmt"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/store"
)

// Request carries everything the policy needs about one join request. Each
// request is evaluated exactly once; there is no retry.
type Request struct {
	ChatID    int64
	ChatKind  string
	ChatTitle string
	UserID    int64
	UserName  string
	Username  string
	IsBot     bool
}

// Decision is the outcome of evaluating a join request. Pending means mode is
// OFF and the request is left for manual handling; otherwise Allowed decides
// approve vs decline and Reasons explains a decline.
type Decision struct {
	Pending bool
	Allowed bool
	Reasons []string
}

// Evaluate applies the chat's admission policy to a single request. The
// username filters run in FILTERED mode or whenever strict mode is on; strict
// mode also blocks bots regardless of the block_bots setting. Checks are
// independent, so a decline can carry more than one reason.
func Evaluate(cfg *store.ChatConfig, req Request) Decision {
	if cfg.Mode == store.ModeOff {
		return Decision{Pending: true}
	}

	allowed := true
	var reasons []string

	blockBot := cfg.StrictModeEnabled
	if cfg.Mode == store.ModeFiltered && cfg.BlockBots {
		blockBot = true
	}
	if blockBot && req.IsBot {
		allowed = false
		reasons = append(reasons, messages.MsgReasonBot)
	}

	if cfg.Mode == store.ModeFiltered || cfg.StrictModeEnabled {
		if cfg.RequireUsername && req.Username == "" {
			allowed = false
			reasons = append(reasons, messages.MsgReasonMissingUsername)
		}
		if cfg.MinUsernameLength > 0 && req.Username != "" && len(req.Username) < cfg.MinUsernameLength {
			allowed = false
			reasons = append(reasons, fmt.Sprintf(messages.MsgReasonUsernameTooShort, cfg.MinUsernameLength))
		}
	}

	if !allowed && len(reasons) == 0 {
		reasons = append(reasons, messages.MsgReasonFiltered)
	}

	return Decision{Allowed: allowed, Reasons: reasons}
}
