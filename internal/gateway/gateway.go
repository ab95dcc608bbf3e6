package gateway

import (
	"context"
	"time"
)

// Button is a single inline keyboard control carrying an opaque callback token.
type Button struct {
	Text string
	Data string
}

// Gateway is the outbound boundary to the chat platform. Every decision the
// engines make leaves the process through it; callers treat failures as
// fire-and-forget (log and continue), never as a reason to unwind a decision
// already recorded.
type Gateway interface {
	ApproveJoinRequest(ctx context.Context, chatID, userID int64) error
	DeclineJoinRequest(ctx context.Context, chatID, userID int64) error

	SendChatMessage(ctx context.Context, chatID int64, text string, rows ...[]Button) error
	SendUserMessage(ctx context.Context, userID int64, text string, rows ...[]Button) error
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows ...[]Button) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// RestrictMember revokes the member's send permissions. A zero until
	// restricts indefinitely; otherwise the restriction lifts at until.
	RestrictMember(ctx context.Context, chatID, userID int64, until time.Time) error
	// RestoreMember re-grants the full default permission set, not a
	// partial merge.
	RestoreMember(ctx context.Context, chatID, userID int64) error
	KickMember(ctx context.Context, chatID, userID int64) error

	ChatAdmins(ctx context.Context, chatID int64) ([]int64, error)
	IsSelfAdmin(ctx context.Context, chatID int64) (bool, error)

	AnswerCallback(ctx context.Context, callbackID, text string) error
}
