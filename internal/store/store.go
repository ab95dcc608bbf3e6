package store

import "time"

type Mode string

const (
	ModeAuto     Mode = "AUTO"
	ModeFiltered Mode = "FILTERED"
	ModeOff      Mode = "OFF"
)

type WarnAction string

const (
	ActionMute WarnAction = "MUTE"
	ActionKick WarnAction = "KICK"
)

// ChatConfig holds per-chat moderation policy and rolling statistics.
// Configs are created lazily on first access and live for process lifetime.
type ChatConfig struct {
	ChatID int64

	Mode              Mode
	RequireUsername   bool
	BlockBots         bool
	MinUsernameLength int

	BlockLinks  bool
	BannedWords []string

	WarningsEnabled     bool
	WarningsLimit       int
	WarningsMuteMinutes int
	WarningsAction      WarnAction

	FloodEnabled       bool
	FloodMaxMsgs       int
	FloodWindowSeconds int

	SafeWelcomeEnabled   bool
	WelcomeMessage       string
	CleanServiceMessages bool
	StrictModeEnabled    bool

	ApprovedTotal int64
	DeclinedTotal int64
	ApprovedToday int64
	DeclinedToday int64
	LastStatsDate time.Time
}

// FloodWindow returns the configured sliding window as a duration.
func (c *ChatConfig) FloodWindow() time.Duration {
	return time.Duration(c.FloodWindowSeconds) * time.Second
}

func (c *ChatConfig) MuteDuration() time.Duration {
	return time.Duration(c.WarningsMuteMinutes) * time.Minute
}

// ChatConfigStore owns per-chat configuration. Get always applies the lazy
// daily-counter rollover before returning, so ApprovedToday/DeclinedToday are
// reset the first time a chat is touched on a new calendar date. Get returns
// a private copy: callers mutate it freely and publish changes through Put,
// which stores its own copy. Handlers run on separate goroutines, so no
// caller may ever hold a reference into the store.
type ChatConfigStore interface {
	Get(chatID int64) *ChatConfig
	Put(cfg *ChatConfig) error
	RecordApproval(chatID int64)
	RecordDecline(chatID int64)
}

// WarningStore tracks per-(chat,user) warning counts.
type WarningStore interface {
	Increment(chatID, userID int64) int
	Reset(chatID, userID int64)
	Count(chatID, userID int64) int
}

// FloodStore keeps per-(chat,user) sliding windows of message timestamps.
// Touch prunes entries older than the window, appends now, and returns the
// resulting window length.
type FloodStore interface {
	Touch(chatID, userID int64, now time.Time, window time.Duration) int
}

// PendingVerification marks a member admitted under safe welcome who has not
// yet confirmed. Nonce ties the verify button to this pending cycle.
type PendingVerification struct {
	ChatID   int64
	UserID   int64
	Nonce    string
	Deadline time.Time
}

type PendingStore interface {
	Put(rec PendingVerification)
	Get(chatID, userID int64) (PendingVerification, bool)
	Delete(chatID, userID int64)
	Expired(now time.Time) []PendingVerification
	Count() int
	CountChat(chatID int64) int
}

// KnownChat is an opportunistically collected (title, kind) record for every
// chat the bot has seen an event from, used for chat discovery in menus.
type KnownChat struct {
	ChatID int64
	Title  string
	Kind   string
}

type KnownChatStore interface {
	Upsert(chat KnownChat)
	Get(chatID int64) (KnownChat, bool)
	All() []KnownChat
}
