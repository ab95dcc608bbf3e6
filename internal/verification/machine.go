package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/metrics"
	"github.com/bienps24/OmniGateBot/internal/store"
)

var (
	// ErrWrongUser means the verify button was pressed on behalf of a
	// different identity than the pending member.
	ErrWrongUser = errors.New("verification pressed by a different user")
	// ErrNotPending means there is no pending record for the (chat, user).
	ErrNotPending = errors.New("no pending verification")
	// ErrStaleNonce means the button belongs to an earlier pending cycle.
	ErrStaleNonce = errors.New("stale verification token")
)

// CallbackPrefix namespaces verification tokens apart from settings tokens.
const CallbackPrefix = "verify"

// Machine tracks members admitted under safe welcome. A member is PENDING
// while a record exists: their send permissions are revoked until they press
// the verify button tied to their own identity, or the record expires.
type Machine struct {
	logger  *slog.Logger
	pending store.PendingStore
	gw      gateway.Gateway
	ttl     time.Duration
	now     func() time.Time
}

func NewMachine(logger *slog.Logger, pending store.PendingStore, gw gateway.Gateway, ttl time.Duration) *Machine {
	return &Machine{
		logger:  logger,
		pending: pending,
		gw:      gw,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Token builds the callback token for a pending record.
func Token(chatID, userID int64, nonce string) string {
	return fmt.Sprintf("%s_%d_%d_%s", CallbackPrefix, chatID, userID, nonce)
}

// Begin transitions a freshly admitted member into PENDING: revokes their
// send permissions and posts the verify prompt in-chat. The restriction has
// no platform-side expiry; only confirmation or the sweeper lifts it.
func (m *Machine) Begin(ctx context.Context, chatID, userID int64, displayName string) error {
	if err := m.gw.RestrictMember(ctx, chatID, userID, time.Time{}); err != nil {
		return fmt.Errorf("failed to restrict new member: %w", err)
	}

	nonce := uuid.NewString()
	m.pending.Put(store.PendingVerification{
		ChatID:   chatID,
		UserID:   userID,
		Nonce:    nonce,
		Deadline: m.now().Add(m.ttl),
	})
	metrics.SetPendingVerifications(float64(m.pending.Count()))

	prompt := fmt.Sprintf(messages.MsgVerifyPrompt, displayName)
	button := []gateway.Button{{Text: messages.MsgVerifyButton, Data: Token(chatID, userID, nonce)}}
	if err := m.gw.SendChatMessage(ctx, chatID, prompt, button); err != nil {
		m.logger.Error("Failed to send verification prompt", "chat_id", chatID, "user_id", userID, "error", err)
	}
	return nil
}

// Confirm moves PENDING back to UNRESTRICTED. Only the pending member's own
// identity with the current nonce clears the record; anything else leaves the
// state untouched.
func (m *Machine) Confirm(ctx context.Context, chatID, userID, presserID int64, nonce string) error {
	if presserID != userID {
		return ErrWrongUser
	}
	rec, ok := m.pending.Get(chatID, userID)
	if !ok {
		return ErrNotPending
	}
	if rec.Nonce != nonce {
		return ErrStaleNonce
	}

	m.pending.Delete(chatID, userID)
	metrics.SetPendingVerifications(float64(m.pending.Count()))

	if err := m.gw.RestoreMember(ctx, chatID, userID); err != nil {
		m.logger.Error("Failed to restore permissions after verification", "chat_id", chatID, "user_id", userID, "error", err)
		return err
	}
	m.logger.Info("Member verified", "chat_id", chatID, "user_id", userID)
	return nil
}

// IsPending reports whether the member currently awaits verification.
func (m *Machine) IsPending(chatID, userID int64) bool {
	_, ok := m.pending.Get(chatID, userID)
	return ok
}

// StartSweeper evicts expired pending records in the background, restoring
// permissions so an abandoned join does not stay restricted forever.
func (m *Machine) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep(ctx)
			}
		}
	}()
}

func (m *Machine) sweep(ctx context.Context) {
	expired := m.pending.Expired(m.now())
	for _, rec := range expired {
		m.pending.Delete(rec.ChatID, rec.UserID)
		if err := m.gw.RestoreMember(ctx, rec.ChatID, rec.UserID); err != nil {
			m.logger.Warn("Failed to restore permissions for expired verification",
				"chat_id", rec.ChatID, "user_id", rec.UserID, "error", err)
		}
		m.logger.Info("Pending verification expired", "chat_id", rec.ChatID, "user_id", rec.UserID)
	}
	if len(expired) > 0 {
		metrics.SetPendingVerifications(float64(m.pending.Count()))
	}
}
