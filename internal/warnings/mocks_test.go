package warnings

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/gateway"
)

type mockGateway struct {
	KickMemberFunc     func(ctx context.Context, chatID, userID int64) error
	RestrictMemberFunc func(ctx context.Context, chatID, userID int64, until time.Time) error

	kicked        []int64
	mutedUntil    []time.Time
	chatMessages  []string
	ownerMessages []string
}

func (m *mockGateway) ApproveJoinRequest(_ context.Context, _, _ int64) error { return nil }
func (m *mockGateway) DeclineJoinRequest(_ context.Context, _, _ int64) error { return nil }

func (m *mockGateway) SendChatMessage(_ context.Context, _ int64, text string, _ ...[]gateway.Button) error {
	m.chatMessages = append(m.chatMessages, text)
	return nil
}

func (m *mockGateway) SendUserMessage(_ context.Context, _ int64, text string, _ ...[]gateway.Button) error {
	m.ownerMessages = append(m.ownerMessages, text)
	return nil
}

func (m *mockGateway) EditMessage(_ context.Context, _ int64, _ int, _ string, _ ...[]gateway.Button) error {
	return nil
}

func (m *mockGateway) DeleteMessage(_ context.Context, _ int64, _ int) error { return nil }

func (m *mockGateway) RestrictMember(ctx context.Context, chatID, userID int64, until time.Time) error {
	if m.RestrictMemberFunc != nil {
		return m.RestrictMemberFunc(ctx, chatID, userID, until)
	}
	m.mutedUntil = append(m.mutedUntil, until)
	return nil
}

func (m *mockGateway) RestoreMember(_ context.Context, _, _ int64) error { return nil }

func (m *mockGateway) KickMember(ctx context.Context, chatID, userID int64) error {
	if m.KickMemberFunc != nil {
		return m.KickMemberFunc(ctx, chatID, userID)
	}
	m.kicked = append(m.kicked, userID)
	return nil
}

func (m *mockGateway) ChatAdmins(_ context.Context, _ int64) ([]int64, error) { return nil, nil }
func (m *mockGateway) IsSelfAdmin(_ context.Context, _ int64) (bool, error)   { return true, nil }

func (m *mockGateway) AnswerCallback(_ context.Context, _, _ string) error { return nil }
