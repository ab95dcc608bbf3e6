package verification

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/gateway"
)

type mockGateway struct {
	RestrictMemberFunc  func(ctx context.Context, chatID, userID int64, until time.Time) error
	RestoreMemberFunc   func(ctx context.Context, chatID, userID int64) error
	SendChatMessageFunc func(ctx context.Context, chatID int64, text string, rows ...[]gateway.Button) error

	restricted []int64
	restored   []int64
	sent       []string
}

func (m *mockGateway) ApproveJoinRequest(_ context.Context, _, _ int64) error { return nil }
func (m *mockGateway) DeclineJoinRequest(_ context.Context, _, _ int64) error { return nil }

func (m *mockGateway) SendChatMessage(ctx context.Context, chatID int64, text string, rows ...[]gateway.Button) error {
	if m.SendChatMessageFunc != nil {
		return m.SendChatMessageFunc(ctx, chatID, text, rows...)
	}
	m.sent = append(m.sent, text)
	return nil
}

func (m *mockGateway) SendUserMessage(_ context.Context, _ int64, _ string, _ ...[]gateway.Button) error {
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
	m.restricted = append(m.restricted, userID)
	return nil
}

func (m *mockGateway) RestoreMember(ctx context.Context, chatID, userID int64) error {
	if m.RestoreMemberFunc != nil {
		return m.RestoreMemberFunc(ctx, chatID, userID)
	}
	m.restored = append(m.restored, userID)
	return nil
}

func (m *mockGateway) KickMember(_ context.Context, _, _ int64) error { return nil }

func (m *mockGateway) ChatAdmins(_ context.Context, _ int64) ([]int64, error) { return nil, nil }
func (m *mockGateway) IsSelfAdmin(_ context.Context, _ int64) (bool, error)   { return true, nil }

func (m *mockGateway) AnswerCallback(_ context.Context, _, _ string) error { return nil }
