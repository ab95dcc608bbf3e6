package service

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/gateway"
)

type memberAction struct {
	chatID int64
	userID int64
}

type mockGateway struct {
	ApproveJoinRequestFunc func(ctx context.Context, chatID, userID int64) error
	DeclineJoinRequestFunc func(ctx context.Context, chatID, userID int64) error
	DeleteMessageFunc      func(ctx context.Context, chatID int64, messageID int) error
	ChatAdminsFunc         func(ctx context.Context, chatID int64) ([]int64, error)
	IsSelfAdminFunc        func(ctx context.Context, chatID int64) (bool, error)

	approved     []memberAction
	declined     []memberAction
	deleted      []int
	restricted   []memberAction
	restored     []memberAction
	kicked       []memberAction
	chatMessages []string
	userMessages map[int64][]string
}

func newMockGateway() *mockGateway {
	return &mockGateway{userMessages: make(map[int64][]string)}
}

func (m *mockGateway) ApproveJoinRequest(ctx context.Context, chatID, userID int64) error {
	if m.ApproveJoinRequestFunc != nil {
		return m.ApproveJoinRequestFunc(ctx, chatID, userID)
	}
	m.approved = append(m.approved, memberAction{chatID, userID})
	return nil
}

func (m *mockGateway) DeclineJoinRequest(ctx context.Context, chatID, userID int64) error {
	if m.DeclineJoinRequestFunc != nil {
		return m.DeclineJoinRequestFunc(ctx, chatID, userID)
	}
	m.declined = append(m.declined, memberAction{chatID, userID})
	return nil
}

func (m *mockGateway) SendChatMessage(_ context.Context, _ int64, text string, _ ...[]gateway.Button) error {
	m.chatMessages = append(m.chatMessages, text)
	return nil
}

func (m *mockGateway) SendUserMessage(_ context.Context, userID int64, text string, _ ...[]gateway.Button) error {
	m.userMessages[userID] = append(m.userMessages[userID], text)
	return nil
}

func (m *mockGateway) EditMessage(_ context.Context, _ int64, _ int, _ string, _ ...[]gateway.Button) error {
	return nil
}

func (m *mockGateway) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(ctx, chatID, messageID)
	}
	m.deleted = append(m.deleted, messageID)
	return nil
}

func (m *mockGateway) RestrictMember(_ context.Context, chatID, userID int64, _ time.Time) error {
	m.restricted = append(m.restricted, memberAction{chatID, userID})
	return nil
}

func (m *mockGateway) RestoreMember(_ context.Context, chatID, userID int64) error {
	m.restored = append(m.restored, memberAction{chatID, userID})
	return nil
}

func (m *mockGateway) KickMember(_ context.Context, chatID, userID int64) error {
	m.kicked = append(m.kicked, memberAction{chatID, userID})
	return nil
}

func (m *mockGateway) ChatAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	if m.ChatAdminsFunc != nil {
		return m.ChatAdminsFunc(ctx, chatID)
	}
	return nil, nil
}

func (m *mockGateway) IsSelfAdmin(ctx context.Context, chatID int64) (bool, error) {
	if m.IsSelfAdminFunc != nil {
		return m.IsSelfAdminFunc(ctx, chatID)
	}
	return true, nil
}

func (m *mockGateway) AnswerCallback(_ context.Context, _, _ string) error { return nil }
