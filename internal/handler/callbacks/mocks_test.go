package callbacks

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/admission"
	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/store"
)

type mockService struct {
	IsUserAdminFunc   func(ctx context.Context, chatID int64, chatKind string, userID int64) bool
	IsBotAdminFunc    func(ctx context.Context, chatID int64) bool
	GetChatConfigFunc func(ctx context.Context, chatID int64) *store.ChatConfig
	KnownChatsFunc    func() []store.KnownChat

	toggled []string
	modes   []store.Mode
}

func (m *mockService) TrackChat(store.KnownChat) {}

func (m *mockService) KnownChats() []store.KnownChat {
	if m.KnownChatsFunc != nil {
		return m.KnownChatsFunc()
	}
	return nil
}

func (m *mockService) HandleJoinRequest(context.Context, admission.Request) {}

func (m *mockService) ModerateMessage(context.Context, pipeline.Payload) (*pipeline.Result, error) {
	return &pipeline.Result{}, nil
}

func (m *mockService) EnforceModeration(context.Context, int64, int, int64, string, *pipeline.Result) {
}

func (m *mockService) ConfirmVerification(context.Context, int64, int64, int64, string) error {
	return nil
}

func (m *mockService) PendingCount(int64) int { return 0 }

func (m *mockService) IsUserAdmin(ctx context.Context, chatID int64, chatKind string, userID int64) bool {
	if m.IsUserAdminFunc != nil {
		return m.IsUserAdminFunc(ctx, chatID, chatKind, userID)
	}
	return true
}

func (m *mockService) IsBotAdmin(ctx context.Context, chatID int64) bool {
	if m.IsBotAdminFunc != nil {
		return m.IsBotAdminFunc(ctx, chatID)
	}
	return true
}

func (m *mockService) GetChatConfig(ctx context.Context, chatID int64) *store.ChatConfig {
	if m.GetChatConfigFunc != nil {
		return m.GetChatConfigFunc(ctx, chatID)
	}
	return &store.ChatConfig{ChatID: chatID, Mode: store.ModeAuto}
}

func (m *mockService) SetMode(_ context.Context, _ int64, mode store.Mode) error {
	m.modes = append(m.modes, mode)
	return nil
}

func (m *mockService) SetToggle(context.Context, int64, string, bool) error { return nil }

func (m *mockService) ToggleSetting(_ context.Context, _ int64, setting string) (bool, error) {
	m.toggled = append(m.toggled, setting)
	return true, nil
}

func (m *mockService) SetNumber(context.Context, int64, string, int) error { return nil }

func (m *mockService) SetWarningsAction(context.Context, int64, store.WarnAction) error { return nil }

func (m *mockService) SetWelcomeMessage(context.Context, int64, string) error { return nil }

func (m *mockService) AddBannedWords(context.Context, int64, []string) (int, error) { return 0, nil }

func (m *mockService) ClearBannedWords(context.Context, int64) error { return nil }

type mockGateway struct {
	answers []string
	edits   []string
}

func (m *mockGateway) ApproveJoinRequest(context.Context, int64, int64) error { return nil }

func (m *mockGateway) DeclineJoinRequest(context.Context, int64, int64) error { return nil }

func (m *mockGateway) SendChatMessage(_ context.Context, _ int64, _ string, _ ...[]gateway.Button) error {
	return nil
}

func (m *mockGateway) SendUserMessage(_ context.Context, _ int64, _ string, _ ...[]gateway.Button) error {
	return nil
}

func (m *mockGateway) EditMessage(_ context.Context, _ int64, _ int, text string, _ ...[]gateway.Button) error {
	m.edits = append(m.edits, text)
	return nil
}

func (m *mockGateway) DeleteMessage(context.Context, int64, int) error { return nil }

func (m *mockGateway) RestrictMember(context.Context, int64, int64, time.Time) error { return nil }

func (m *mockGateway) RestoreMember(context.Context, int64, int64) error { return nil }

func (m *mockGateway) KickMember(context.Context, int64, int64) error { return nil }

func (m *mockGateway) ChatAdmins(context.Context, int64) ([]int64, error) { return nil, nil }

func (m *mockGateway) IsSelfAdmin(context.Context, int64) (bool, error) { return true, nil }

func (m *mockGateway) AnswerCallback(_ context.Context, _, text string) error {
	m.answers = append(m.answers, text)
	return nil
}
