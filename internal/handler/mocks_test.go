package handler

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/admission"
	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/store"
)

type mockService struct{}

func (m *mockService) TrackChat(store.KnownChat)                            {}
func (m *mockService) KnownChats() []store.KnownChat                        { return nil }
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

func (m *mockService) IsUserAdmin(context.Context, int64, string, int64) bool { return true }
func (m *mockService) IsBotAdmin(context.Context, int64) bool                 { return true }

func (m *mockService) GetChatConfig(_ context.Context, chatID int64) *store.ChatConfig {
	return &store.ChatConfig{ChatID: chatID, Mode: store.ModeAuto}
}

func (m *mockService) SetMode(context.Context, int64, store.Mode) error     { return nil }
func (m *mockService) SetToggle(context.Context, int64, string, bool) error { return nil }

func (m *mockService) ToggleSetting(context.Context, int64, string) (bool, error) {
	return false, nil
}

func (m *mockService) SetNumber(context.Context, int64, string, int) error { return nil }

func (m *mockService) SetWarningsAction(context.Context, int64, store.WarnAction) error { return nil }
func (m *mockService) SetWelcomeMessage(context.Context, int64, string) error           { return nil }

func (m *mockService) AddBannedWords(context.Context, int64, []string) (int, error) { return 0, nil }
func (m *mockService) ClearBannedWords(context.Context, int64) error                { return nil }

type sentMessage struct {
	text string
	rows [][]gateway.Button
}

type mockGateway struct {
	chatMessages []string
	userMessages []sentMessage
}

func (m *mockGateway) ApproveJoinRequest(context.Context, int64, int64) error { return nil }
func (m *mockGateway) DeclineJoinRequest(context.Context, int64, int64) error { return nil }

func (m *mockGateway) SendChatMessage(_ context.Context, _ int64, text string, _ ...[]gateway.Button) error {
	m.chatMessages = append(m.chatMessages, text)
	return nil
}

func (m *mockGateway) SendUserMessage(_ context.Context, _ int64, text string, rows ...[]gateway.Button) error {
	m.userMessages = append(m.userMessages, sentMessage{text: text, rows: rows})
	return nil
}

func (m *mockGateway) EditMessage(_ context.Context, _ int64, _ int, _ string, _ ...[]gateway.Button) error {
	return nil
}

func (m *mockGateway) DeleteMessage(context.Context, int64, int) error { return nil }

func (m *mockGateway) RestrictMember(context.Context, int64, int64, time.Time) error { return nil }
func (m *mockGateway) RestoreMember(context.Context, int64, int64) error             { return nil }
func (m *mockGateway) KickMember(context.Context, int64, int64) error                { return nil }

func (m *mockGateway) ChatAdmins(context.Context, int64) ([]int64, error) { return nil, nil }
func (m *mockGateway) IsSelfAdmin(context.Context, int64) (bool, error)  { return true, nil }

func (m *mockGateway) AnswerCallback(context.Context, string, string) error { return nil }
