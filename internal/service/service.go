package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/bienps24/OmniGateBot/internal/admission"
	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/metrics"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/pipeline/filters"
	"github.com/bienps24/OmniGateBot/internal/store"
	"github.com/bienps24/OmniGateBot/internal/utils"
	"github.com/bienps24/OmniGateBot/internal/verification"
	"github.com/bienps24/OmniGateBot/internal/warnings"
)

type Service interface {
	TrackChat(chat store.KnownChat)
	KnownChats() []store.KnownChat

	HandleJoinRequest(ctx context.Context, req admission.Request)

	ModerateMessage(ctx context.Context, payload pipeline.Payload) (*pipeline.Result, error)
	EnforceModeration(ctx context.Context, chatID int64, messageID int, senderID int64, senderName string, res *pipeline.Result)

	ConfirmVerification(ctx context.Context, chatID, userID, presserID int64, nonce string) error
	PendingCount(chatID int64) int

	IsUserAdmin(ctx context.Context, chatID int64, chatKind string, userID int64) bool
	IsBotAdmin(ctx context.Context, chatID int64) bool

	GetChatConfig(ctx context.Context, chatID int64) *store.ChatConfig
	SetMode(ctx context.Context, chatID int64, mode store.Mode) error
	SetToggle(ctx context.Context, chatID int64, setting string, value bool) error
	ToggleSetting(ctx context.Context, chatID int64, setting string) (bool, error)
	SetNumber(ctx context.Context, chatID int64, setting string, value int) error
	SetWarningsAction(ctx context.Context, chatID int64, action store.WarnAction) error
	SetWelcomeMessage(ctx context.Context, chatID int64, text string) error
	AddBannedWords(ctx context.Context, chatID int64, words []string) (int, error)
	ClearBannedWords(ctx context.Context, chatID int64) error
}

type GatekeeperService struct {
	logger   *slog.Logger
	configs  store.ChatConfigStore
	known    store.KnownChatStore
	pending  store.PendingStore
	pipeline *pipeline.Manager
	verifier *verification.Machine
	warner   *warnings.Escalator
	gw       gateway.Gateway
	ownerID  int64
	tracer   trace.Tracer
}

func NewGatekeeperService(
	logger *slog.Logger,
	configs store.ChatConfigStore,
	floods store.FloodStore,
	known store.KnownChatStore,
	pending store.PendingStore,
	verifier *verification.Machine,
	warner *warnings.Escalator,
	gw gateway.Gateway,
	ownerID int64,
) *GatekeeperService {

	floodFilter := filters.NewFloodFilter(configs, floods)
	linkFilter := filters.NewLinkFilter(configs)
	wordFilter := filters.NewWordFilter(configs)

	// Fixed rule priority: flood, then links, then banned words.
	pm := pipeline.NewManager(floodFilter, linkFilter, wordFilter)

	return &GatekeeperService{
		logger:   logger,
		configs:  configs,
		known:    known,
		pending:  pending,
		pipeline: pm,
		verifier: verifier,
		warner:   warner,
		gw:       gw,
		ownerID:  ownerID,
		tracer:   otel.Tracer("service"),
	}
}

func (s *GatekeeperService) TrackChat(chat store.KnownChat) {
	s.known.Upsert(chat)
}

func (s *GatekeeperService) KnownChats() []store.KnownChat {
	return s.known.All()
}

func isMultiMember(kind string) bool {
	return kind == "group" || kind == "supergroup"
}

// HandleJoinRequest runs the admission policy for one join request and
// executes the decision. Counter increments are authoritative once the
// approve/decline call succeeds; later notification failures are logged only.
func (s *GatekeeperService) HandleJoinRequest(ctx context.Context, req admission.Request) {
	ctx, span := s.tracer.Start(ctx, "HandleJoinRequest")
	defer span.End()

	s.known.Upsert(store.KnownChat{ChatID: req.ChatID, Title: req.ChatTitle, Kind: req.ChatKind})
	cfg := s.configs.Get(req.ChatID)

	s.logger.Info("Join request",
		"chat_id", req.ChatID, "chat_title", req.ChatTitle, "chat_kind", req.ChatKind,
		"user_id", req.UserID, "username", req.Username, "is_bot", req.IsBot,
	)

	dec := admission.Evaluate(cfg, req)

	if dec.Pending {
		s.logger.Info("Mode OFF, leaving request pending", "chat_id", req.ChatID)
		metrics.IncJoinDecision("pending")
		s.notifyOwner(ctx, fmt.Sprintf(messages.MsgOwnerJoinPending, req.ChatTitle, req.ChatID))
		return
	}

	if dec.Allowed {
		s.approve(ctx, cfg, req)
		return
	}
	s.decline(ctx, req, dec.Reasons)
}

func (s *GatekeeperService) approve(ctx context.Context, cfg *store.ChatConfig, req admission.Request) {
	if err := s.gw.ApproveJoinRequest(ctx, req.ChatID, req.UserID); err != nil {
		s.logger.Error("Error handling join request", "chat_id", req.ChatID, "user_id", req.UserID, "error", err)
		s.notifyOwner(ctx, fmt.Sprintf(messages.MsgOwnerJoinError, req.ChatTitle, req.ChatID, req.UserID, err))
		return
	}
	s.configs.RecordApproval(req.ChatID)
	metrics.IncJoinDecision("approved")
	s.logger.Info("Approved join request", "chat_id", req.ChatID, "user_id", req.UserID)

	if cfg.SafeWelcomeEnabled && isMultiMember(req.ChatKind) {
		if err := s.verifier.Begin(ctx, req.ChatID, req.UserID, displayName(req)); err != nil {
			s.logger.Error("Failed to start verification for new member",
				"chat_id", req.ChatID, "user_id", req.UserID, "error", err)
		}
		return
	}

	welcome := cfg.WelcomeMessage
	if welcome == "" {
		label := req.ChatTitle
		if label == "" {
			label = "this chat"
		}
		welcome = fmt.Sprintf(messages.MsgWelcomeDefault, label, utils.ChatKindLabel(req.ChatKind))
	}
	if err := s.gw.SendUserMessage(ctx, req.UserID, welcome); err != nil {
		s.logger.Warn("Could not send welcome DM", "user_id", req.UserID, "error", err)
	}
}

func (s *GatekeeperService) decline(ctx context.Context, req admission.Request, reasons []string) {
	if err := s.gw.DeclineJoinRequest(ctx, req.ChatID, req.UserID); err != nil {
		s.logger.Error("Error handling join request", "chat_id", req.ChatID, "user_id", req.UserID, "error", err)
		s.notifyOwner(ctx, fmt.Sprintf(messages.MsgOwnerJoinError, req.ChatTitle, req.ChatID, req.UserID, err))
		return
	}
	s.configs.RecordDecline(req.ChatID)
	metrics.IncJoinDecision("declined")
	s.logger.Info("Declined join request", "chat_id", req.ChatID, "user_id", req.UserID, "reasons", reasons)

	s.notifyOwner(ctx, fmt.Sprintf(messages.MsgOwnerJoinDeclined,
		req.ChatTitle, req.ChatID, req.UserID, strings.Join(reasons, "; ")))
}

func displayName(req admission.Request) string {
	if req.UserName != "" {
		return req.UserName
	}
	if req.Username != "" {
		return "@" + req.Username
	}
	return "User"
}

func (s *GatekeeperService) notifyOwner(ctx context.Context, text string) {
	if s.ownerID == 0 {
		return
	}
	if err := s.gw.SendUserMessage(ctx, s.ownerID, text); err != nil {
		s.logger.Warn("Failed to notify owner", "error", err)
	}
}

func (s *GatekeeperService) ModerateMessage(ctx context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	ctx, span := s.tracer.Start(ctx, "ModerateMessage")
	defer span.End()

	s.logger.Debug("Moderating message", "chat_id", payload.ChatID, "user_id", payload.SenderID)
	return s.pipeline.Process(ctx, payload)
}

// EnforceModeration deletes the offending message (best effort) and, if
// warnings are enabled for the chat, feeds the infraction to the escalation
// engine. The pipeline already stopped at the first match, so exactly one
// rule is attributed and one deletion attempted.
func (s *GatekeeperService) EnforceModeration(ctx context.Context, chatID int64, messageID int, senderID int64, senderName string, res *pipeline.Result) {
	ctx, span := s.tracer.Start(ctx, "EnforceModeration")
	defer span.End()

	if err := s.gw.DeleteMessage(ctx, chatID, messageID); err != nil {
		s.logger.Error("Failed to delete message", "chat_id", chatID, "message_id", messageID, "error", err)
	} else {
		metrics.IncDeletedMessages(res.FilterName)
	}

	cfg := s.configs.Get(chatID)
	if cfg.WarningsEnabled {
		s.warner.Apply(ctx, chatID, senderID, senderName, res.Reason)
	}
}

func (s *GatekeeperService) ConfirmVerification(ctx context.Context, chatID, userID, presserID int64, nonce string) error {
	ctx, span := s.tracer.Start(ctx, "ConfirmVerification")
	defer span.End()
	return s.verifier.Confirm(ctx, chatID, userID, presserID, nonce)
}

func (s *GatekeeperService) PendingCount(chatID int64) int {
	return s.pending.CountChat(chatID)
}

func (s *GatekeeperService) GetChatConfig(ctx context.Context, chatID int64) *store.ChatConfig {
	_, span := s.tracer.Start(ctx, "GetChatConfig")
	defer span.End()
	return s.configs.Get(chatID)
}

func (s *GatekeeperService) SetMode(ctx context.Context, chatID int64, mode store.Mode) error {
	_, span := s.tracer.Start(ctx, "SetMode")
	defer span.End()
	cfg := s.configs.Get(chatID)
	cfg.Mode = mode
	return s.configs.Put(cfg)
}

func (s *GatekeeperService) SetToggle(ctx context.Context, chatID int64, setting string, value bool) error {
	_, span := s.tracer.Start(ctx, "SetToggle")
	defer span.End()
	cfg := s.configs.Get(chatID)
	switch setting {
	case "require_username":
		cfg.RequireUsername = value
	case "block_bots":
		cfg.BlockBots = value
	case "block_links":
		cfg.BlockLinks = value
	case "warnings":
		cfg.WarningsEnabled = value
	case "flood":
		cfg.FloodEnabled = value
	case "safe_welcome":
		cfg.SafeWelcomeEnabled = value
	case "clean_service":
		cfg.CleanServiceMessages = value
	case "strict":
		cfg.StrictModeEnabled = value
	default:
		return fmt.Errorf("unknown setting: %s", setting)
	}
	return s.configs.Put(cfg)
}

func (s *GatekeeperService) ToggleSetting(ctx context.Context, chatID int64, setting string) (bool, error) {
	_, span := s.tracer.Start(ctx, "ToggleSetting")
	defer span.End()
	cfg := s.configs.Get(chatID)
	var newValue bool
	switch setting {
	case "require_username":
		cfg.RequireUsername = !cfg.RequireUsername
		newValue = cfg.RequireUsername
	case "block_bots":
		cfg.BlockBots = !cfg.BlockBots
		newValue = cfg.BlockBots
	case "block_links":
		cfg.BlockLinks = !cfg.BlockLinks
		newValue = cfg.BlockLinks
	case "warnings":
		cfg.WarningsEnabled = !cfg.WarningsEnabled
		newValue = cfg.WarningsEnabled
	case "flood":
		cfg.FloodEnabled = !cfg.FloodEnabled
		newValue = cfg.FloodEnabled
	case "safe_welcome":
		cfg.SafeWelcomeEnabled = !cfg.SafeWelcomeEnabled
		newValue = cfg.SafeWelcomeEnabled
	case "clean_service":
		cfg.CleanServiceMessages = !cfg.CleanServiceMessages
		newValue = cfg.CleanServiceMessages
	case "strict":
		cfg.StrictModeEnabled = !cfg.StrictModeEnabled
		newValue = cfg.StrictModeEnabled
	default:
		return false, fmt.Errorf("unknown setting: %s", setting)
	}
	if err := s.configs.Put(cfg); err != nil {
		return false, err
	}
	return newValue, nil
}

func (s *GatekeeperService) SetNumber(ctx context.Context, chatID int64, setting string, value int) error {
	_, span := s.tracer.Start(ctx, "SetNumber")
	defer span.End()
	cfg := s.configs.Get(chatID)
	switch setting {
	case "min_username_length":
		cfg.MinUsernameLength = value
	case "warnings_limit":
		cfg.WarningsLimit = value
	case "warnings_mute_minutes":
		cfg.WarningsMuteMinutes = value
	case "flood_limit":
		cfg.FloodMaxMsgs = value
	case "flood_window":
		cfg.FloodWindowSeconds = value
	default:
		return fmt.Errorf("unknown setting: %s", setting)
	}
	return s.configs.Put(cfg)
}

func (s *GatekeeperService) SetWarningsAction(ctx context.Context, chatID int64, action store.WarnAction) error {
	_, span := s.tracer.Start(ctx, "SetWarningsAction")
	defer span.End()
	cfg := s.configs.Get(chatID)
	cfg.WarningsAction = action
	return s.configs.Put(cfg)
}

func (s *GatekeeperService) SetWelcomeMessage(ctx context.Context, chatID int64, text string) error {
	_, span := s.tracer.Start(ctx, "SetWelcomeMessage")
	defer span.End()
	cfg := s.configs.Get(chatID)
	cfg.WelcomeMessage = text
	return s.configs.Put(cfg)
}

func (s *GatekeeperService) AddBannedWords(ctx context.Context, chatID int64, words []string) (int, error) {
	_, span := s.tracer.Start(ctx, "AddBannedWords")
	defer span.End()

	cfg := s.configs.Get(chatID)
	existing := make(map[string]struct{})
	for _, w := range cfg.BannedWords {
		existing[w] = struct{}{}
	}
	var added int
	for _, w := range words {
		norm := utils.NormalizeWord(w)
		if norm == "" {
			continue
		}
		if _, exists := existing[norm]; !exists {
			cfg.BannedWords = append(cfg.BannedWords, norm)
			existing[norm] = struct{}{}
			added++
		}
	}
	if err := s.configs.Put(cfg); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *GatekeeperService) ClearBannedWords(ctx context.Context, chatID int64) error {
	_, span := s.tracer.Start(ctx, "ClearBannedWords")
	defer span.End()
	cfg := s.configs.Get(chatID)
	cfg.BannedWords = nil
	return s.configs.Put(cfg)
}
