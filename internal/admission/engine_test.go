package admission

import (
	"strings"
	"testing"

	"github.com/bienps24/OmniGateBot/internal/store"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *store.ChatConfig
		req         Request
		wantPending bool
		wantAllowed bool
		wantReasons int
		wantContain string
	}{
		{
			name:        "Mode OFF leaves request pending",
			cfg:         &store.ChatConfig{Mode: store.ModeOff, BlockBots: true},
			req:         Request{UserID: 1, IsBot: true},
			wantPending: true,
		},
		{
			name:        "AUTO approves everyone",
			cfg:         &store.ChatConfig{Mode: store.ModeAuto, BlockBots: true},
			req:         Request{UserID: 1},
			wantAllowed: true,
		},
		{
			name:        "AUTO approves bots when strict is off",
			cfg:         &store.ChatConfig{Mode: store.ModeAuto, BlockBots: true},
			req:         Request{UserID: 1, IsBot: true},
			wantAllowed: true,
		},
		{
			name:        "AUTO strict declines bots",
			cfg:         &store.ChatConfig{Mode: store.ModeAuto, StrictModeEnabled: true},
			req:         Request{UserID: 1, IsBot: true},
			wantAllowed: false,
			wantReasons: 1,
			wantContain: "bot",
		},
		{
			name:        "FILTERED declines bots",
			cfg:         &store.ChatConfig{Mode: store.ModeFiltered, BlockBots: true},
			req:         Request{UserID: 1, IsBot: true, Username: "somebody"},
			wantAllowed: false,
			wantReasons: 1,
			wantContain: "bot",
		},
		{
			name:        "FILTERED tolerates bots when block_bots is off",
			cfg:         &store.ChatConfig{Mode: store.ModeFiltered},
			req:         Request{UserID: 1, IsBot: true},
			wantAllowed: true,
		},
		{
			name:        "FILTERED requires username",
			cfg:         &store.ChatConfig{Mode: store.ModeFiltered, RequireUsername: true},
			req:         Request{UserID: 1},
			wantAllowed: false,
			wantReasons: 1,
			wantContain: "username",
		},
		{
			name:        "AUTO ignores username requirement",
			cfg:         &store.ChatConfig{Mode: store.ModeAuto, RequireUsername: true, MinUsernameLength: 10},
			req:         Request{UserID: 1},
			wantAllowed: true,
		},
		{
			name:        "AUTO strict enforces username requirement",
			cfg:         &store.ChatConfig{Mode: store.ModeAuto, StrictModeEnabled: true, RequireUsername: true},
			req:         Request{UserID: 1},
			wantAllowed: false,
			wantReasons: 1,
			wantContain: "username",
		},
		{
			name:        "FILTERED declines short username",
			cfg:         &store.ChatConfig{Mode: store.ModeFiltered, MinUsernameLength: 5},
			req:         Request{UserID: 1, Username: "abc"},
			wantAllowed: false,
			wantReasons: 1,
			wantContain: "short",
		},
		{
			name:        "Min length skipped when username is absent",
			cfg:         &store.ChatConfig{Mode: store.ModeFiltered, MinUsernameLength: 5},
			req:         Request{UserID: 1},
			wantAllowed: true,
		},
		{
			name: "Independent checks accumulate reasons",
			cfg: &store.ChatConfig{
				Mode:            store.ModeFiltered,
				BlockBots:       true,
				RequireUsername: true,
			},
			req:         Request{UserID: 1, IsBot: true},
			wantAllowed: false,
			wantReasons: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Evaluate(tt.cfg, tt.req)
			if dec.Pending != tt.wantPending {
				t.Fatalf("Evaluate() pending = %v, want %v", dec.Pending, tt.wantPending)
			}
			if tt.wantPending {
				return
			}
			if dec.Allowed != tt.wantAllowed {
				t.Errorf("Evaluate() allowed = %v, want %v", dec.Allowed, tt.wantAllowed)
			}
			if len(dec.Reasons) != tt.wantReasons {
				t.Errorf("Evaluate() reasons = %v, want %d", dec.Reasons, tt.wantReasons)
			}
			if tt.wantContain != "" {
				joined := strings.ToLower(strings.Join(dec.Reasons, "; "))
				if !strings.Contains(joined, tt.wantContain) {
					t.Errorf("Evaluate() reasons %v do not mention %q", dec.Reasons, tt.wantContain)
				}
			}
		})
	}
}

func TestEvaluateDeclineAlwaysCarriesReason(t *testing.T) {
	cfg := &store.ChatConfig{Mode: store.ModeFiltered, RequireUsername: true}
	dec := Evaluate(cfg, Request{UserID: 42})
	if dec.Allowed {
		t.Fatal("expected decline")
	}
	if len(dec.Reasons) == 0 {
		t.Fatal("decline without reasons")
	}
}
