package filters

import (
	"context"
	"time"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/store"
)

type FloodFilter struct {
	configs store.ChatConfigStore
	windows store.FloodStore
	now     func() time.Time
}

func NewFloodFilter(configs store.ChatConfigStore, windows store.FloodStore) *FloodFilter {
	return &FloodFilter{
		configs: configs,
		windows: windows,
		now:     time.Now,
	}
}

func (f *FloodFilter) Name() string {
	return "flood_filter"
}

func (f *FloodFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	cfg := f.configs.Get(payload.ChatID)
	if !cfg.FloodEnabled {
		return &pipeline.Result{IsAllowed: true}, nil
	}

	count := f.windows.Touch(payload.ChatID, payload.SenderID, f.now(), cfg.FloodWindow())
	if count > cfg.FloodMaxMsgs {
		return &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonFlood,
			FilterName: f.Name(),
		}, nil
	}
	return &pipeline.Result{IsAllowed: true}, nil
}
