package filters

import (
	"context"
	"strings"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/store"
)

// linkMarkers are literal lowercase substrings that count as a link even when
// the platform did not annotate one.
var linkMarkers = []string{"http://", "https://", "www.", "t.me/"}

type LinkFilter struct {
	configs store.ChatConfigStore
}

func NewLinkFilter(configs store.ChatConfigStore) *LinkFilter {
	return &LinkFilter{configs: configs}
}

func (f *LinkFilter) Name() string {
	return "link_filter"
}

func (f *LinkFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	cfg := f.configs.Get(payload.ChatID)
	if !cfg.BlockLinks {
		return &pipeline.Result{IsAllowed: true}, nil
	}

	if payload.HasLinkEntity || containsLink(payload.Text) {
		return &pipeline.Result{
			IsAllowed:  false,
			Reason:     messages.MsgReasonLink,
			FilterName: f.Name(),
		}, nil
	}
	return &pipeline.Result{IsAllowed: true}, nil
}

func containsLink(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range linkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
