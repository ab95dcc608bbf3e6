package filters

import (
	"context"
	"fmt"
	"strings"

	"github.com/bienps24/OmniGateBot/internal/messages"
	"github.com/bienps24/OmniGateBot/internal/pipeline"
	"github.com/bienps24/OmniGateBot/internal/store"
)

type WordFilter struct {
	configs store.ChatConfigStore
}

func NewWordFilter(configs store.ChatConfigStore) *WordFilter {
	return &WordFilter{configs: configs}
}

func (f *WordFilter) Name() string {
	return "word_filter"
}

func (f *WordFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	cfg := f.configs.Get(payload.ChatID)
	if len(cfg.BannedWords) == 0 {
		return &pipeline.Result{IsAllowed: true}, nil
	}
	lowerMsg := strings.ToLower(payload.Text)
	for _, word := range cfg.BannedWords {
		if strings.Contains(lowerMsg, word) {
			return &pipeline.Result{
				IsAllowed:  false,
				Reason:     fmt.Sprintf(messages.MsgReasonBannedWord, word),
				FilterName: f.Name(),
			}, nil
		}
	}
	return &pipeline.Result{IsAllowed: true}, nil
}
