package callbacks

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bienps24/OmniGateBot/internal/gateway"
	"github.com/bienps24/OmniGateBot/internal/service"
)

// CallbackHandler serves the inline-keyboard control surface: the private
// admin menu and the in-chat verification button.
type CallbackHandler struct {
	logger *slog.Logger
	svc    service.Service
	gw     gateway.Gateway
	tracer trace.Tracer
}

func NewCallbackHandler(logger *slog.Logger, svc service.Service, gw gateway.Gateway, tracer trace.Tracer) *CallbackHandler {
	return &CallbackHandler{
		logger: logger,
		svc:    svc,
		gw:     gw,
		tracer: tracer,
	}
}

func (c *CallbackHandler) Handle(ctx context.Context, query *models.CallbackQuery) {
	ctx, span := c.tracer.Start(ctx, "HandleCallback")
	defer span.End()
	span.SetAttributes(attribute.String("callback_data", query.Data))

	action, err := Parse(query.Data)
	if err != nil {
		c.logger.Warn("Dropping unparseable callback", "data", query.Data, "error", err)
		c.answer(ctx, query.ID, "")
		return
	}

	switch action.Kind {
	case KindMainMenu, KindChatList:
		c.answer(ctx, query.ID, "")
		c.showMainMenu(ctx, query)
	case KindManage:
		c.answer(ctx, query.ID, "")
		c.showManage(ctx, query, action.ChatID)
	case KindToggle:
		c.handleToggle(ctx, query, action)
	case KindStats:
		c.answer(ctx, query.ID, "")
		c.showStats(ctx, query, action.ChatID)
	case KindVerify:
		c.handleVerify(ctx, query, action)
	}
}

func (c *CallbackHandler) answer(ctx context.Context, callbackID, text string) {
	if err := c.gw.AnswerCallback(ctx, callbackID, text); err != nil {
		c.logger.Warn("Failed to answer callback", "error", err)
	}
}

// queryMessage returns the message the pressed keyboard is attached to, or
// nil when the platform reports it as inaccessible.
func queryMessage(query *models.CallbackQuery) *models.Message {
	return query.Message.Message
}
