package start

import (
	"strings"

	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/generation"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/menu"
	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type Handler struct {
	menuHandler       *menu.Handler
	generationHandler *generation.Handler

	layout *layout.Layout
	logger *types.Logger
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		menuHandler:       menu.New(b),
		generationHandler: generation.New(b),
		layout:            b.Layout,
		logger:            b.Logger,
	}
}

func (h *Handler) Start(c tele.Context) error {
	h.logger.Infof("(user: %d) press start button", c.Sender().ID)

	_ = c.Delete()

	payload := c.Message().Payload
	if payload == "" {
		return h.menuHandler.SendMenu(c)
	}

	payloadType, _, _ := strings.Cut(payload, "_")
	switch payloadType {
	case configurator.LinkPrefix:
		return h.generationHandler.Accept(c, payload)
	default:
		h.logger.Debugf("(user: %d) unknown start payload %q", c.Sender().ID, payload)
		return c.Send(
			h.layout.Text(c, "something_went_wrong"),
			h.layout.Markup(c, "core:hide"),
		)
	}
}
