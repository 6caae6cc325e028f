package middlewares

import (
	"context"
	"strings"

	"github.com/nlypage/intele"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/database/postgres"
	"github.com/icykcyber/genbot/internal/domain/entity"
	"github.com/icykcyber/genbot/internal/domain/service"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type userService interface {
	Register(ctx context.Context, sender *tele.User) (*entity.User, error)
}

type Handler struct {
	layout      *layout.Layout
	logger      *types.Logger
	userService userService
	input       *intele.InputManager
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout:      b.Layout,
		logger:      b.Logger,
		userService: service.NewUserService(postgres.NewUserStorage(b.DB)),
		input:       b.Input,
	}
}

// admit registers the sender and reports whether their update may go on.
func (h Handler) admit(sender *tele.User) (*entity.User, bool, error) {
	user, err := h.userService.Register(context.Background(), sender)
	if err != nil {
		return nil, false, err
	}
	return user, !user.IsBanned, nil
}

// Registered upserts the sender on every update and stops banned users.
func (h Handler) Registered(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil {
			return next(c)
		}

		user, ok, err := h.admit(c.Sender())
		if err != nil {
			h.logger.Errorf("(user: %d) error while registering user: %v", c.Sender().ID, err)
			return c.Send(
				h.layout.Text(c, "technical_issues", err.Error()),
				h.layout.Markup(c, "core:hide"),
			)
		}

		if !ok {
			h.logger.Debugf("(user: %d) banned user update ignored", c.Sender().ID)
			return c.Send(
				h.layout.TextLocale(user.Localisation, "banned"),
				h.layout.MarkupLocale(user.Localisation, "core:hide"),
			)
		}

		return next(c)
	}
}

// ResetInputOnBack middleware clears the input state when the back button is pressed.
func (h Handler) ResetInputOnBack(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Callback() != nil {
			if strings.Contains(c.Callback().Data, "back") || strings.Contains(c.Callback().Unique, "back") {
				h.input.Cancel(c.Sender().ID)
			}
		}
		if c.Message() != nil {
			if strings.HasPrefix(c.Message().Text, "/") {
				h.input.Cancel(c.Sender().ID)
			}
		}

		return next(c)
	}
}
