package admin

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"
	"gorm.io/gorm"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/database/postgres"
	"github.com/icykcyber/genbot/internal/domain/common/errorz"
	"github.com/icykcyber/genbot/internal/domain/entity"
	"github.com/icykcyber/genbot/internal/domain/service"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type userService interface {
	Ban(ctx context.Context, adminID, userID int64) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	layout      *layout.Layout
	logger      *types.Logger
	userService userService
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout:      b.Layout,
		logger:      b.Logger,
		userService: service.NewUserService(postgres.NewUserStorage(b.DB)),
	}
}

func (h Handler) stats(c tele.Context) error {
	usersCount, err := h.userService.Count(context.Background())
	if err != nil {
		h.logger.Errorf("(user: %d) error while counting users: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.logger.Infof("(user: %d) stats requested (users=%d)", c.Sender().ID, usersCount)
	return c.Send(
		h.layout.Text(c, "stats_text", struct {
			Users int64
		}{
			Users: usersCount,
		}),
		h.layout.Markup(c, "core:hide"),
	)
}

// parseBanTarget reads the user id argument of /ban.
func parseBanTarget(m *tele.Message) (int64, bool) {
	if m == nil {
		return 0, false
	}
	userID, err := strconv.ParseInt(strings.TrimSpace(m.Payload), 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// banResultText picks the reply to a ban attempt.
func banResultText(user *entity.User, err error) string {
	switch {
	case errors.Is(err, errorz.ErrSelfBan):
		return "attempt_to_ban_self"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "user_not_found"
	case err != nil:
		return "technical_issues"
	case user.IsBanned:
		return "user_banned"
	default:
		return "user_unbanned"
	}
}

func (h Handler) banUser(c tele.Context) error {
	_ = c.Delete()
	userID, ok := parseBanTarget(c.Message())
	if !ok {
		return c.Send(
			h.layout.Text(c, "invalid_ban_data"),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.logger.Infof("(user: %d) attempt ban user: %d", c.Sender().ID, userID)
	user, err := h.userService.Ban(context.Background(), c.Sender().ID, userID)
	textKey := banResultText(user, err)
	switch textKey {
	case "technical_issues":
		h.logger.Errorf("(user: %d) error while ban user: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, textKey, err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	case "user_not_found":
		return c.Send(
			h.layout.Text(c, textKey, struct {
				ID int64
			}{
				ID: userID,
			}),
			h.layout.Markup(c, "core:hide"),
		)
	case "attempt_to_ban_self":
		return c.Send(
			h.layout.Text(c, textKey),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.logger.Infof("(user: %d) %s: %d", c.Sender().ID, textKey, userID)
	return c.Send(
		h.layout.Text(c, textKey, user),
		h.layout.Markup(c, "core:hide"),
	)
}

func (h Handler) AdminSetup(group *tele.Group) {
	group.Handle("/stats", h.stats)
	group.Handle(h.layout.Callback("mainMenu:stats"), h.stats)
	group.Handle("/ban", h.banUser)
}
