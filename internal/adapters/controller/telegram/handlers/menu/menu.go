package menu

import (
	"strings"

	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/domain/utils"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type Handler struct {
	layout    *layout.Layout
	logger    *types.Logger
	publicURL string
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		logger:    b.Logger,
		layout:    b.Layout,
		publicURL: strings.TrimRight(viper.GetString("web.public-url"), "/"),
	}
}

func (h Handler) markup(c tele.Context) *tele.ReplyMarkup {
	menuMarkup := c.Bot().NewMarkup()
	menuMarkup.Inline(
		menuMarkup.Row(menuMarkup.WebApp(h.layout.Text(c, "open_configurator_button"), &tele.WebApp{URL: h.publicURL + "/configurator"})),
		menuMarkup.Row(
			*h.layout.Button(c, "mainMenu:palette"),
			*h.layout.Button(c, "mainMenu:history"),
		),
	)
	if utils.IsAdmin(c.Sender().ID) {
		menuMarkup.InlineKeyboard = append(menuMarkup.InlineKeyboard, []tele.InlineButton{*h.layout.Button(c, "mainMenu:stats").Inline()})
	}
	return menuMarkup
}

func (h Handler) SendMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) send main menu (isAdmin=%t)", c.Sender().ID, utils.IsAdmin(c.Sender().ID))
	return c.Send(
		h.layout.Text(c, "main_menu_text", c.Sender().FirstName),
		h.markup(c),
	)
}

func (h Handler) EditMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) edit main menu", c.Sender().ID)
	return c.Edit(
		h.layout.Text(c, "main_menu_text", c.Sender().FirstName),
		h.markup(c),
	)
}
