package setup

import (
	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/admin"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/generation"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/menu"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/middlewares"
	"github.com/icykcyber/genbot/internal/adapters/controller/telegram/handlers/start"
)

func Setup(b *bot.Bot) {
	// Pre-setup and global middlewares
	middle := middlewares.New(b)
	startHandler := start.New(b)
	menuHandler := menu.New(b)
	generationHandler := generation.New(b)
	adminHandler := admin.New(b)

	if viper.GetBool("settings.debug") {
		b.Use(middleware.Logger())
	}
	b.Use(b.Layout.Middleware("en"))
	b.Use(middleware.AutoRespond())
	b.Use(middle.Registered)
	b.Handle(tele.OnText, b.Input.Handler())
	b.Handle(tele.OnMedia, b.Input.Handler())
	b.Use(middle.ResetInputOnBack)

	// Setup handlers
	//User:
	b.Handle("/start", startHandler.Start)
	b.Handle(b.Layout.Callback("core:hide"), func(c tele.Context) error {
		return c.Delete()
	})
	b.Handle(b.Layout.Callback("mainMenu:back"), menuHandler.EditMenu)
	b.Handle(b.Layout.Callback("mainMenu:palette"), generationHandler.Palette)
	b.Handle(b.Layout.Callback("mainMenu:history"), generationHandler.History)
	generationHandler.Setup(b.Group())

	//Admin:
	admins := viper.GetIntSlice("bot.admin-ids")
	adminsInt64 := make([]int64, len(admins))
	for i, v := range admins {
		adminsInt64[i] = int64(v)
	}
	adminGroup := b.Group()
	adminGroup.Use(middleware.Whitelist(adminsInt64...))
	adminHandler.AdminSetup(adminGroup)
}
