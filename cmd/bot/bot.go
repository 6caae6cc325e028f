package bot

import (
	"github.com/nlypage/intele"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"
	"gorm.io/gorm"

	"github.com/icykcyber/genbot/internal/adapters/config"
	"github.com/icykcyber/genbot/internal/adapters/database/redis"
	"github.com/icykcyber/genbot/internal/domain/service"
	"github.com/icykcyber/genbot/pkg/logger"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type Bot struct {
	*tele.Bot
	Layout *layout.Layout
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *types.Logger
	Input  *intele.InputManager
}

func New(config *config.Config) (*Bot, error) {
	lt, err := layout.New(viper.GetString("bot.layout"))
	if err != nil {
		return nil, err
	}

	settings := lt.Settings()
	botLogger, err := logger.Named("bot")
	if err != nil {
		return nil, err
	}
	settings.OnError = func(err error, ctx tele.Context) {
		if ctx.Callback() == nil {
			botLogger.Errorf("(user: %d) | Error: %v", ctx.Sender().ID, err)
		} else {
			botLogger.Errorf("(user: %d) | unique: %s | Error: %v", ctx.Sender().ID, ctx.Callback().Unique, err)
		}
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		return nil, err
	}

	if cmds := lt.Commands(); cmds != nil {
		if err = b.SetCommands(cmds); err != nil {
			return nil, err
		}
	}

	return &Bot{
		Bot:    b,
		Layout: lt,
		DB:     config.Database,
		Redis:  config.Redis,
		Logger: botLogger,
		Input:  intele.NewInputManager(intele.InputOptions{}),
	}, nil
}

// Start attaches the log channel hook when enabled and blocks polling updates
// until Stop is called.
func (b *Bot) Start() {
	logger.Log.Info("Bot starting")

	if viper.GetBool("settings.logging.log-to-channel") {
		b.setupLogHook()
	}
	b.Bot.Start()
}

func (b *Bot) setupLogHook() {
	notifyLogger, err := logger.Named("notify")
	if err != nil {
		logger.Log.Errorf("Failed to create notify logger: %v", err)
		return
	}

	notifyService := service.NewNotifyService(b.Bot, b.Layout, notifyLogger)
	logHook, err := notifyService.LogHook(
		viper.GetInt64("settings.logging.channel-id"),
		viper.GetString("settings.logging.locale"),
		zapcore.Level(viper.GetInt("settings.logging.channel-log-level")),
	)
	if err != nil {
		logger.Log.Errorf("Failed to create notify log hook: %v", err)
		return
	}
	logger.SetLogHook(logHook)
}
