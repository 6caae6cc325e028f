package generation

import (
	"bytes"
	"context"
	"errors"

	"github.com/nlypage/intele"
	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"
	"gorm.io/gorm"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/database/postgres"
	"github.com/icykcyber/genbot/internal/adapters/database/redis/sessions"
	"github.com/icykcyber/genbot/internal/domain/common/errorz"
	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/internal/domain/entity"
	"github.com/icykcyber/genbot/internal/domain/service"
	"github.com/icykcyber/genbot/pkg/logger/types"
	qr "github.com/icykcyber/genbot/pkg/qrcode"
)

const historyPageSize = 5

type generationService interface {
	Accept(ctx context.Context, userID int64, payload string) (*entity.GenerationRequest, error)
	Last(ctx context.Context, userID int64) (*entity.GenerationRequest, error)
	History(ctx context.Context, userID int64, limit, offset int) ([]entity.GenerationRequest, error)
	Count(ctx context.Context, userID int64) (int64, error)
}

type previewService interface {
	Render(cfg *configurator.Configuration) ([]byte, error)
}

type shareService interface {
	Prepare(ctx context.Context, payload string) (string, error)
	QR(ctx context.Context, callbackID string) (link string, image []byte, err error)
}

type Handler struct {
	generationService generationService
	previewService    previewService
	shareService      shareService
	sessions          *sessions.Storage

	layout    *layout.Layout
	logger    *types.Logger
	input     *intele.InputManager
	botName   string
	publicURL string
}

func New(b *bot.Bot) *Handler {
	botName := viper.GetString("bot.username")

	qrConfig := qr.Default
	qrConfig.LogoPath = viper.GetString("settings.qr.logo-path")

	return &Handler{
		generationService: service.NewGenerationService(postgres.NewGenerationStorage(b.DB)),
		previewService:    service.NewPreviewService(),
		shareService:      service.NewShareService(b.Redis.Callbacks, qrConfig, botName, viper.GetDuration("bot.share-ttl")),
		sessions:          b.Redis.Sessions,
		layout:            b.Layout,
		logger:            b.Logger,
		input:             b.Input,
		botName:           botName,
		publicURL:         viper.GetString("web.public-url"),
	}
}

// Accept handles a confirmed configurator payload arriving through /start.
func (h Handler) Accept(c tele.Context, payload string) error {
	h.logger.Infof("(user: %d) received generation payload %q", c.Sender().ID, payload)

	request, err := h.generationService.Accept(context.Background(), c.Sender().ID, payload)
	if err != nil {
		if errors.Is(err, errorz.ErrInvalidPayload) {
			h.logger.Debugf("(user: %d) invalid generation payload: %v", c.Sender().ID, err)
			return c.Send(
				h.layout.Text(c, "invalid_generation_link"),
				h.layout.Markup(c, "core:hide"),
			)
		}
		h.logger.Errorf("(user: %d) error while saving generation request: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.replacePrevious(c, payload)

	return h.sendSummary(c, request.Configuration(), request.Payload)
}

// replacePrevious deletes the summary the configurator was opened from, if
// the web page left a reference to it.
func (h Handler) replacePrevious(c tele.Context, payload string) {
	raw, err := h.sessions.Get(context.Background(), payload)
	if err != nil {
		h.logger.Errorf("(user: %d) error while getting configurator session: %v", c.Sender().ID, err)
		return
	}
	if raw == "" {
		return
	}
	h.sessions.Clear(context.Background(), payload)

	ref, ok := parseMessageRef(raw)
	if !ok || ref.ChatID != c.Chat().ID {
		h.logger.Debugf("(user: %d) ignore foreign message reference %q", c.Sender().ID, raw)
		return
	}
	if err = c.Bot().Delete(ref.Stored()); err != nil {
		h.logger.Debugf("(user: %d) error while deleting previous summary: %v", c.Sender().ID, err)
	}
}

func (h Handler) sendSummary(c tele.Context, cfg *configurator.Configuration, payload string) error {
	preview, err := h.previewService.Render(cfg)
	if err != nil {
		h.logger.Errorf("(user: %d) error while rendering preview: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	shareID, err := h.shareService.Prepare(context.Background(), payload)
	if err != nil {
		h.logger.Errorf("(user: %d) error while preparing share callback: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	msg, err := c.Bot().Send(c.Recipient(), &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(preview)),
		Caption: h.layout.Text(c, "generation_summary", newSummary(cfg, configurator.DeepLinkURL(h.botName, payload))),
	})
	if err != nil {
		return err
	}

	// The edit button needs the id of the message it is attached to.
	_, err = c.Bot().EditReplyMarkup(msg, h.summaryMarkup(c, cfg, newMessageRef(msg), shareID))
	return err
}

func (h Handler) summaryMarkup(c tele.Context, cfg *configurator.Configuration, ref messageRef, shareID string) *tele.ReplyMarkup {
	markup := c.Bot().NewMarkup()
	markup.Inline(
		markup.Row(
			markup.WebApp(h.layout.Text(c, "edit_button"), &tele.WebApp{URL: configuratorURL(h.publicURL, cfg, ref.String())}),
			*h.layout.Button(c, "generation:share", struct {
				ID string
			}{
				ID: shareID,
			}),
		),
		markup.Row(*h.layout.Button(c, "core:hide")),
	)
	return markup
}

// Configure reopens the configurator with the last request of the user, or
// with the defaults for newcomers.
func (h Handler) Configure(c tele.Context) error {
	cfg := configurator.New()

	request, err := h.generationService.Last(context.Background(), c.Sender().ID)
	switch {
	case err == nil:
		cfg = request.Configuration()
	case !errors.Is(err, gorm.ErrRecordNotFound):
		h.logger.Errorf("(user: %d) error while getting last generation request: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.logger.Infof("(user: %d) open configurator (payload=%s)", c.Sender().ID, configurator.EncodeLink(cfg))
	return h.sendConfigurator(c, "configure_text", cfg)
}

func (h Handler) sendConfigurator(c tele.Context, textKey string, cfg *configurator.Configuration) error {
	markup := c.Bot().NewMarkup()
	markup.Inline(
		markup.Row(markup.WebApp(h.layout.Text(c, "open_configurator_button"), &tele.WebApp{URL: configuratorURL(h.publicURL, cfg, "")})),
		markup.Row(*h.layout.Button(c, "core:hide")),
	)
	return c.Send(
		h.layout.Text(c, textKey, newSummary(cfg, configurator.DeepLinkURL(h.botName, configurator.EncodeLink(cfg)))),
		markup,
	)
}

// Share replies with a QR code of the deep link behind a share button.
func (h Handler) Share(c tele.Context) error {
	link, image, err := h.shareService.QR(context.Background(), c.Callback().Data)
	if err != nil {
		h.logger.Errorf("(user: %d) error while generating share qr: %v", c.Sender().ID, err)
		return c.Respond(&tele.CallbackResponse{
			Text:      h.layout.Text(c, "share_expired"),
			ShowAlert: true,
		})
	}

	h.logger.Infof("(user: %d) share generation link %s", c.Sender().ID, link)
	return c.Send(
		&tele.Photo{
			File:    tele.FromReader(bytes.NewReader(image)),
			Caption: h.layout.Text(c, "share_text", link),
		},
		h.layout.Markup(c, "core:hide"),
	)
}

// History lists the latest requests of the user.
func (h Handler) History(c tele.Context) error {
	count, err := h.generationService.Count(context.Background(), c.Sender().ID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while counting generation requests: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}
	if count == 0 {
		return c.Send(
			h.layout.Text(c, "history_empty"),
			h.layout.Markup(c, "core:hide"),
		)
	}

	requests, err := h.generationService.History(context.Background(), c.Sender().ID, historyPageSize, 0)
	if err != nil {
		h.logger.Errorf("(user: %d) error while getting generation history: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	items := make([]summary, 0, len(requests))
	for i := range requests {
		items = append(items, newSummary(requests[i].Configuration(), requests[i].Link(h.botName)))
	}

	h.logger.Infof("(user: %d) generation history (count=%d)", c.Sender().ID, count)
	return c.Send(
		h.layout.Text(c, "history_text", struct {
			Total    int64
			Requests []summary
		}{
			Total:    count,
			Requests: items,
		}),
		h.layout.Markup(c, "generation:history"),
		tele.NoPreview,
	)
}

func (h Handler) Setup(group *tele.Group) {
	group.Handle("/configure", h.Configure)
	group.Handle("/palette", h.Palette)
	group.Handle("/history", h.History)
	group.Handle(h.layout.Callback("generation:share"), h.Share)
	group.Handle(h.layout.Callback("generation:cancel"), h.Cancel)
}
