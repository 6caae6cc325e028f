package generation

import (
	"context"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/internal/domain/utils"
)

// Palette asks for a list of colors and opens the configurator with them.
func (h Handler) Palette(c tele.Context) error {
	h.logger.Infof("(user: %d) palette input", c.Sender().ID)

	inputCollector := collector.New()
	_ = inputCollector.Send(c,
		h.layout.Text(c, "palette_request"),
		h.layout.Markup(c, "generation:cancel"),
	)

	var cfg *configurator.Configuration
	for cfg == nil {
		message, canceled, err := h.input.Get(context.Background(), c.Sender().ID, 0)
		if message != nil {
			inputCollector.Collect(message)
		}
		switch {
		case canceled:
			_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true, ExcludeLast: true})
			return nil
		case err != nil:
			h.logger.Errorf("(user: %d) error while input palette: %v", c.Sender().ID, err)
			_ = inputCollector.Send(c,
				h.layout.Text(c, "input_error", h.layout.Text(c, "palette_request")),
				h.layout.Markup(c, "generation:cancel"),
			)
		default:
			parsed, ok := parsePalette(utils.GetMessageText(message))
			if !ok {
				_ = inputCollector.Send(c,
					h.layout.Text(c, "invalid_palette"),
					h.layout.Markup(c, "generation:cancel"),
				)
				continue
			}
			cfg = parsed
		}
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	h.logger.Infof("(user: %d) palette accepted (colors=%v)", c.Sender().ID, cfg.Colors())
	return h.sendConfigurator(c, "palette_text", cfg)
}

// Cancel stops a pending input and removes the prompt.
func (h Handler) Cancel(c tele.Context) error {
	h.input.Cancel(c.Sender().ID)
	return c.Delete()
}
