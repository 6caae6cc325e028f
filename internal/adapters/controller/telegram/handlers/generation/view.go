package generation

import (
	"strings"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

// summary is the template argument of the generation texts.
type summary struct {
	Aspect     string
	Count      int
	Colors     string
	Background string
	Link       string
}

func newSummary(cfg *configurator.Configuration, link string) summary {
	bg, _ := cfg.Background()
	colors := cfg.Colors()
	for i := range colors {
		colors[i] = "#" + colors[i]
	}
	if bg != "" {
		bg = "#" + bg
	}

	return summary{
		Aspect:     cfg.Aspect().String(),
		Count:      cfg.ImageCount(),
		Colors:     strings.Join(colors, " "),
		Background: bg,
		Link:       link,
	}
}

// configuratorURL opens the mini-app pre-filled with cfg. ref is the summary
// message the page should replace, empty when there is none.
func configuratorURL(publicURL string, cfg *configurator.Configuration, ref string) string {
	return strings.TrimRight(publicURL, "/") + "/configurator?" + configurator.EncodeQuery(cfg, ref).Encode()
}

// parsePalette reads a palette typed by the user: up to five colors separated
// by hyphens or spaces, each as hex digits with an optional '#'. Any invalid
// token rejects the whole palette.
func parsePalette(text string) (*configurator.Configuration, bool) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == ' ' || r == ',' || r == '\n'
	})
	if len(tokens) == 0 || len(tokens) > configurator.MaxColors {
		return nil, false
	}

	cfg := configurator.New()
	for _, token := range tokens {
		hex := strings.TrimPrefix(token, "#")
		if !configurator.IsValidHex(hex) || !cfg.AddColor(hex) {
			return nil, false
		}
	}
	return cfg, true
}
