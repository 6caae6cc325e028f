package configurator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
)

const (
	// LinkPrefix opens every generation payload.
	LinkPrefix = "gen"

	linkSeparator = "_"
	linkFields    = 5

	// blackBackground is written as an empty background field, the same as no background.
	blackBackground = "000000"
)

// EncodeLink serializes cfg into the deep link payload
//
//	gen_<aspect index>_<image count>_<colors joined by '-'>_<background>
//
// An empty color list or a missing (or black) background leaves its field empty.
func EncodeLink(cfg *Configuration) string {
	bg, ok := cfg.Background()
	if !ok || bg == blackBackground {
		bg = ""
	}

	return strings.Join([]string{
		LinkPrefix,
		strconv.Itoa(cfg.AspectIndex()),
		strconv.Itoa(cfg.ImageCount()),
		strings.Join(cfg.Colors(), colorSeparator),
		bg,
	}, linkSeparator)
}

// ParseLink is the strict inverse of EncodeLink used on the receiving side.
func ParseLink(payload string) (*Configuration, error) {
	fields := strings.Split(payload, linkSeparator)
	if len(fields) != linkFields || fields[0] != LinkPrefix {
		return nil, fmt.Errorf("%w: %q", errorz.ErrInvalidPayload, payload)
	}

	cfg := New()

	aspect, err := strconv.Atoi(fields[1])
	if err != nil || aspect < MinAspectIndex || aspect > MaxAspectIndex {
		return nil, fmt.Errorf("%w: aspect %q", errorz.ErrInvalidPayload, fields[1])
	}
	cfg.SetAspectIndex(aspect)

	count, err := strconv.Atoi(fields[2])
	if err != nil || count < MinImageCount || count > MaxImageCount {
		return nil, fmt.Errorf("%w: count %q", errorz.ErrInvalidPayload, fields[2])
	}
	cfg.SetImageCount(count)

	if fields[3] != "" {
		tokens := strings.Split(fields[3], colorSeparator)
		if len(tokens) > MaxColors {
			return nil, fmt.Errorf("%w: %d colors", errorz.ErrInvalidPayload, len(tokens))
		}
		for _, token := range tokens {
			if !cfg.AddColor(token) {
				return nil, fmt.Errorf("%w: %w: %q", errorz.ErrInvalidPayload, errorz.ErrInvalidColorToken, token)
			}
		}
	}

	if fields[4] != "" && !cfg.SetBackground(fields[4]) {
		return nil, fmt.Errorf("%w: %w: %q", errorz.ErrInvalidPayload, errorz.ErrInvalidColorToken, fields[4])
	}

	return cfg, nil
}

// DeepLinkURL builds the link that starts botUsername with payload.
func DeepLinkURL(botUsername, payload string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, url.QueryEscape(payload))
}
