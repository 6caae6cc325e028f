package configurator

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
)

// Query parameter names understood by the configurator page.
const (
	ParamSize       = "size"
	ParamCount      = "count"
	ParamColors     = "colors"
	ParamBackground = "bgColor"
	ParamMessageID  = "message_id"
)

const colorSeparator = "-"

var leadingIntPattern = regexp.MustCompile(`^[+-]?\d+`)

// Params is a read-only set of query parameters. url.Values satisfies it.
type Params interface {
	Get(key string) string
}

// DecodeResult carries what DecodeQuery found besides the configuration itself.
type DecodeResult struct {
	// MessageID is the opaque message_id value, stored as is.
	MessageID string
	// Issues lists the fields that were skipped. They are never fatal.
	Issues []error
}

// DecodeQuery applies every recognized and well-formed field of params to cfg.
// Missing or malformed fields leave the current value untouched, so decoding
// on top of New gives defaults for everything the query does not set.
func DecodeQuery(params Params, cfg *Configuration) DecodeResult {
	var res DecodeResult

	if raw := params.Get(ParamSize); raw != "" {
		if v, err := parseInt(raw); err != nil {
			res.Issues = append(res.Issues, fmt.Errorf("%s: %w", ParamSize, err))
		} else {
			cfg.SetAspectIndex(v)
		}
	}

	if raw := params.Get(ParamCount); raw != "" {
		if v, err := parseInt(raw); err != nil {
			res.Issues = append(res.Issues, fmt.Errorf("%s: %w", ParamCount, err))
		} else {
			cfg.SetImageCount(v)
		}
	}

	if tokens := SplitColors(params.Get(ParamColors)); len(tokens) > 0 {
		cfg.ClearColors()
		for _, token := range tokens {
			if !IsValidHex(token) {
				res.Issues = append(res.Issues, fmt.Errorf("%s: %w: %q", ParamColors, errorz.ErrInvalidColorToken, token))
				continue
			}
			cfg.AddColor(token)
		}
	}

	if raw := params.Get(ParamBackground); raw != "" {
		if !cfg.SetBackground(raw) {
			res.Issues = append(res.Issues, fmt.Errorf("%s: %w: %q", ParamBackground, errorz.ErrInvalidColorToken, raw))
		}
	}

	res.MessageID = params.Get(ParamMessageID)
	return res
}

// EncodeQuery is the inverse of DecodeQuery: it returns the parameters that
// reopen the configurator in the state of cfg.
func EncodeQuery(cfg *Configuration, messageID string) url.Values {
	values := url.Values{}
	values.Set(ParamSize, strconv.Itoa(cfg.AspectIndex()))
	values.Set(ParamCount, strconv.Itoa(cfg.ImageCount()))
	if colors := cfg.Colors(); len(colors) > 0 {
		values.Set(ParamColors, strings.Join(colors, colorSeparator))
	}
	if bg, ok := cfg.Background(); ok {
		values.Set(ParamBackground, bg)
	}
	if messageID != "" {
		values.Set(ParamMessageID, messageID)
	}
	return values
}

// SplitColors splits a hyphen joined color list and drops empty tokens.
func SplitColors(joined string) []string {
	var tokens []string
	for _, token := range strings.Split(joined, colorSeparator) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// parseInt accepts any numeric text and keeps its leading integer part, so
// "3.7" reads as 3 and "1e1" as 1. Out of range numbers saturate instead of
// failing, the setters clamp them anyway. Text that is not a number, or that
// has no leading digits like ".5", is rejected.
func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if _, err := strconv.ParseFloat(raw, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", errorz.ErrMalformedNumericParam, raw)
	}

	leading := leadingIntPattern.FindString(raw)
	if leading == "" {
		return 0, fmt.Errorf("%w: %q", errorz.ErrMalformedNumericParam, raw)
	}
	v, err := strconv.ParseInt(leading, 10, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", errorz.ErrMalformedNumericParam, raw)
	}
	return int(v), nil
}
