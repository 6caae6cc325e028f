package configurator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// noColor is the token a renderer reports for an element without a fill.
const noColor = "transparent"

var (
	hexPattern     = regexp.MustCompile(`^([0-9A-Fa-f]{3}){1,2}$`)
	channelPattern = regexp.MustCompile(`\d+`)
)

// IsValidHex reports whether s is a 3 or 6 digit hex color without the leading '#'.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ExpandHex returns the 6 digit uppercase form of a valid hex token.
// Three digit tokens are expanded by doubling every digit (ABC -> AABBCC).
func ExpandHex(s string) string {
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return strings.ToUpper(s)
	}
	return token(c)
}

// NormalizeToHex converts a rendered color value back to a 6 digit hex token.
//
// Accepted inputs:
//   - "#RGB" and "#RRGGBB" literals
//   - channel triples such as "rgb(255, 0, 0)" or "rgba(0, 0, 0, 0.5)"
//
// "transparent", an empty value, a malformed literal or fewer than three
// numeric channels yield ok == false.
func NormalizeToHex(rendered string) (hex string, ok bool) {
	rendered = strings.TrimSpace(rendered)
	if rendered == "" || strings.EqualFold(rendered, noColor) {
		return "", false
	}

	if strings.HasPrefix(rendered, "#") {
		if !IsValidHex(rendered[1:]) {
			return "", false
		}
		c, err := colorful.Hex(rendered)
		if err != nil {
			return "", false
		}
		return token(c), true
	}

	channels := channelPattern.FindAllString(rendered, -1)
	if len(channels) < 3 {
		return "", false
	}

	var rgb [3]float64
	for i, ch := range channels[:3] {
		v, err := strconv.Atoi(ch)
		if err != nil || v > 255 {
			v = 255
		}
		rgb[i] = float64(v) / 255
	}
	return token(colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}), true
}

// token formats c the way colors are stored: 6 uppercase digits, no '#'.
func token(c colorful.Color) string {
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}
