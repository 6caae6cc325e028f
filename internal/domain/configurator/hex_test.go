package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "six digits upper", input: "FF0000", valid: true},
		{name: "six digits lower", input: "a1b2c3", valid: true},
		{name: "three digits", input: "ABC", valid: true},
		{name: "two digits", input: "00", valid: false},
		{name: "four digits", input: "ABCD", valid: false},
		{name: "with hash", input: "#FF0000", valid: false},
		{name: "non hex", input: "zzz", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "seven digits", input: "FF00000", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidHex(tt.input))
		})
	}
}

func TestExpandHex(t *testing.T) {
	assert.Equal(t, "AABBCC", ExpandHex("ABC"))
	assert.Equal(t, "AABBCC", ExpandHex("abc"))
	assert.Equal(t, "FF0000", ExpandHex("ff0000"))
}

func TestNormalizeToHex(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		expected string
		ok       bool
	}{
		{name: "short literal", rendered: "#ABC", expected: "AABBCC", ok: true},
		{name: "long literal", rendered: "#00ff7f", expected: "00FF7F", ok: true},
		{name: "rgb triple", rendered: "rgb(255, 0, 0)", expected: "FF0000", ok: true},
		{name: "rgba uses first three channels", rendered: "rgba(1, 2, 3, 0.5)", expected: "010203", ok: true},
		{name: "channels above 255 saturate", rendered: "rgb(300, 16, 0)", expected: "FF1000", ok: true},
		{name: "transparent", rendered: "transparent", ok: false},
		{name: "empty", rendered: "", ok: false},
		{name: "too few channels", rendered: "rgb(10, 20)", ok: false},
		{name: "broken literal", rendered: "#GG0000", ok: false},
		{name: "four digit literal", rendered: "#ABCD", ok: false},
		{name: "every channel value round trips", rendered: "rgb(1, 127, 254)", expected: "017FFE", ok: true},
		{name: "short literal with digits", rendered: "#1f3", expected: "11FF33", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, ok := NormalizeToHex(tt.rendered)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, hex)
		})
	}
}
