package configurator

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
)

func TestDecodeQueryClampsAndSkips(t *testing.T) {
	params, err := url.ParseQuery("size=20&count=0&colors=FF0000-zzz-00&bgColor=XYZ")
	require.NoError(t, err)

	cfg := New()
	res := DecodeQuery(params, cfg)

	assert.Equal(t, 14, cfg.AspectIndex())
	assert.Equal(t, 1, cfg.ImageCount())
	assert.Equal(t, []string{"FF0000"}, cfg.Colors())
	_, ok := cfg.Background()
	assert.False(t, ok)

	assert.Empty(t, res.MessageID)
	require.Len(t, res.Issues, 3)
	for _, issue := range res.Issues {
		assert.ErrorIs(t, issue, errorz.ErrInvalidColorToken)
	}
}

func TestDecodeQueryFullState(t *testing.T) {
	params := url.Values{
		ParamSize:       {"3"},
		ParamCount:      {"2"},
		ParamColors:     {"abc--00FF00-"},
		ParamBackground: {"0000FF"},
		ParamMessageID:  {"  42 "},
	}

	cfg := New()
	res := DecodeQuery(params, cfg)

	assert.Equal(t, 3, cfg.AspectIndex())
	assert.Equal(t, 2, cfg.ImageCount())
	assert.Equal(t, []string{"AABBCC", "00FF00"}, cfg.Colors())
	bg, ok := cfg.Background()
	assert.True(t, ok)
	assert.Equal(t, "0000FF", bg)
	assert.Equal(t, "  42 ", res.MessageID)
	assert.Empty(t, res.Issues)
}

func TestDecodeQueryKeepsDefaults(t *testing.T) {
	cfg := New()
	cfg.AddColor("123456")
	cfg.SetBackground("654321")

	res := DecodeQuery(url.Values{
		ParamSize:   {"abc"},
		ParamCount:  {".5"},
		ParamColors: {"---"},
		"unknown":   {"1"},
	}, cfg)

	assert.Equal(t, DefaultAspectIndex, cfg.AspectIndex())
	assert.Equal(t, DefaultImageCount, cfg.ImageCount())
	assert.Equal(t, []string{"123456"}, cfg.Colors())
	bg, _ := cfg.Background()
	assert.Equal(t, "654321", bg)

	require.Len(t, res.Issues, 2)
	for _, issue := range res.Issues {
		assert.ErrorIs(t, issue, errorz.ErrMalformedNumericParam)
	}
}

func TestDecodeQueryReplacesDefaultColors(t *testing.T) {
	cfg := New()
	cfg.AddColor("123456")

	DecodeQuery(url.Values{ParamColors: {"zzz"}}, cfg)

	assert.Empty(t, cfg.Colors())
}

func TestDecodeQueryLimitsColors(t *testing.T) {
	cfg := New()
	DecodeQuery(url.Values{ParamColors: {"111-222-333-444-555-666"}}, cfg)

	assert.Equal(t, []string{"111111", "222222", "333333", "444444", "555555"}, cfg.Colors())
}

func TestDecodeQuerySaturatesHugeNumbers(t *testing.T) {
	cfg := New()
	res := DecodeQuery(url.Values{ParamSize: {"99999999999999"}, ParamCount: {"-99999999999999"}}, cfg)

	assert.Empty(t, res.Issues)
	assert.Equal(t, MaxAspectIndex, cfg.AspectIndex())
	assert.Equal(t, MinImageCount, cfg.ImageCount())
}

func TestEncodeQueryRoundTrip(t *testing.T) {
	cfg := New()
	cfg.SetAspectIndex(11)
	cfg.SetImageCount(4)
	cfg.AddColor("FF0000")
	cfg.AddColor("00FF00")
	cfg.SetBackground("0000FF")

	values := EncodeQuery(cfg, "77")
	assert.Equal(t, "11", values.Get(ParamSize))
	assert.Equal(t, "4", values.Get(ParamCount))
	assert.Equal(t, "FF0000-00FF00", values.Get(ParamColors))
	assert.Equal(t, "0000FF", values.Get(ParamBackground))
	assert.Equal(t, "77", values.Get(ParamMessageID))

	decoded := New()
	res := DecodeQuery(values, decoded)
	assert.Equal(t, cfg, decoded)
	assert.Equal(t, "77", res.MessageID)
}

func TestEncodeQueryOmitsEmptyFields(t *testing.T) {
	values := EncodeQuery(New(), "")

	assert.False(t, values.Has(ParamColors))
	assert.False(t, values.Has(ParamBackground))
	assert.False(t, values.Has(ParamMessageID))
}

func TestSplitColors(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitColors("-a--b-"))
	assert.Nil(t, SplitColors(""))
}

func TestDecodeQueryTruncatesNumbers(t *testing.T) {
	tests := []struct {
		name   string
		size   string
		count  string
		aspect int
		images int
	}{
		{name: "decimals", size: "3.7", count: "2.5", aspect: 3, images: 2},
		{name: "exponent keeps leading digits", size: "1e1", count: "3e0", aspect: 1, images: 3},
		{name: "negative decimal clamps", size: "-2.5", count: "-0.1", aspect: MinAspectIndex, images: MinImageCount},
		{name: "huge number saturates", size: "99999999999", count: "4.9", aspect: MaxAspectIndex, images: 4},
		{name: "padded", size: " 12 ", count: "+2", aspect: 12, images: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			res := DecodeQuery(url.Values{ParamSize: {tt.size}, ParamCount: {tt.count}}, cfg)

			assert.Empty(t, res.Issues)
			assert.Equal(t, tt.aspect, cfg.AspectIndex())
			assert.Equal(t, tt.images, cfg.ImageCount())
		})
	}
}

func TestDecodeQueryRejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{"abc", "3px", ".5", "Infinity"} {
		t.Run(raw, func(t *testing.T) {
			cfg := New()
			res := DecodeQuery(url.Values{ParamSize: {raw}}, cfg)

			assert.Equal(t, DefaultAspectIndex, cfg.AspectIndex())
			require.Len(t, res.Issues, 1)
			assert.ErrorIs(t, res.Issues[0], errorz.ErrMalformedNumericParam)
		})
	}
}
