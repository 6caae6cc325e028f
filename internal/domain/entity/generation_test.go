package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

func TestGenerationRequestRoundTrip(t *testing.T) {
	cfg, err := configurator.ParseLink("gen_3_2_FF0000-00FF00_0000FF")
	require.NoError(t, err)

	req := NewGenerationRequest("3f1c", 42, cfg)
	assert.Equal(t, "gen_3_2_FF0000-00FF00_0000FF", req.Payload)
	assert.Equal(t, []string{"FF0000", "00FF00"}, []string(req.Colors))
	assert.Equal(t, "0000FF", req.BackgroundColor)

	assert.Equal(t, cfg, req.Configuration())
	assert.Equal(t, "https://t.me/icykcyber_bot?start=gen_3_2_FF0000-00FF00_0000FF", req.Link("icykcyber_bot"))
}

func TestGenerationRequestConfigurationClampsStoredValues(t *testing.T) {
	req := GenerationRequest{
		AspectIndex:     40,
		ImageCount:      0,
		Colors:          []string{"bad", "123"},
		BackgroundColor: "nope",
	}

	cfg := req.Configuration()
	assert.Equal(t, configurator.MaxAspectIndex, cfg.AspectIndex())
	assert.Equal(t, configurator.MinImageCount, cfg.ImageCount())
	assert.Equal(t, []string{"112233"}, cfg.Colors())
	_, ok := cfg.Background()
	assert.False(t, ok)
}
