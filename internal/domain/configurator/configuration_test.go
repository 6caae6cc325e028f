package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultAspectIndex, cfg.AspectIndex())
	assert.Equal(t, "1:1", cfg.Aspect().String())
	assert.Equal(t, 1, cfg.ImageCount())
	assert.Empty(t, cfg.Colors())
	_, ok := cfg.Background()
	assert.False(t, ok)
}

func TestSetAspectIndexClamps(t *testing.T) {
	cfg := New()
	for _, v := range []int{-100, -1, 0, 3, 14, 15, 1 << 30} {
		cfg.SetAspectIndex(v)
		assert.Equal(t, clamp(v, 0, 14), cfg.AspectIndex(), "value %d", v)
	}
}

func TestSetImageCountClamps(t *testing.T) {
	cfg := New()

	cfg.SetImageCount(0)
	assert.Equal(t, 1, cfg.ImageCount())

	cfg.SetImageCount(3)
	assert.Equal(t, 3, cfg.ImageCount())

	cfg.SetImageCount(3)
	assert.Equal(t, 3, cfg.ImageCount())

	cfg.SetImageCount(9)
	assert.Equal(t, 4, cfg.ImageCount())
}

func TestAddColorKeepsFirstFive(t *testing.T) {
	cfg := New()
	input := []string{"111111", "nope", "222222", "333", "444444", "555555", "666666", "777777"}

	for _, hex := range input {
		cfg.AddColor(hex)
	}

	assert.Equal(t, []string{"111111", "222222", "333333", "444444", "555555"}, cfg.Colors())
	assert.False(t, cfg.AddColor("888888"))
	assert.Len(t, cfg.Colors(), MaxColors)
}

func TestRemoveColor(t *testing.T) {
	cfg := New()
	cfg.AddColor("FF0000")
	cfg.AddColor("00FF00")
	cfg.AddColor("0000FF")

	assert.True(t, cfg.RemoveColor(1))
	assert.Equal(t, []string{"FF0000", "0000FF"}, cfg.Colors())

	assert.False(t, cfg.RemoveColor(5))
	assert.False(t, cfg.RemoveColor(-1))
	assert.Equal(t, []string{"FF0000", "0000FF"}, cfg.Colors())

	cfg.ClearColors()
	assert.Empty(t, cfg.Colors())
}

func TestBackground(t *testing.T) {
	cfg := New()

	assert.False(t, cfg.SetBackground("XYZ"))
	_, ok := cfg.Background()
	assert.False(t, ok)

	assert.True(t, cfg.SetBackground("0af"))
	bg, ok := cfg.Background()
	assert.True(t, ok)
	assert.Equal(t, "00AAFF", bg)

	assert.False(t, cfg.SetBackground("#123456"))
	bg, _ = cfg.Background()
	assert.Equal(t, "00AAFF", bg)

	cfg.ClearBackground()
	_, ok = cfg.Background()
	assert.False(t, ok)
}

func TestColorsReturnsCopy(t *testing.T) {
	cfg := New()
	cfg.AddColor("FF0000")

	colors := cfg.Colors()
	colors[0] = "000000"

	assert.Equal(t, []string{"FF0000"}, cfg.Colors())
}

func TestClone(t *testing.T) {
	cfg := New()
	cfg.AddColor("FF0000")
	cfg.SetBackground("00FF00")

	clone := cfg.Clone()
	clone.AddColor("0000FF")
	clone.SetImageCount(4)

	assert.Equal(t, []string{"FF0000"}, cfg.Colors())
	assert.Equal(t, 1, cfg.ImageCount())
	assert.Equal(t, []string{"FF0000", "0000FF"}, clone.Colors())
}
