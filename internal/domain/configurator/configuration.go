package configurator

const (
	MinImageCount     = 1
	MaxImageCount     = 4
	DefaultImageCount = 1
	// MaxColors bounds the accent color list.
	MaxColors = 5
)

// Configuration is the image generation request being tuned by the user.
//
// The zero value is not ready for use, create one with New. Setters never fail:
// numeric input is clamped and invalid colors are ignored.
type Configuration struct {
	aspectIndex int
	imageCount  int
	colors      []string
	background  string
}

// New returns a configuration with the default slider positions, no colors and no background.
func New() *Configuration {
	return &Configuration{
		aspectIndex: DefaultAspectIndex,
		imageCount:  DefaultImageCount,
	}
}

func (c *Configuration) AspectIndex() int {
	return c.aspectIndex
}

// Aspect returns the ratio the aspect index points at.
func (c *Configuration) Aspect() AspectRatio {
	return aspectRatios[c.aspectIndex]
}

func (c *Configuration) ImageCount() int {
	return c.imageCount
}

// Colors returns a copy of the accent colors in insertion order.
func (c *Configuration) Colors() []string {
	out := make([]string, len(c.colors))
	copy(out, c.colors)
	return out
}

// Background returns the background color, ok is false when none is set.
func (c *Configuration) Background() (hex string, ok bool) {
	return c.background, c.background != ""
}

func (c *Configuration) SetAspectIndex(v int) {
	c.aspectIndex = ClampAspectIndex(v)
}

func (c *Configuration) SetImageCount(v int) {
	c.imageCount = clamp(v, MinImageCount, MaxImageCount)
}

// AddColor appends hex to the accent colors. It reports false and changes
// nothing when the list is full or hex is not a valid token.
func (c *Configuration) AddColor(hex string) bool {
	if len(c.colors) >= MaxColors || !IsValidHex(hex) {
		return false
	}
	c.colors = append(c.colors, ExpandHex(hex))
	return true
}

// RemoveColor deletes the color at index, keeping the order of the rest.
func (c *Configuration) RemoveColor(index int) bool {
	if index < 0 || index >= len(c.colors) {
		return false
	}
	c.colors = append(c.colors[:index], c.colors[index+1:]...)
	return true
}

func (c *Configuration) ClearColors() {
	c.colors = nil
}

// SetBackground replaces the background color, invalid tokens are ignored.
func (c *Configuration) SetBackground(hex string) bool {
	if !IsValidHex(hex) {
		return false
	}
	c.background = ExpandHex(hex)
	return true
}

func (c *Configuration) ClearBackground() {
	c.background = ""
}

// Clone returns an independent copy.
func (c *Configuration) Clone() *Configuration {
	clone := *c
	clone.colors = c.Colors()
	return &clone
}
