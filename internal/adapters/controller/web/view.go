package web

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

// page is the template model of the configurator. It renders the session
// (configurator.Sink) and plays the host shell (configurator.Host).
type page struct {
	AspectLabel string
	BoxWidth    float64
	BoxHeight   float64
	Tiles       []bool

	Swatches      []string
	Background    string
	HasBackground bool

	Ready        bool
	ConfirmLabel string

	State      url.Values
	StateQuery string

	// Redirect and Closed are set by Confirm and drive the confirm page.
	Redirect string
	Closed   bool
}

func newPage() *page {
	return &page{
		Tiles: make([]bool, configurator.MaxImageCount),
	}
}

func (p *page) RenderAspect(label string, dims configurator.Dimensions) {
	p.AspectLabel = label
	p.BoxWidth = dims.Width
	p.BoxHeight = dims.Height
}

func (p *page) RenderImageActive(count int) {
	for i := range p.Tiles {
		p.Tiles[i] = i < count
	}
}

func (p *page) RenderColorSwatch(index int, hex string) {
	if index >= len(p.Swatches) {
		p.Swatches = append(p.Swatches, hex)
		return
	}
	p.Swatches[index] = hex
}

func (p *page) RemoveColorSwatch(index int) {
	if index < 0 || index >= len(p.Swatches) {
		return
	}
	p.Swatches = append(p.Swatches[:index], p.Swatches[index+1:]...)
}

func (p *page) RenderBackgroundSwatch(hex string, ok bool) {
	p.Background = hex
	p.HasBackground = ok
}

func (p *page) SignalReady() {
	p.Ready = true
}

func (p *page) ShowConfirmControl(label string) {
	p.ConfirmLabel = label
}

func (p *page) NavigateExternal(url string) error {
	p.Redirect = url
	return nil
}

func (p *page) CloseSession() {
	p.Closed = true
}

// CanAddColor hides the add button once the color list is full.
func (p *page) CanAddColor() bool {
	return len(p.Swatches) < configurator.MaxColors
}

func (p *page) setState(session *configurator.Session) {
	p.State = configurator.EncodeQuery(session.Config(), session.MessageID())
	p.StateQuery = p.State.Encode()
}

// ActionURL links to the configurator in the current state with one action applied.
func (p *page) ActionURL(action string, value any) template.URL {
	return template.URL(fmt.Sprintf("/configurator?%s&%s=%s", p.StateQuery, action, url.QueryEscape(fmt.Sprint(value))))
}
