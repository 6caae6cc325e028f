package configurator

import (
	"fmt"
)

// ConfirmLabel is the caption of the host confirm control.
const ConfirmLabel = "Confirm"

// Sink renders the configuration. It never reads anything back: the
// Configuration is the only source of truth.
type Sink interface {
	RenderAspect(label string, dims Dimensions)
	RenderImageActive(count int)
	RenderColorSwatch(index int, hex string)
	RemoveColorSwatch(index int)
	RenderBackgroundSwatch(hex string, ok bool)
}

// Host is the application shell the configurator runs in.
type Host interface {
	SignalReady()
	ShowConfirmControl(label string)
	NavigateExternal(url string) error
	CloseSession()
}

// Session binds one Configuration to its renderer and host. Every event
// method applies a setter and redraws the affected part before returning.
// A Session is not safe for concurrent use.
type Session struct {
	cfg         *Configuration
	sink        Sink
	host        Host
	botUsername string
	messageID   string
}

func NewSession(cfg *Configuration, sink Sink, host Host, botUsername string) *Session {
	return &Session{
		cfg:         cfg,
		sink:        sink,
		host:        host,
		botUsername: botUsername,
	}
}

// Config returns the configuration driven by the session.
func (s *Session) Config() *Configuration {
	return s.cfg
}

// MessageID returns the message_id the session was opened with.
func (s *Session) MessageID() string {
	return s.messageID
}

// Init decodes the incoming params, draws the full state and signals the host.
func (s *Session) Init(params Params) DecodeResult {
	res := DecodeQuery(params, s.cfg)
	s.messageID = res.MessageID

	s.renderAll()
	s.host.SignalReady()
	s.host.ShowConfirmControl(ConfirmLabel)
	return res
}

func (s *Session) SetAspect(v int) {
	s.cfg.SetAspectIndex(v)
	s.renderAspect()
}

func (s *Session) SetImageCount(v int) {
	s.cfg.SetImageCount(v)
	s.sink.RenderImageActive(s.cfg.ImageCount())
}

func (s *Session) AddColor(hex string) {
	if s.cfg.AddColor(hex) {
		colors := s.cfg.Colors()
		s.sink.RenderColorSwatch(len(colors)-1, colors[len(colors)-1])
	}
}

func (s *Session) RemoveColor(index int) {
	if s.cfg.RemoveColor(index) {
		s.sink.RemoveColorSwatch(index)
	}
}

// ClearColors removes every accent color and, with includeBackground, the background too.
func (s *Session) ClearColors(includeBackground bool) {
	for i := len(s.cfg.Colors()) - 1; i >= 0; i-- {
		s.sink.RemoveColorSwatch(i)
	}
	s.cfg.ClearColors()
	if includeBackground {
		s.ClearBackground()
	}
}

func (s *Session) SetBackground(hex string) {
	if s.cfg.SetBackground(hex) {
		s.sink.RenderBackgroundSwatch(s.cfg.Background())
	}
}

func (s *Session) ClearBackground() {
	s.cfg.ClearBackground()
	s.sink.RenderBackgroundSwatch(s.cfg.Background())
}

// Confirm encodes the configuration, hands the deep link to the host and
// closes the session. It returns the encoded payload.
func (s *Session) Confirm() (string, error) {
	payload := EncodeLink(s.cfg)
	if err := s.host.NavigateExternal(DeepLinkURL(s.botUsername, payload)); err != nil {
		return payload, fmt.Errorf("navigate to bot: %w", err)
	}
	s.host.CloseSession()
	return payload, nil
}

func (s *Session) renderAll() {
	s.renderAspect()
	s.sink.RenderImageActive(s.cfg.ImageCount())
	for i, hex := range s.cfg.Colors() {
		s.sink.RenderColorSwatch(i, hex)
	}
	s.sink.RenderBackgroundSwatch(s.cfg.Background())
}

func (s *Session) renderAspect() {
	// the index is clamped by the setter, the error is unreachable
	dims, _ := PreviewDimensions(s.cfg.AspectIndex(), PreviewMaxSize)
	s.sink.RenderAspect(s.cfg.Aspect().String(), dims)
}
