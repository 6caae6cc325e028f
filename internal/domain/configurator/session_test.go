package configurator

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	aspectLabel string
	aspectDims  Dimensions
	active      int
	swatches    []string
	background  string
	hasBg       bool
}

func (r *recordingSink) RenderAspect(label string, dims Dimensions) {
	r.aspectLabel = label
	r.aspectDims = dims
}

func (r *recordingSink) RenderImageActive(count int) {
	r.active = count
}

func (r *recordingSink) RenderColorSwatch(index int, hex string) {
	r.swatches = append(r.swatches[:index], hex)
}

func (r *recordingSink) RemoveColorSwatch(index int) {
	r.swatches = append(r.swatches[:index], r.swatches[index+1:]...)
}

func (r *recordingSink) RenderBackgroundSwatch(hex string, ok bool) {
	r.background = hex
	r.hasBg = ok
}

type recordingHost struct {
	ready        bool
	confirmLabel string
	navigated    []string
	closed       bool
	navigateErr  error
}

func (h *recordingHost) SignalReady() {
	h.ready = true
}

func (h *recordingHost) ShowConfirmControl(label string) {
	h.confirmLabel = label
}

func (h *recordingHost) NavigateExternal(url string) error {
	if h.navigateErr != nil {
		return h.navigateErr
	}
	h.navigated = append(h.navigated, url)
	return nil
}

func (h *recordingHost) CloseSession() {
	h.closed = true
}

func TestSessionInitRendersDecodedState(t *testing.T) {
	sink := &recordingSink{}
	host := &recordingHost{}
	session := NewSession(New(), sink, host, "icykcyber_bot")

	params, err := url.ParseQuery("size=1&count=2&colors=FF0000-00FF00&bgColor=fff&message_id=99")
	require.NoError(t, err)
	res := session.Init(params)

	assert.Empty(t, res.Issues)
	assert.Equal(t, "99", session.MessageID())
	assert.Equal(t, "16:9", sink.aspectLabel)
	assert.InDelta(t, 30, sink.aspectDims.Width, 1e-9)
	assert.Equal(t, 2, sink.active)
	assert.Equal(t, []string{"FF0000", "00FF00"}, sink.swatches)
	assert.True(t, sink.hasBg)
	assert.Equal(t, "FFFFFF", sink.background)
	assert.True(t, host.ready)
	assert.Equal(t, ConfirmLabel, host.confirmLabel)
}

func TestSessionEventsKeepSinkInSync(t *testing.T) {
	sink := &recordingSink{}
	session := NewSession(New(), sink, &recordingHost{}, "bot")
	session.Init(url.Values{})

	session.SetAspect(-3)
	assert.Equal(t, "2:1", sink.aspectLabel)

	session.SetImageCount(10)
	assert.Equal(t, 4, sink.active)

	for _, hex := range []string{"111111", "222222", "bad", "333333", "444444", "555555", "666666"} {
		session.AddColor(hex)
	}
	assert.Equal(t, session.Config().Colors(), sink.swatches)
	assert.Len(t, sink.swatches, MaxColors)

	session.RemoveColor(0)
	assert.Equal(t, []string{"222222", "333333", "444444", "555555"}, sink.swatches)

	session.SetBackground("0F0")
	assert.Equal(t, "00FF00", sink.background)

	session.ClearColors(true)
	assert.Empty(t, sink.swatches)
	assert.Empty(t, session.Config().Colors())
	assert.False(t, sink.hasBg)
}

func TestSessionConfirm(t *testing.T) {
	host := &recordingHost{}
	session := NewSession(New(), &recordingSink{}, host, "icykcyber_bot")
	session.Init(url.Values{ParamSize: {"7"}, ParamCount: {"3"}, ParamColors: {"FF0000-00FF00"}, ParamBackground: {"0000FF"}})

	payload, err := session.Confirm()
	require.NoError(t, err)

	assert.Equal(t, "gen_7_3_FF0000-00FF00_0000FF", payload)
	assert.Equal(t, []string{"https://t.me/icykcyber_bot?start=gen_7_3_FF0000-00FF00_0000FF"}, host.navigated)
	assert.True(t, host.closed)
}

func TestSessionConfirmNavigateError(t *testing.T) {
	host := &recordingHost{navigateErr: errors.New("blocked")}
	session := NewSession(New(), &recordingSink{}, host, "bot")
	session.Init(url.Values{})

	_, err := session.Confirm()
	assert.Error(t, err)
	assert.False(t, host.closed)
}
