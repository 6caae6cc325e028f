package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/pkg/logger/types"
)

type memorySessions struct {
	stored map[string]string
}

func (m *memorySessions) Set(_ context.Context, payload, messageID string, _ time.Duration) error {
	m.stored[payload] = messageID
	return nil
}

func newTestServer(t *testing.T) (*Server, *memorySessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := &memorySessions{stored: map[string]string{}}
	logger := &types.Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "web"}
	srv := New(Options{BotUsername: "icykcyber_bot", SessionTTL: time.Minute, Debug: true}, sessions, logger)
	return srv, sessions
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestConfiguratorRendersDecodedState(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/configurator?size=20&count=0&colors=FF0000-zzz-00&bgColor=XYZ")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "1:2")
	assert.Contains(t, body, "background-color: #FF0000")
	assert.Contains(t, body, `name="bg"`)
	assert.Contains(t, body, "Confirm")
	assert.Contains(t, body, "width: 15.00px")
	assert.Contains(t, body, webAppScript)
	assert.Contains(t, body, "tg.ready();")
	assert.Contains(t, body, "tg.MainButton.show();")
}

func TestConfiguratorActionsRedirectToState(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		expect url.Values
	}{
		{
			name:   "add color from picker",
			target: "/configurator?size=3&count=2&add=%2300ff7f",
			expect: url.Values{"size": {"3"}, "count": {"2"}, "colors": {"00FF7F"}},
		},
		{
			name:   "remove color",
			target: "/configurator?colors=FF0000-00FF00-0000FF&remove=1",
			expect: url.Values{"size": {"7"}, "count": {"1"}, "colors": {"FF0000-0000FF"}},
		},
		{
			name:   "set background keeps message id",
			target: "/configurator?message_id=5.10&bg=rgb(0,%200,%20255)",
			expect: url.Values{"size": {"7"}, "count": {"1"}, "bgColor": {"0000FF"}, "message_id": {"5.10"}},
		},
		{
			name:   "clear everything",
			target: "/configurator?colors=FF0000&bgColor=00FF00&clear=all",
			expect: url.Values{"size": {"7"}, "count": {"1"}},
		},
		{
			name:   "clear background only",
			target: "/configurator?colors=FF0000&bgColor=00FF00&clearBg=1",
			expect: url.Values{"size": {"7"}, "count": {"1"}, "colors": {"FF0000"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			require.Equal(t, http.StatusSeeOther, rec.Code)

			location, err := url.Parse(rec.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "/configurator", location.Path)
			assert.Equal(t, tt.expect, location.Query())
		})
	}
}

func TestConfirmOpensBotAndCloses(t *testing.T) {
	srv, sessions := newTestServer(t)

	rec := get(t, srv, "/configurator/confirm?size=7&count=3&colors=FF0000-00FF00&bgColor=0000FF&message_id=5.10")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `data-link="https://t.me/icykcyber_bot?start=gen_7_3_FF0000-00FF00_0000FF"`)
	assert.Contains(t, body, `href="https://t.me/icykcyber_bot?start=gen_7_3_FF0000-00FF00_0000FF"`)
	assert.Contains(t, body, "tg.openTelegramLink(link);")
	assert.Contains(t, body, "tg.close();")
	assert.Equal(t, map[string]string{"gen_7_3_FF0000-00FF00_0000FF": "5.10"}, sessions.stored)
}

func TestConfirmWithoutMessageID(t *testing.T) {
	srv, sessions := newTestServer(t)

	rec := get(t, srv, "/configurator/confirm?size=0&count=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="https://t.me/icykcyber_bot?start=gen_0_1__"`)
	assert.Empty(t, sessions.stored)
}

func TestPageClosesOnlyAfterConfirm(t *testing.T) {
	view := newPage()
	var out strings.Builder

	require.NoError(t, parseTemplates().ExecuteTemplate(&out, confirmTemplateName, view))
	assert.NotContains(t, out.String(), "tg.close();")

	session := configurator.NewSession(configurator.New(), view, view, "icykcyber_bot")
	_, err := session.Confirm()
	require.NoError(t, err)
	assert.True(t, view.Closed)
	assert.Equal(t, "https://t.me/icykcyber_bot?start=gen_7_1__", view.Redirect)

	out.Reset()
	require.NoError(t, parseTemplates().ExecuteTemplate(&out, confirmTemplateName, view))
	assert.Contains(t, out.String(), "tg.close();")
}
