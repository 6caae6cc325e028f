package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

// One-shot actions sent by the page controls on top of the state query.
const (
	actionAddColor        = "add"
	actionRemoveColor     = "remove"
	actionClearColors     = "clear"
	actionSetBackground   = "bg"
	actionClearBackground = "clearBg"
)

func (s *Server) openSession(c *gin.Context) (*configurator.Session, *page) {
	view := newPage()
	session := configurator.NewSession(configurator.New(), view, view, s.opts.BotUsername)

	res := session.Init(c.Request.URL.Query())
	for _, issue := range res.Issues {
		s.logger.Debugf("skipped configurator param: %v", issue)
	}
	return session, view
}

func (s *Server) configurator(c *gin.Context) {
	session, view := s.openSession(c)

	if applyActions(session, c) {
		view.setState(session)
		c.Redirect(http.StatusSeeOther, c.Request.URL.Path+"?"+view.StateQuery)
		return
	}

	view.setState(session)
	c.HTML(http.StatusOK, pageTemplateName, view)
}

func (s *Server) confirm(c *gin.Context) {
	session, view := s.openSession(c)

	payload, err := session.Confirm()
	if err != nil {
		s.logger.Errorf("error while confirming configuration: %v", err)
		c.String(http.StatusInternalServerError, "failed to build the generation link")
		return
	}
	s.logger.Infof("configuration confirmed (payload=%s)", payload)

	if messageID := session.MessageID(); messageID != "" {
		if errSet := s.sessions.Set(c.Request.Context(), payload, messageID, s.opts.SessionTTL); errSet != nil {
			s.logger.Errorf("error while storing session message id: %v", errSet)
		}
	}

	c.HTML(http.StatusOK, confirmTemplateName, view)
}

// applyActions runs the control actions present in the query and reports
// whether there was any.
func applyActions(session *configurator.Session, c *gin.Context) bool {
	var applied bool

	if raw, ok := c.GetQuery(actionAddColor); ok {
		if hex, valid := configurator.NormalizeToHex(raw); valid {
			session.AddColor(hex)
		}
		applied = true
	}

	if raw, ok := c.GetQuery(actionRemoveColor); ok {
		if index, err := strconv.Atoi(raw); err == nil {
			session.RemoveColor(index)
		}
		applied = true
	}

	if _, ok := c.GetQuery(actionClearColors); ok {
		session.ClearColors(c.Query(actionClearColors) == "all")
		applied = true
	}

	if raw, ok := c.GetQuery(actionSetBackground); ok {
		if hex, valid := configurator.NormalizeToHex(raw); valid {
			session.SetBackground(hex)
		}
		applied = true
	}

	if _, ok := c.GetQuery(actionClearBackground); ok {
		session.ClearBackground()
		applied = true
	}

	return applied
}
