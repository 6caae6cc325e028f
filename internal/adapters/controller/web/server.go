package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/icykcyber/genbot/pkg/logger/types"
)

type sessionStorage interface {
	Set(ctx context.Context, payload, messageID string, expiration time.Duration) error
}

type Options struct {
	Host        string
	Port        int
	BotUsername string
	// SessionTTL is how long the bot may pick up the message_id of a confirmed session.
	SessionTTL time.Duration
	Debug      bool
}

// Server serves the configurator mini-app.
type Server struct {
	opts     Options
	engine   *gin.Engine
	http     *http.Server
	sessions sessionStorage
	logger   *types.Logger
}

func New(opts Options, sessions sessionStorage, logger *types.Logger) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		opts:     opts,
		engine:   gin.New(),
		sessions: sessions,
		logger:   logger,
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.SetHTMLTemplate(parseTemplates())

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/configurator", s.configurator)
	s.engine.GET("/configurator/confirm", s.confirm)

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("Web server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"bot":    s.opts.BotUsername,
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debugf("%s %s | %d | %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
