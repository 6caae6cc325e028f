package service

import (
	"context"
	"fmt"
	"time"

	"github.com/icykcyber/genbot/internal/domain/configurator"
	qr "github.com/icykcyber/genbot/pkg/qrcode"
)

type callbackStorage interface {
	Get(ctx context.Context, callbackID string) (string, error)
	Set(ctx context.Context, data string, expiration time.Duration) (string, error)
}

// ShareService turns generation payloads into shareable deep link QR codes.
type ShareService struct {
	callbacks callbackStorage
	qrConfig  qr.Config
	botName   string
	ttl       time.Duration
}

func NewShareService(callbacks callbackStorage, qrConfig qr.Config, botName string, ttl time.Duration) *ShareService {
	return &ShareService{
		callbacks: callbacks,
		qrConfig:  qrConfig,
		botName:   botName,
		ttl:       ttl,
	}
}

// Prepare stores payload and returns the short id to put in the button.
func (s *ShareService) Prepare(ctx context.Context, payload string) (string, error) {
	return s.callbacks.Set(ctx, payload, s.ttl)
}

// QR resolves a prepared id and renders the deep link as a QR code PNG.
func (s *ShareService) QR(ctx context.Context, callbackID string) (link string, image []byte, err error) {
	payload, err := s.callbacks.Get(ctx, callbackID)
	if err != nil {
		return "", nil, err
	}
	if _, err = configurator.ParseLink(payload); err != nil {
		return "", nil, err
	}

	link = configurator.DeepLinkURL(s.botName, payload)
	cfg := s.qrConfig.WithContent(link)
	image, err = cfg.Generate()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate qr: %w", err)
	}
	return link, image, nil
}
