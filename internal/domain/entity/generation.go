package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/icykcyber/genbot/internal/domain/configurator"
)

// GenerationRequest is a confirmed configurator payload received by the bot.
type GenerationRequest struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	CreatedAt       time.Time
	DeletedAt       gorm.DeletedAt
	UserID          int64          `gorm:"not null;index"`
	Payload         string         `gorm:"not null"`
	AspectIndex     int            `gorm:"not null"`
	ImageCount      int            `gorm:"not null"`
	Colors          pq.StringArray `gorm:"type:text[]"`
	BackgroundColor string
}

// NewGenerationRequest snapshots cfg for userID.
func NewGenerationRequest(id string, userID int64, cfg *configurator.Configuration) GenerationRequest {
	bg, _ := cfg.Background()
	return GenerationRequest{
		ID:              id,
		UserID:          userID,
		Payload:         configurator.EncodeLink(cfg),
		AspectIndex:     cfg.AspectIndex(),
		ImageCount:      cfg.ImageCount(),
		Colors:          pq.StringArray(cfg.Colors()),
		BackgroundColor: bg,
	}
}

// Configuration rebuilds the configurator state of the request.
// Stored values go through the bounded setters, so a tampered row still
// yields a valid configuration.
func (r *GenerationRequest) Configuration() *configurator.Configuration {
	cfg := configurator.New()
	cfg.SetAspectIndex(r.AspectIndex)
	cfg.SetImageCount(r.ImageCount)
	for _, hex := range r.Colors {
		cfg.AddColor(hex)
	}
	if r.BackgroundColor != "" {
		cfg.SetBackground(r.BackgroundColor)
	}
	return cfg
}

// Link returns the deep link that replays the request in the bot.
func (r *GenerationRequest) Link(botName string) string {
	return configurator.DeepLinkURL(botName, r.Payload)
}
