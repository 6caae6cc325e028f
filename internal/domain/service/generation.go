package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/internal/domain/entity"
)

type GenerationStorage interface {
	Create(ctx context.Context, request *entity.GenerationRequest) (*entity.GenerationRequest, error)
	GetLastByUserID(ctx context.Context, userID int64) (*entity.GenerationRequest, error)
	GetByUserIDWithPagination(ctx context.Context, userID int64, limit, offset int) ([]entity.GenerationRequest, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

type GenerationService struct {
	storage GenerationStorage
}

func NewGenerationService(storage GenerationStorage) *GenerationService {
	return &GenerationService{
		storage: storage,
	}
}

// Accept parses a deep link payload and records it as a request of userID.
// Invalid payloads are returned as errors wrapping errorz.ErrInvalidPayload.
func (s *GenerationService) Accept(ctx context.Context, userID int64, payload string) (*entity.GenerationRequest, error) {
	cfg, err := configurator.ParseLink(payload)
	if err != nil {
		return nil, err
	}

	request := entity.NewGenerationRequest(uuid.New().String(), userID, cfg)
	return s.storage.Create(ctx, &request)
}

// Last returns the newest request of userID.
func (s *GenerationService) Last(ctx context.Context, userID int64) (*entity.GenerationRequest, error) {
	return s.storage.GetLastByUserID(ctx, userID)
}

func (s *GenerationService) History(ctx context.Context, userID int64, limit, offset int) ([]entity.GenerationRequest, error) {
	return s.storage.GetByUserIDWithPagination(ctx, userID, limit, offset)
}

func (s *GenerationService) Count(ctx context.Context, userID int64) (int64, error) {
	return s.storage.CountByUserID(ctx, userID)
}
