package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/icykcyber/genbot/internal/domain/entity"
)

type GenerationStorage struct {
	db *gorm.DB
}

func NewGenerationStorage(db *gorm.DB) *GenerationStorage {
	return &GenerationStorage{
		db: db,
	}
}

// Create is a function that stores a generation request.
func (s *GenerationStorage) Create(ctx context.Context, request *entity.GenerationRequest) (*entity.GenerationRequest, error) {
	err := s.db.WithContext(ctx).Create(request).Error
	return request, err
}

// Get is a function that gets a generation request by id.
func (s *GenerationStorage) Get(ctx context.Context, id string) (*entity.GenerationRequest, error) {
	var request entity.GenerationRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	return &request, err
}

// GetLastByUserID is a function that gets the newest request of a user.
func (s *GenerationStorage) GetLastByUserID(ctx context.Context, userID int64) (*entity.GenerationRequest, error) {
	var request entity.GenerationRequest
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").First(&request).Error
	return &request, err
}

// GetByUserIDWithPagination is a function that gets the request history of a user, newest first.
func (s *GenerationStorage) GetByUserIDWithPagination(ctx context.Context, userID int64, limit, offset int) ([]entity.GenerationRequest, error) {
	var requests []entity.GenerationRequest
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	return requests, err
}

// CountByUserID is a function that counts the requests of a user.
func (s *GenerationStorage) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.GenerationRequest{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
