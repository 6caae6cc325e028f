package service

import (
	"context"

	tele "gopkg.in/telebot.v3"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
	"github.com/icykcyber/genbot/internal/domain/entity"
)

type UserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

func (s *UserService) Get(ctx context.Context, userID int64) (*entity.User, error) {
	return s.userStorage.Get(ctx, userID)
}

// Register creates the sender or refreshes their profile fields.
func (s *UserService) Register(ctx context.Context, sender *tele.User) (*entity.User, error) {
	localisation := sender.LanguageCode
	if localisation == "" {
		localisation = "en"
	}

	return s.userStorage.Upsert(ctx, &entity.User{
		ID:           sender.ID,
		FirstName:    sender.FirstName,
		Username:     sender.Username,
		Localisation: localisation,
	})
}

// Ban toggles the ban flag of userID on behalf of adminID. Admins can not
// ban themselves.
func (s *UserService) Ban(ctx context.Context, adminID, userID int64) (*entity.User, error) {
	if adminID == userID {
		return nil, errorz.ErrSelfBan
	}

	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsBanned = !user.IsBanned
	return s.userStorage.Update(ctx, user)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userStorage.Count(ctx)
}
