package middlewares

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"

	"github.com/icykcyber/genbot/internal/domain/entity"
)

type stubUsers struct {
	banned map[int64]bool
	err    error
}

func (s stubUsers) Register(_ context.Context, sender *tele.User) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.User{ID: sender.ID, Localisation: "en", IsBanned: s.banned[sender.ID]}, nil
}

func TestAdmit(t *testing.T) {
	users := stubUsers{banned: map[int64]bool{2: true}}

	tests := []struct {
		name   string
		sender int64
		want   bool
	}{
		{name: "active user passes", sender: 1, want: true},
		{name: "banned user stops", sender: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handler{userService: users}
			user, ok, err := h.admit(&tele.User{ID: tt.sender})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.sender, user.ID)
		})
	}
}

func TestAdmitRegisterFailure(t *testing.T) {
	h := Handler{userService: stubUsers{err: errors.New("db down")}}

	user, ok, err := h.admit(&tele.User{ID: 1})
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, user)
}
