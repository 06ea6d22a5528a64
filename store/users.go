package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/utils"
)

// ListUsernames returns every user as a username-only row; the listing never
// exposes names or avatars.
func (s *Store) ListUsernames(ctx context.Context) ([]models.Username, error) {
	users := make([]models.Username, 0)
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("username").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound(MsgUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
