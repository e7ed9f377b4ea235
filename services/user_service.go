package services

import (
	"context"
	"errors"
	"time"

	"dailydiet/models"
	"dailydiet/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the optional fields of a profile update. Nil
// means "leave unchanged".
type ProfileUpdate struct {
	Name            *string
	Email           *string
	NewPassword     *string
	CurrentPassword *string
}

// UpdateProfile applies the supplied fields to the user. Changing the
// password requires re-authentication with the current one.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}

	if in.NewPassword != nil {
		if in.CurrentPassword == nil {
			return ErrCurrentPasswordRequired
		}
		if !utils.CheckPasswordHash(*in.CurrentPassword, user.Password) {
			return ErrCurrentPasswordMismatch
		}
		hashed, err := utils.HashPassword(*in.NewPassword)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"password":   user.Password,
			"updated_at": time.Now(),
		}).Error
}
