package services

import (
	"context"
	"errors"

	"dailydiet/models"
	"dailydiet/utils"

	"gorm.io/gorm"
)

// AuthService registers users and exchanges credentials for session
// tokens.
type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenService
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}

	// Email uniqueness is enforced only by the unique index.
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and issues a signed token. Unknown
// e-mail and wrong password return the same error so callers cannot
// tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Sign(user.ID)
}
