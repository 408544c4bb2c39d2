package users

import (
	"context"
	"strings"

	"papertrade-backend/internal/domain"
	"papertrade-backend/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service holds DB and registration policy for user operations.
type Service struct {
	DB           *gorm.DB
	StartingCash decimal.Decimal
}

// RegisterInput matches the registration form: username, password, confirmation.
type RegisterInput struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"password_confirmation"`
}

// Register creates a user with the starting cash balance. The caller logs
// the new user in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !validation.IsValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}
	if in.Confirmation == "" {
		return nil, ErrConfirmationRequired
	}
	if in.Confirmation != in.Password {
		return nil, ErrPasswordMismatch
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, ErrInvalidPassword
	}

	var existing domain.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Cash:         s.StartingCash,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
