package users

import (
	"context"
	"errors"

	"papertrade-backend/internal/middleware"
	"papertrade-backend/internal/pkg/money"
	"papertrade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const userSessionsPrefix = "user_sessions:"

// Handlers holds dependencies for the registration endpoint.
type Handlers struct {
	Service *Service
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// Register POST /api/v1/users/register — create the user and log them in.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrUsernameRequired.Error(), fiber.StatusBadRequest, nil)
	}

	user, err := h.Service.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameRequired),
			errors.Is(err, ErrInvalidUsername),
			errors.Is(err, ErrPasswordRequired),
			errors.Is(err, ErrInvalidPassword),
			errors.Is(err, ErrConfirmationRequired),
			errors.Is(err, ErrPasswordMismatch):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case errors.Is(err, ErrUsernameTaken):
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	// Log the fresh user in, same session flow as auth login.
	sessionID := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID:   user.UserID.String(),
		Username: user.Username,
	})
	if h.Rdb != nil {
		_ = h.Rdb.SAdd(context.Background(), userSessionsPrefix+user.UserID.String(), sessionID).Err()
	}
	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = sessionID
	c.Cookie(&cookie)

	return response.SuccessCreated(c, "Registered successfully", fiber.Map{
		"user": fiber.Map{
			"user_id":      user.UserID.String(),
			"username":     user.Username,
			"cash":         user.Cash,
			"cash_display": money.USD(user.Cash),
		},
	}, nil)
}
