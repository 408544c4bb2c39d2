package users

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"papertrade-backend/internal/domain"
	"papertrade-backend/internal/middleware"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRegisterApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	h := &Handlers{
		Service: &Service{DB: db, StartingCash: decimal.RequireFromString("10000")},
		Config:  middleware.SessionConfig{},
	}
	app := fiber.New()
	app.Post("/api/v1/users/register", h.Register)
	return app
}

func register(t *testing.T, app *fiber.App, body map[string]string) (int, map[string]interface{}) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestRegisterEndpoint_Success(t *testing.T) {
	app := setupRegisterApp(t)
	status, body := register(t, app, map[string]string{
		"username":              "alice",
		"password":              "hunter2!x",
		"password_confirmation": "hunter2!x",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "$10,000.00", user["cash_display"])
}

func TestRegisterEndpoint_PasswordMismatch(t *testing.T) {
	app := setupRegisterApp(t)
	status, body := register(t, app, map[string]string{
		"username":              "alice",
		"password":              "hunter2!x",
		"password_confirmation": "other",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	app := setupRegisterApp(t)
	in := map[string]string{
		"username":              "alice",
		"password":              "hunter2!x",
		"password_confirmation": "hunter2!x",
	}
	status, _ := register(t, app, in)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = register(t, app, in)
	assert.Equal(t, fiber.StatusConflict, status)
}
