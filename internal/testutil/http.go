package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-admin-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const JWTSecret = "test-secret-test-secret-test-secret"

// Config returns a config suitable for handler tests.
func Config() *config.Config {
	return &config.Config{
		JWTSecret:             JWTSecret,
		LocalAuthEnabled:      true,
		RevenueTimezonePolicy: "local",
		CurrencyCode:          "USD",
		CurrencyLocale:        "en-US",
	}
}

// NewApp returns a fiber app rendering errors as {"error": msg}.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Error"})
		},
	})
}

// Token signs a token whose subject is userID.
func Token(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: userID}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(JWTSecret))
	require.NoError(t, err)
	return tok
}

// Do sends a JSON request and returns the status and raw body.
func Do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return Send(t, app, req)
}

// Send runs req against app.
func Send(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// ErrorMessage decodes an {"error": msg} body.
func ErrorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body.Error
}
