package auth

import (
	"encoding/json"
	"net/http"
	"testing"

	"store-admin-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	cfg := testutil.Config()
	app := testutil.NewApp()
	app.Post("/api/auth/register", RegisterHandler())
	app.Post("/api/auth/login", LoginHandler(cfg))
	app.Get("/api/auth/me", JWTMiddleware(cfg), MeHandler())
	app.Get("/api/:storeId/secret", JWTMiddleware(cfg), RequireStoreOwner(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"store": CurrentStore(c).Name, "user": UserID(c)})
	})
	return app
}

func TestRegisterLoginMe(t *testing.T) {
	testutil.UseGlobalDB(t)
	app := newAuthApp()

	status, raw := testutil.Do(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": " Ada@Example.com ", "password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = testutil.Do(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email is already registered", testutil.ErrorMessage(t, raw))

	status, _ = testutil.Do(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw = testutil.Do(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ada@example.com", "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	var login struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "ada@example.com", login.User.Email)

	status, raw = testutil.Do(t, app, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var me UserResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, login.User.ID, me.ID)
	assert.Equal(t, "Ada", me.Name)
}

func TestRegisterValidates(t *testing.T) {
	testutil.UseGlobalDB(t)
	app := newAuthApp()

	status, raw := testutil.Do(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": "not-an-email", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.ErrorMessage(t, raw), "email")
}

func TestMeWithExternalIdentity(t *testing.T) {
	testutil.UseGlobalDB(t)
	app := newAuthApp()

	status, raw := testutil.Do(t, app, http.MethodGet, "/api/auth/me", testutil.Token(t, "ext|123"), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"ext|123"}`, string(raw))
}

func TestJWTMiddleware(t *testing.T) {
	testutil.UseGlobalDB(t)
	app := newAuthApp()

	status, _ := testutil.Do(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = testutil.Do(t, app, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	req, err := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Token "+testutil.Token(t, "u1"))
	status, _ = testutil.Send(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRequireStoreOwner(t *testing.T) {
	db := testutil.UseGlobalDB(t)
	store := testutil.SeedStore(t, db, "Shop", "owner-1")
	app := newAuthApp()
	path := "/api/" + store.ID + "/secret"

	status, raw := testutil.Do(t, app, http.MethodGet, path, testutil.Token(t, "owner-1"), nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"store":"Shop","user":"owner-1"}`, string(raw))

	status, raw = testutil.Do(t, app, http.MethodGet, path, testutil.Token(t, "someone-else"), nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized Access", testutil.ErrorMessage(t, raw))

	status, raw = testutil.Do(t, app, http.MethodGet, "/api/nope/secret", testutil.Token(t, "owner-1"), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Store not found", testutil.ErrorMessage(t, raw))
}
