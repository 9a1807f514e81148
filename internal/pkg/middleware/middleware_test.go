package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/session"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

func newApp(cfg env.Config) *fiber.App {
	session.NewSessionStore(nil)
	app := fiber.New()
	app.Use(UserContext(cfg))
	app.Get("/login/:id", func(c *fiber.Ctx) error {
		return session.SetSessionValue(c, usercontext.KeyUserID, c.Params("id"))
	})
	app.Get("/who", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatUint(uint64(usercontext.GetUserID(c)), 10))
	})
	app.Get("/private", RequireAuth, func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/private", RequireAPISessionAuth, func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func get(t *testing.T, app *fiber.App, path, cookie string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestUserContextReadsSessionUser(t *testing.T) {
	app := newApp(env.Config{AppEnv: "prod"})

	resp, _ := get(t, app, "/login/42", "")
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			cookie = c.Name + "=" + c.Value
		}
	}
	require.NotEmpty(t, cookie)

	_, body := get(t, app, "/who", cookie)
	assert.Equal(t, "42", body)

	resp, _ = get(t, app, "/private", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUserContextAnonymous(t *testing.T) {
	app := newApp(env.Config{AppEnv: "prod", DevUserID: 3})

	_, body := get(t, app, "/who", "")
	assert.Equal(t, "0", body)

	resp, _ := get(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = get(t, app, "/api/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, `"unauthorized"`)
}

func TestUserContextDevFallback(t *testing.T) {
	app := newApp(env.Config{AppEnv: "dev", DevUserID: 3})

	_, body := get(t, app, "/who", "")
	assert.Equal(t, "3", body)
}

func TestUserContextIgnoresGarbageUserID(t *testing.T) {
	app := newApp(env.Config{AppEnv: "prod"})

	resp, _ := get(t, app, "/login/abc", "")
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			cookie = c.Name + "=" + c.Value
		}
	}

	_, body := get(t, app, "/who", cookie)
	assert.Equal(t, "0", body)
}
