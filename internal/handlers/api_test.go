package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/pllus/social-api/internal/auth"
	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/handlers"
	"github.com/pllus/social-api/internal/routes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.Register(app, handlers.Deps{
		Gate:       auth.New("test-secret"),
		Users:      newMemUsers(),
		Posts:      newMemPosts(),
		Comments:   newMemComments(),
		BcryptCost: bcrypt.MinCost,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, bearer string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// signup registers a user and returns a valid token for it.
func signup(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/register",
		map[string]string{"name": name, "email": email, "password": password}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: code %d", email, resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodPost, "/api/authenticate",
		map[string]string{"email": email, "password": password}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("authenticate %s: code %d", email, resp.StatusCode)
	}
	var tok dto.TokenResponse
	decodeJSON(t, resp, &tok)
	if tok.Token == "" {
		t.Fatalf("authenticate %s: empty token", email)
	}
	return tok.Token
}

func profile(t *testing.T, app *fiber.App, token string) dto.ProfileResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/api/user", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: code %d", resp.StatusCode)
	}
	var p dto.ProfileResponse
	decodeJSON(t, resp, &p)
	return p
}
