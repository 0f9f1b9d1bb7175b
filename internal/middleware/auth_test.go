package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"ecaretag/internal/config"
)

func TestRequireAuthPassesThroughWhenOIDCDisabled(t *testing.T) {
	app := fiber.New()
	m := NewAuthMiddleware(&config.Config{})

	app.Get("/", m.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200 with auth disabled", resp.StatusCode)
	}
}

func TestRequireAuthRedirectsWithoutSession(t *testing.T) {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	m := NewAuthMiddleware(&config.Config{OIDCIssuer: "https://idp.example.com"})
	app.Get("/", m.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Errorf("status = %d, want 303 redirect to login", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestOptionalAuthNeverBlocks(t *testing.T) {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	m := NewAuthMiddleware(&config.Config{OIDCIssuer: "https://idp.example.com"})
	app.Get("/", m.OptionalAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200 without a session", resp.StatusCode)
	}
}
