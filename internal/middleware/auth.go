package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"ecaretag/internal/config"
)

// AuthMiddleware gates page access behind the OIDC session when login is
// configured. With no OIDC issuer the whole middleware passes through, so
// the tool stays usable anonymously.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.cfg.AuthEnabled() {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	email, _ := sess.Get("user_email").(string)
	if email == "" {
		return c.Redirect().To("/login")
	}

	c.Locals("user_email", email)
	if name, _ := sess.Get("user_name").(string); name != "" {
		c.Locals("user_name", name)
	}
	return c.Next()
}

// OptionalAuth loads the user identity if present, but never blocks.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if !m.cfg.AuthEnabled() {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess != nil {
		if email, _ := sess.Get("user_email").(string); email != "" {
			c.Locals("user_email", email)
		}
	}
	return c.Next()
}
