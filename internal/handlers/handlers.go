// Package handlers contains the page and form endpoints.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/config"
)

// MergeBranding adds site branding to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	data["AuthEnabled"] = cfg.AuthEnabled()
	return data
}
