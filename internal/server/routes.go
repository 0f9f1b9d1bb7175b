package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecaretag/internal/classifier"
	"ecaretag/internal/handlers"
	"ecaretag/internal/handlers/api"
	"ecaretag/internal/middleware"
	"ecaretag/internal/store"
	"ecaretag/internal/taxonomy"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, table *taxonomy.Table, engine *classifier.Classifier, st store.Store) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(table, s.Cfg)
	classifyHandler := handlers.NewClassifyHandler(engine, s.Cfg)
	taxonomyHandler := handlers.NewTaxonomyHandler(table, s.Cfg)
	probeHandler := handlers.NewProbeHandler(st)
	apiClassifyHandler := api.NewClassifyHandler(engine, s.Cfg)
	apiTaxonomyHandler := api.NewTaxonomyHandler(table)

	// Auth routes - only wired when OIDC is configured; the tool works
	// anonymously otherwise.
	if s.Cfg.AuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)

		s.App.Get("/login", func(c fiber.Ctx) error {
			return c.Render("login", handlers.MergeBranding(fiber.Map{
				"Title": "Login",
			}, s.Cfg))
		})
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Pages
	s.App.Get("/", authMiddleware.RequireAuth, homeHandler.Index)
	s.App.Get("/taxonomy", authMiddleware.RequireAuth, taxonomyHandler.Browse)

	// Form endpoint consumed by the page script
	s.App.Post("/classify", authMiddleware.RequireAuth, classifyHandler.Classify)

	// JSON API
	s.App.Post("/api/classify", authMiddleware.OptionalAuth, apiClassifyHandler.Classify)
	s.App.Get("/api/taxonomy", authMiddleware.OptionalAuth, apiTaxonomyHandler.List)
	s.App.Get("/api/taxonomy/:code", authMiddleware.OptionalAuth, apiTaxonomyHandler.Get)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
