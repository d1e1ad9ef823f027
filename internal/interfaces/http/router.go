package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agisales/proposals-api/internal/application/analytics"
	"github.com/agisales/proposals-api/internal/application/auth"
	"github.com/agisales/proposals-api/internal/application/proposal"
	"github.com/agisales/proposals-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProposalUC  *proposal.ProposalUseCase
	ProposalPDF *proposal.PDFUseCase
	MetricsUC   *analytics.MetricsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; logout y me requieren Bearer Token
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Proposals (protegido; aprobar/rechazar solo manager)
	proposals := protected.Group("/proposals")
	proposalHandler := NewProposalHandler(deps.ProposalUC, deps.ProposalPDF)
	proposals.Get("/", proposalHandler.List)
	proposals.Post("/", proposalHandler.Create)
	proposals.Get("/:id", proposalHandler.GetByID)
	proposals.Patch("/:id", proposalHandler.Update)
	proposals.Delete("/:id", proposalHandler.Delete)
	proposals.Get("/:id/pdf", proposalHandler.PDF)
	proposals.Post("/:id/approve", RequireRole(entity.RoleManager), proposalHandler.Approve)
	proposals.Post("/:id/reject", RequireRole(entity.RoleManager), proposalHandler.Reject)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.MetricsUC)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
}
