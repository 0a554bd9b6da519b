package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/http/handlers"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/domain"
)

// Handlers bundles every HTTP handler used by the router.
type Handlers struct {
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Transactions   *handlers.TransactionsHandler
	Requisitions   *handlers.RequisitionsHandler
	Communications *handlers.CommunicationsHandler
	Users          *handlers.UsersHandler
	Units          *handlers.UnitsHandler
	Catalog        *handlers.CatalogHandler
	Health         *handlers.HealthHandler
}

// RegisterRoutes wires the API surface. Everything except login, register
// and the health probes sits behind authentication.
func RegisterRoutes(app *fiber.App, h Handlers, authMw *auth.AuthMiddleware) {
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	app.Post("/auth/login", h.Auth.Login)
	app.Post("/auth/register", h.Auth.Register)

	api := app.Group("/", authMw.Handle)

	api.Get("/events", h.Events.List)
	api.Post("/events", h.Events.Create)
	api.Get("/events/:id", h.Events.Get)
	api.Put("/events/:id", h.Events.Update)
	api.Delete("/events/:id", h.Events.Delete)
	api.Get("/events/:id/transactions", h.Transactions.ListByEvent)
	api.Get("/events/:id/requisitions", h.Requisitions.ListByEvent)
	api.Get("/events/:id/communications", h.Communications.ListByEvent)

	api.Post("/transactions", h.Transactions.Create)
	api.Put("/transactions/:id", h.Transactions.Update)
	api.Delete("/transactions/:id", h.Transactions.Delete)

	api.Get("/requisitions", h.Requisitions.List)
	api.Post("/requisitions", h.Requisitions.Create)
	api.Get("/requisitions/:id", h.Requisitions.Get)
	api.Delete("/requisitions/:id", h.Requisitions.Delete)

	api.Get("/communications", h.Communications.List)
	api.Post("/communications", h.Communications.Create)
	api.Put("/communications/:id", h.Communications.Update)
	api.Delete("/communications/:id", h.Communications.Delete)

	api.Get("/units", h.Units.List)
	api.Post("/units", auth.RequireRole(domain.RoleMaster), h.Units.Create)

	api.Get("/operators", h.Catalog.ListOperators)
	api.Post("/operators", h.Catalog.CreateOperator)
	api.Put("/operators/:id", h.Catalog.UpdateOperator)
	api.Delete("/operators/:id", h.Catalog.DeleteOperator)

	api.Get("/services", h.Catalog.ListServices)
	api.Post("/services", h.Catalog.CreateService)
	api.Put("/services/:id", h.Catalog.UpdateService)
	api.Delete("/services/:id", h.Catalog.DeleteService)

	// Profile updates are self-service; the rest of /users is MASTER only.
	api.Put("/users/profile", h.Users.UpdateProfile)

	users := api.Group("/users", auth.RequireRole(domain.RoleMaster))
	users.Get("/", h.Users.List)
	users.Post("/", h.Users.Create)
	users.Get("/:id", h.Users.Get)
	users.Put("/:id", h.Users.Update)
	users.Delete("/:id", h.Users.Delete)
}
