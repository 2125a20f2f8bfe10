package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"visitordesk/internal/delivery/http/controllers"
	"visitordesk/internal/delivery/http/middleware"
	"visitordesk/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Kiosk routes are open; admin routes require a bearer token.
func NewRouter(
	authController *controllers.AuthController,
	kioskController *controllers.KioskController,
	visitorController *controllers.VisitorController,
	registryController *controllers.RegistryController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Kiosk
	mux.HandleFunc("GET /kiosk/visitors", kioskController.Search)
	mux.HandleFunc("POST /kiosk/walk-ins", kioskController.WalkIn)
	mux.HandleFunc("POST /kiosk/visitors/{visitorID}/check-in", kioskController.CheckIn)
	mux.HandleFunc("POST /kiosk/visitors/{visitorID}/check-out", kioskController.CheckOut)

	// Admin
	mux.HandleFunc("POST /admin/visitors", auth(visitorController.Book))
	mux.HandleFunc("GET /admin/visitors", auth(visitorController.List))
	mux.HandleFunc("PATCH /admin/visitors/{visitorID}", auth(visitorController.Edit))
	mux.HandleFunc("GET /admin/logs", auth(visitorController.AuditLog))

	mux.HandleFunc("POST /admin/hosts", auth(registryController.AddHost))
	mux.HandleFunc("GET /admin/hosts", auth(registryController.ListHosts))
	mux.HandleFunc("PUT /admin/hosts/{hostID}", auth(registryController.UpdateHost))
	mux.HandleFunc("DELETE /admin/hosts/{hostID}", auth(registryController.DeleteHost))

	mux.HandleFunc("POST /admin/saved-visitors", auth(registryController.AddSavedVisitor))
	mux.HandleFunc("GET /admin/saved-visitors", auth(registryController.ListSavedVisitors))
	mux.HandleFunc("PUT /admin/saved-visitors/{visitorID}", auth(registryController.UpdateSavedVisitor))
	mux.HandleFunc("DELETE /admin/saved-visitors/{visitorID}", auth(registryController.DeleteSavedVisitor))

	mux.HandleFunc("GET /admin/directory/autofill", auth(registryController.Autofill))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
