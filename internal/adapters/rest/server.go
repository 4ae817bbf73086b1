package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	core_port "classifieds-service/internal/core/port"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера и собирает маршруты.
func NewServer(
	port string,
	authHandlers *AuthHandlers,
	listingHandlers *ListingHandlers,
	adminHandlers *AdminHandlers,
	settingsHandlers *SettingsHandlers,
	authMW *AuthMiddleware,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Аутентификация
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandlers.Register)
			r.Post("/login", authHandlers.Login)
			r.Post("/validate", authHandlers.ValidateToken)
		})

		// Публичный каталог. Опциональная аутентификация: владелец
		// видит детали своего неопубликованного объявления.
		r.Group(func(r chi.Router) {
			r.Use(authMW.OptionalAuthenticate)
			r.Get("/listings", listingHandlers.BrowseListings)
			r.Get("/listings/{listingID}", listingHandlers.GetListingDetails)
			r.Get("/settings", settingsHandlers.GetSettings)
		})

		// Маршруты, требующие входа
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)

			r.Post("/listings", listingHandlers.CreateListing)
			r.Put("/listings/{listingID}", listingHandlers.UpdateListing)
			r.Delete("/listings/{listingID}", listingHandlers.DeleteListing)

			r.Get("/my/listings", listingHandlers.GetOwnListings)
			r.Post("/my/subadmin-request", listingHandlers.RequestSubadmin)
		})

		// Панель модерации и администрирования. Ролевые проверки живут
		// в use case-ах: ревью доступно ADMIN и SUBADMIN, остальное - ADMIN.
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW.Authenticate)

			r.Get("/listings", adminHandlers.ReviewListings)
			r.Patch("/listings/{listingID}", adminHandlers.ModerateListing)

			r.Get("/users", adminHandlers.ListUsers)
			r.Patch("/users/{userID}", adminHandlers.UpdateUser)
			r.Delete("/users/{userID}", adminHandlers.DeleteUser)

			r.Put("/settings", settingsHandlers.UpdateSettings)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
