package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	"github.com/country-explorer/internal/delivery/http/handler"
	"github.com/country-explorer/internal/delivery/http/middleware"
	pkgerrors "github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	countryHandler   *handler.CountryHandler
	favoritesHandler *handler.FavoritesHandler
	authHandler      *handler.AuthHandler

	authUC *usecase.AuthUseCase
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	countryHandler *handler.CountryHandler,
	favoritesHandler *handler.FavoritesHandler,
	authHandler *handler.AuthHandler,
	authUC *usecase.AuthUseCase,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Country Explorer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		countryHandler:   countryHandler,
		favoritesHandler: favoritesHandler,
		authHandler:      authHandler,
		authUC:           authUC,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog routes
	api.Get("/countries", s.countryHandler.List)
	api.Get("/countries/live", s.countryHandler.Live)
	api.Get("/countries/:code", s.countryHandler.GetByCode)
	api.Get("/regions", s.countryHandler.Regions)

	// Auth routes
	api.Post("/auth/login", s.authHandler.Login)
	api.Post("/auth/logout", s.authHandler.Logout)

	// Favorites routes - за route guard'ом
	favorites := api.Group("/favorites", middleware.RequireAuth(
		s.authUC,
		s.config.Session.CookieName,
		s.logger,
	))
	favorites.Get("/", s.favoritesHandler.List)
	favorites.Get("/recent", s.favoritesHandler.Recent)
	favorites.Get("/export", s.favoritesHandler.Export)
	favorites.Post("/import", s.favoritesHandler.Import)
	favorites.Post("/:code/toggle", s.favoritesHandler.Toggle)
	favorites.Put("/:code/note", s.favoritesHandler.SetNote)
	favorites.Delete("/:code/note", s.favoritesHandler.ClearNote)
	favorites.Put("/:code", s.favoritesHandler.Add)
	favorites.Delete("/:code", s.favoritesHandler.Remove)
	favorites.Delete("/", s.favoritesHandler.ClearAll)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := err.(*pkgerrors.AppError); ok {
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr,
			})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
