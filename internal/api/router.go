package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bookvault/library-api/internal/api/handler"
	"github.com/bookvault/library-api/internal/api/middleware"
	"github.com/bookvault/library-api/internal/core/service"
	"github.com/bookvault/library-api/internal/infrastructure/config"
	mongodb "github.com/bookvault/library-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are constructed here and injected explicitly; nothing is
// reached through package-level state.
func NewRouter(store *mongodb.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("library"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(store)
	authorRepo := mongodb.NewAuthorRepository(store)
	bookRepo := mongodb.NewBookRepository(store)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire, cfg.BcryptCost, log)
	authorService := service.NewAuthorService(authorRepo, userRepo, log)
	bookService := service.NewBookService(bookRepo, authorRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, store)
	authorHandler := handler.NewAuthorHandler(authorService, store)
	bookHandler := handler.NewBookHandler(bookService, store)
	healthHandler := handler.NewHealthHandler(store)

	authGate := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/signin", authHandler.Signin)

	// --- Protected routes ---
	author := e.Group("/api/author", authGate)
	author.POST("/create", authorHandler.Create)
	author.POST("/all", authorHandler.FindAll)
	author.POST("/replace", authorHandler.Replace)
	author.POST("/remove", authorHandler.Remove)

	book := e.Group("/api/book", authGate)
	book.POST("/create", bookHandler.Create)
	book.POST("/all", bookHandler.FindAll)
	book.POST("/replace", bookHandler.Replace)
	book.POST("/remove", bookHandler.Remove)

	return e
}
