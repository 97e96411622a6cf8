package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "newssaar/backend/docs"
	"newssaar/backend/internal/handler"
)

func NewRouter(
	newsHandler *handler.NewsHandler,
	translateHandler *handler.TranslateHandler,
	posterHandler *handler.PosterHandler,
	catalogHandler *handler.CatalogHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	newsHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)
	posterHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)

	return e
}
