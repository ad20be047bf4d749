// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"museum/config"
	"museum/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	Config         *config.Config
	AccountHandler *handler.AccountHandler
	ItemHandler    *handler.ItemHandler
	PhotoHandler   *handler.PhotoHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	accountHandler *handler.AccountHandler
	itemHandler    *handler.ItemHandler
	photoHandler   *handler.PhotoHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		accountHandler: params.AccountHandler,
		itemHandler:    params.ItemHandler,
		photoHandler:   params.PhotoHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/accounts", echomiddleware.BodyLimit(r.cfg.HTTP.MaxRequestBodySize))
	{
		accountGroup.POST("", r.accountHandler.Register)
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.PUT("/:username", r.accountHandler.Update)
		accountGroup.DELETE("/:username", r.accountHandler.Delete)
	}

	itemGroup := e.Group("/items", echomiddleware.BodyLimit(r.cfg.HTTP.MaxRequestBodySize))
	{
		itemGroup.POST("", r.itemHandler.Create)
		itemGroup.GET("", r.itemHandler.List)
		itemGroup.GET("/:id", r.itemHandler.Get)
		itemGroup.PUT("/:id", r.itemHandler.Update)
		itemGroup.DELETE("/:id", r.itemHandler.Delete)
	}

	// Photo uploads get their own body limit with headroom over the photo
	// size cap, so the application-level check decides, not the transport.
	photoGroup := e.Group("/photos", echomiddleware.BodyLimit(photoBodyLimit(r.cfg)))
	{
		photoGroup.POST("", r.photoHandler.Upload)
	}

	// Stored photos are served straight from the upload directory.
	if r.cfg.Upload != nil {
		e.Static(r.cfg.Upload.PublicPath, r.cfg.Upload.Dir)
	}
}

func photoBodyLimit(cfg *config.Config) string {
	var maxPhotoSize int64
	if cfg.Upload != nil {
		maxPhotoSize = cfg.Upload.MaxPhotoSize
	}
	if maxPhotoSize <= 0 {
		return cfg.HTTP.MaxRequestBodySize
	}

	// Double the cap to leave room for multipart framing.
	return strconv.FormatInt(maxPhotoSize*2, 10)
}
