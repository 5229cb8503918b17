// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coshare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AssetHandler       *handler.AssetHandler
	ValuationHandler   *handler.ValuationHandler
	SyndicateHandler   *handler.SyndicateHandler
	SchedulingHandler  *handler.SchedulingHandler
	ReservationHandler *handler.ReservationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	assetHandler       *handler.AssetHandler
	valuationHandler   *handler.ValuationHandler
	syndicateHandler   *handler.SyndicateHandler
	schedulingHandler  *handler.SchedulingHandler
	reservationHandler *handler.ReservationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		assetHandler:       params.AssetHandler,
		valuationHandler:   params.ValuationHandler,
		syndicateHandler:   params.SyndicateHandler,
		schedulingHandler:  params.SchedulingHandler,
		reservationHandler: params.ReservationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes, the acting user comes from X-User-Id
	apiV1 := e.Group("/api/v1")

	apiV1.GET("/currencies", r.valuationHandler.Currencies)
	apiV1.GET("/portfolio", r.assetHandler.Portfolio)

	assetsGroup := apiV1.Group("/assets")
	{
		assetsGroup.GET("", r.assetHandler.ListAssets)
		assetsGroup.POST("", r.assetHandler.CreateAsset)
		assetsGroup.GET("/featured", r.assetHandler.FeaturedAssets)
		assetsGroup.GET("/:id", r.assetHandler.GetAsset)
		assetsGroup.GET("/:id/similar", r.assetHandler.SimilarAssets)
		assetsGroup.GET("/:id/valuation", r.valuationHandler.Quote)
		assetsGroup.POST("/:id/syndicates", r.syndicateHandler.CreateSyndicate)
		assetsGroup.GET("/:id/availability", r.schedulingHandler.Availability)
		assetsGroup.POST("/:id/bookings", r.schedulingHandler.RequestBooking)
	}

	syndicatesGroup := apiV1.Group("/syndicates")
	{
		syndicatesGroup.GET("/:id", r.syndicateHandler.GetSyndicate)
		syndicatesGroup.GET("/:id/qr", r.syndicateHandler.InviteQR)
	}

	apiV1.POST("/reservations", r.reservationHandler.Reserve)
}
