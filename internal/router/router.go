package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
)

// RegisterRoutes registers the operational endpoints that carry no
// authentication, caching or rate limiting: the health check used by
// load balancers and the Prometheus metrics scrape target.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterHotels registers the public hotel browse endpoints.  They are
// fronted by the Redis response cache so that repeated searches for the
// same location and date range within the TTL (30s by default) are
// served without touching the database.  Availability data may
// therefore lag reality by up to one TTL, which the booking admission
// path compensates for with its own authoritative check.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1/hotels", middleware.NewRedisCache(cacheCfg, rdb))
	// The static "id" segment takes priority over :location, so
	// /v1/hotels/id/42 never matches the search route.
	g.GET("/:location", h.SearchByLocation)
	g.GET("/id/:id", h.GetByID)
	g.GET("/id/:id/rooms", h.ListRooms)
}
