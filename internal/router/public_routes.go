package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/handler"
)

// RegisterPublic registers the unauthenticated marketing endpoints.
// They carry no JWT middleware and are the only routes behind the Redis
// response cache; caching authenticated responses would mix users, so
// the cache middleware is applied here and nowhere else.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("", cache)
	g.GET("/v1/settings/:key", p.GetSetting)
	g.GET("/v1/content/videos", p.ListVideos)
	g.GET("/v1/content/screenshots", p.ListScreenshots)
	g.GET("/v1/rates/usdt", p.USDTRate)
	g.GET("/v1/metrics/latest", p.LatestMetrics)
}
