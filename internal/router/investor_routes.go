package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/handler"
	"github.com/iliyamo/investor-portal/internal/middleware"
)

// RegisterInvestor registers investor-scoped endpoints under /v1. All
// routes require a valid JWT; admins may call them too, acting on their
// own profile.
func RegisterInvestor(e *echo.Echo, prof *handler.ProfileHandler, inv *handler.InvestmentHandler, sale *handler.ShareSaleHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("user", "admin"),
	)

	g.GET("/profile", prof.Get)
	g.PUT("/profile", prof.Update)

	g.POST("/investments", inv.Create)
	g.GET("/investments", inv.List)
	g.POST("/investments/:id/proof", inv.UploadProof)
	g.GET("/dashboard", inv.Dashboard)

	g.POST("/share-sales", sale.Create)
	g.GET("/share-sales", sale.List)
}
