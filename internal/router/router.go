// Package router wires HTTP routes to their handlers. Unauthenticated
// routes, investor routes and admin routes live in separate files so
// the middleware applied to each surface is visible at a glance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/handler"
	"github.com/iliyamo/investor-portal/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes. Register, login and the
// refresh endpoints need no session; /v1/me sits behind the JWT.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("user", "admin"))
	auth.GET("/me", a.Me)
}
