package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/handler"
	"github.com/iliyamo/investor-portal/internal/middleware"
)

// RegisterAdmin registers admin-scoped endpoints under /v1/admin. All
// routes require a valid JWT with the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	)

	// ---- Pledges ----
	g.GET("/investments", a.ListInvestments)
	g.GET("/investments/:id", a.GetInvestment)
	g.PUT("/investments/:id", a.ReviewInvestment)

	// ---- Income ----
	g.POST("/income", a.CreateIncome)
	g.GET("/income", a.ListIncome)

	// ---- Share sales ----
	g.GET("/share-sales", a.ListShareSales)
	g.PUT("/share-sales/:id", a.ReviewShareSale)

	// ---- Profiles ----
	g.GET("/profiles", a.ListProfiles)
	g.GET("/profiles/:id", a.GetProfile)
	g.PUT("/profiles/:id", a.UpdateProfile)
	g.DELETE("/profiles/:id", a.DeleteProfile)

	// ---- Settings ----
	g.PUT("/settings/:key", a.UpdateSetting)

	// ---- Marketing content ----
	g.GET("/videos", a.ListVideos)
	g.POST("/videos", a.UploadVideo)
	g.PUT("/videos/:id", a.ToggleVideo)
	g.PATCH("/videos/:id", a.ToggleVideo)
	g.DELETE("/videos/:id", a.DeleteVideo)
	g.GET("/screenshots", a.ListScreenshots)
	g.POST("/screenshots", a.UploadScreenshot)
	g.PUT("/screenshots/:id", a.ToggleScreenshot)
	g.PATCH("/screenshots/:id", a.ToggleScreenshot)
	g.DELETE("/screenshots/:id", a.DeleteScreenshot)

	// ---- Notification recipients ----
	g.GET("/emails", a.ListEmails)
	g.POST("/emails", a.CreateEmail)
	g.PUT("/emails/:id", a.ToggleEmail)
	g.PATCH("/emails/:id", a.ToggleEmail)
	g.DELETE("/emails/:id", a.DeleteEmail)

	// ---- Metrics sync ----
	g.POST("/metrics/sync", a.SyncMetrics)
}
