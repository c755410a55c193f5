package router

import (
	"github.com/labstack/echo/v4"

	calCtrlImp "krishi/pkg/calendar/controllerImp"
	geoCtrlImp "krishi/pkg/geography/controllerImp"
	healthCtrlImp "krishi/pkg/health/controllerImp"
	marketCtrlImp "krishi/pkg/market/controllerImp"
	"krishi/pkg/middleware"
	profCtrlImp "krishi/pkg/profile/controllerImp"
)

func New(
	e *echo.Echo,
	marketCtrl *marketCtrlImp.MarketCtrl,
	geoCtrl *geoCtrlImp.GeoCtrl,
	calCtrl *calCtrlImp.CalendarCtrl,
	profCtrl *profCtrlImp.ProfileCtrl,
	healthCtrl *healthCtrlImp.HealthCtrl,
	jwtSecret string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// price endpoints (source-compatible /scrape-all plus structured search)
	e.GET("/scrape-all", marketCtrl.ScrapeAll)
	e.GET("/prices/search", marketCtrl.Search)

	e.GET("/geography", geoCtrl.Geography)
	e.GET("/geography/districts", geoCtrl.Districts)

	cal := e.Group("/calendar")
	cal.GET("/events", calCtrl.Events)
	cal.POST("/events/:key/note", calCtrl.Note)
	cal.POST("/events/:key/reminder", calCtrl.Reminder)
	cal.POST("/events/:key/highlight", calCtrl.Highlight)
	cal.GET("/export", calCtrl.Export)

	e.POST("/profile", profCtrl.Create)
	e.GET("/profile/:id", profCtrl.Get)
	e.PUT("/profile/:id", profCtrl.Update)

	auth := e.Group("/api/auth", middleware.RequireBearer(jwtSecret))
	auth.GET("/dashboard", profCtrl.Dashboard)

	return e
}
