package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"krishi/config"
	"krishi/database"
	"krishi/router"

	// Market prices
	marketCtrlImp "krishi/pkg/market/controllerImp"
	"krishi/pkg/market/fetcher"
	marketRepoImp "krishi/pkg/market/repositoryImp"
	marketSvcImp "krishi/pkg/market/serviceImp"

	// Geography
	"krishi/pkg/geography"
	geoCtrlImp "krishi/pkg/geography/controllerImp"

	// Calendar
	"krishi/pkg/calendar"
	calCtrlImp "krishi/pkg/calendar/controllerImp"
	"krishi/pkg/store"

	// Profiles
	profCtrlImp "krishi/pkg/profile/controllerImp"
	profRepoImp "krishi/pkg/profile/repositoryImp"

	// Health + background refresh
	healthCtrlImp "krishi/pkg/health/controllerImp"
	"krishi/pkg/scheduler"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Price fetchers: government API first, scraper as fallback source
	gov := fetcher.NewDataGov(cfg.DataGovURL, cfg.DataGovAPIKey, cfg.FetchLimit)
	scr := fetcher.NewScraper(cfg.ScrapeURL)

	snapRepo := marketRepoImp.New(db)
	marketSvc := marketSvcImp.New(snapRepo, cfg.CacheTTL, gov, scr)
	mCtrl := marketCtrlImp.New(marketSvc)

	// 5) Geography catalog (file override, built-in fallback)
	geo := geography.Load(cfg.GeographyPath)
	gCtrl := geoCtrlImp.New(geo)

	// 6) Calendar catalog + annotation store + profiles
	catalog := calendar.LoadCatalog(cfg.CatalogPath)
	annStore := store.NewGorm(db)
	pRepo := profRepoImp.New(db)
	cCtrl := calCtrlImp.New(catalog, annStore, pRepo)
	pCtrl := profCtrlImp.New(pRepo, catalog)

	// 7) Health
	hCtrl := healthCtrlImp.NewHealthCtrl(db, snapRepo, gov.Name())

	// 8) Background price refresh
	sched := scheduler.New(marketSvc)
	if err := sched.Start(cfg.RefreshCron); err != nil {
		log.Printf("scheduler warn: %v", err)
	}
	defer sched.Stop()

	// 9) Router
	r := router.New(e, mCtrl, gCtrl, cCtrl, pCtrl, hCtrl, cfg.JWTSecret)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
