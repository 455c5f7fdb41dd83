package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/config"
	"github.com/iliyamo/investor-portal/internal/database"
	"github.com/iliyamo/investor-portal/internal/handler"
	"github.com/iliyamo/investor-portal/internal/metrics"
	"github.com/iliyamo/investor-portal/internal/middleware"
	"github.com/iliyamo/investor-portal/internal/notify"
	"github.com/iliyamo/investor-portal/internal/pricefeed"
	"github.com/iliyamo/investor-portal/internal/queue"
	"github.com/iliyamo/investor-portal/internal/repository"
	"github.com/iliyamo/investor-portal/internal/router"
	"github.com/iliyamo/investor-portal/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: cache and rate limiting degrade to no-ops when
	// the client is nil.
	rdb := config.NewRedisClient()

	// Object storage is optional too; uploads answer 503 without it.
	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Printf("object storage disabled: %v", err)
		store = nil
	}

	profiles := repository.NewProfileRepo(db)
	tokens := repository.NewTokenRepo(db)
	investments := repository.NewInvestmentRepo(db)
	confirmations := repository.NewConfirmationRepo(db)
	income := repository.NewIncomeRepo(db)
	shareSales := repository.NewShareSaleRepo(db)
	settings := repository.NewSettingsRepo(db)
	content := repository.NewContentRepo(db)
	emails := repository.NewAdminEmailRepo(db)
	metricsRepo := repository.NewMetricsRepo(db)

	mailer := notify.NewMailer(cfg)
	if !mailer.Configured() {
		log.Println("smtp not configured; admin notifications will be dropped")
	}
	go func() {
		if err := queue.StartNotificationConsumer(emails, mailer); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	syncer := metrics.NewSyncer(cfg.MetricsAPIURL, metricsRepo)
	feed := pricefeed.New(cfg.PriceAPIURL, rdb)

	authH := handler.NewAuthHandler(cfg, profiles, tokens)
	profileH := handler.NewProfileHandler(profiles)
	investmentH := handler.NewInvestmentHandler(profiles, investments, confirmations, income, store)
	shareSaleH := handler.NewShareSaleHandler(profiles, investments, income, shareSales)
	publicH := handler.NewPublicHandler(settings, content, metricsRepo, feed, store)
	adminH := handler.NewAdminHandler(profiles, investments, confirmations, income,
		shareSales, settings, content, emails, syncer, store)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheMW)
	router.RegisterInvestor(e, profileH, investmentH, shareSaleH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
