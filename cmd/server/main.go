package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/mvoronin/estate-keeper/internal/adapter"
	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/config"
	myHTTP "github.com/mvoronin/estate-keeper/internal/handler/http"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/server"
	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// missing .env is fine, real deployments configure the environment
	_ = godotenv.Load()

	log := logger.NewLogger("estate-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	portfolioCache := cache.NewNopPortfolioCache()
	if cfg.Storage.Cache.RedisAddr != "" {
		portfolioCache, err = cache.NewPortfolioCache(ctx, cfg.Storage.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
	}

	var fetcher service.ListingFetcher
	if cfg.Scraper.BaseURL != "" {
		fetcher = adapter.NewListingScraper(cfg.Scraper, log)
	}

	services := service.NewServices(repos, portfolioCache, fetcher, *cfg, log)

	handler := myHTTP.NewHandler(services, buildVersion, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
