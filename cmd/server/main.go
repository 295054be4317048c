package main

// @title           Shelfmate Catalog API
// @version         1.0
// @description     Catalog service for books, authors, genres, ratings and users.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shelfmate/catalog/internal/auth"
	"github.com/shelfmate/catalog/internal/config"
	"github.com/shelfmate/catalog/internal/db"
	"github.com/shelfmate/catalog/internal/docs"
	"github.com/shelfmate/catalog/internal/handler"
	"github.com/shelfmate/catalog/internal/middleware"
	"github.com/shelfmate/catalog/internal/repository"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	godotenv.Load()

	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "catalog").Logger()
	log.Logger = logger

	gin.SetMode(cfg.GinMode)

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger(logger))

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/api"

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}

	if err := db.Migrate(database); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	requireAuth := middleware.RequireAuth(tokens)

	healthHandler := handler.NewHealthHandler(database, logger, startTime, "catalog", appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		books := repository.NewGormBookRepository(database)
		ratings := repository.NewGormRatingRepository(database)

		handler.NewBookHandler(books, ratings).RegisterRoutes(api, requireAuth)
		handler.NewAuthorHandler(repository.NewGormAuthorRepository(database)).RegisterRoutes(api)
		handler.NewGenreHandler(repository.NewGormGenreRepository(database)).RegisterRoutes(api)
		handler.NewUserHandler(repository.NewGormUserRepository(database), tokens).RegisterRoutes(api, requireAuth)
		handler.NewStatsHandler(repository.NewGormStatsRepository(database)).RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info().Str("addr", cfg.Addr).Msg("starting server")

	if err := e.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
