package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"homescout/internal/config"
	"homescout/internal/dataset"
	"homescout/internal/handler"
	"homescout/internal/repository"
	"homescout/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("AI Property Discovery backend")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	configureLogger(logger, cfg.Logging)
	gin.SetMode(cfg.Server.GinMode)

	// Build the joined listing snapshot once at startup. A missing source
	// file or unresolvable join key is fatal: the process must not serve
	// search traffic partially initialized.
	store := dataset.NewStore(cfg.Data.Dir, dataset.SourceFiles{
		Project:       cfg.Data.ProjectFile,
		Address:       cfg.Data.AddressFile,
		Configuration: cfg.Data.ConfigurationFile,
		Variant:       cfg.Data.VariantFile,
	})
	snap, err := store.Reload()
	if err != nil {
		logger.WithError(err).Fatal("Failed to build listing table")
	}
	logger.WithField("listings", snap.Len()).Info("Listing table ready")

	// Optional search log, enabled only when a DSN is configured.
	var searchLog *repository.SearchLogRepository
	if cfg.Postgres.DSN != "" {
		searchLog, err = repository.NewSearchLogRepository(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to search log database")
		}
		defer searchLog.Close()
		logger.Info("Search log enabled")
	}

	openaiClient := service.NewOpenAIClient(&cfg.OpenAI)
	if cfg.OpenAI.Enabled {
		logger.WithFields(logrus.Fields{
			"api_base": cfg.OpenAI.APIBase,
			"model":    cfg.OpenAI.ChatModel,
		}).Info("Language model client initialized")
	} else {
		logger.Warn("OPENAI_API_KEY is not set - queries will be served without filter extraction")
	}

	extractor := service.NewFilterExtractor(openaiClient, logger)
	summarizer := service.NewSummarizer(openaiClient, logger)
	engine := service.NewQueryEngine(cfg.Search.EmptyFilterLimit)
	searchService := service.NewSearchService(
		store, engine, extractor, summarizer, searchLog, cfg.Search.MaxResults, logger,
	)
	searchHandler := handler.NewSearchHandler(searchService, Version, logger)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/", searchHandler.Health)
	router.POST("/search", searchHandler.Search)
	router.POST("/refresh", searchHandler.Refresh)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("addr", addr).Info("Starting server")

	go func() {
		if err := router.Run(addr); err != nil {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
}

func configureLogger(logger *logrus.Logger, cfg config.LoggingConfig) {
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}
