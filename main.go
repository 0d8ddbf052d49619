package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"summarize-api/api/router"
	"summarize-api/config"
	_ "summarize-api/docs" // swag generated package
	"summarize-api/fetcher"
	"summarize-api/internal/logger"
	"summarize-api/quota"
	"summarize-api/summarizer"
)

// @title           Summarize API
// @version         1.0
// @description     API to summarize text, webpages, and PDF documents using Gemini
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	apiKey := config.GetAPIKey()
	if apiKey == "" {
		logger.Log.Errorf("%s is not set; refusing to start", config.GeminiAPIKeyEnv)
		os.Exit(1)
	}

	invoker, err := summarizer.NewGeminiInvoker(context.Background(), apiKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Errorf("failed to initialize Gemini client: %v", err)
		os.Exit(1)
	}

	svc := summarizer.NewService(
		invoker,
		fetcher.New(cfg.Fetch),
		quota.NewLimiterFromConfig(cfg.SummaryQuota),
		cfg.Pipeline.PDFStrategy,
	)

	r := router.New(svc, cfg.Server)
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	addr := cfg.Server.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("summarize-api listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
