package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"summarize-api/api/handlers"
	"summarize-api/api/middleware"
	"summarize-api/config"
	_ "summarize-api/docs"
)

// New wires the gin engine: health check, swagger, and the summarization
// routes behind the trace and size-guard middleware.
func New(svc handlers.SummaryService, serverCfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	api.Use(middleware.SizeLimit(serverCfg.MaxRequestSizeBytes()))
	{
		api.POST("/summarize/url", handlers.SummarizeURLHandler(svc))
		api.POST("/summarize/text", handlers.SummarizeTextHandler(svc))
		api.POST("/summarize/pdf", handlers.SummarizePDFHandler(svc))
	}

	return r
}
