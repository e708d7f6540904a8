package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

const serviceName = "portfoliosense-api"

// NewRouter assembles the API surface. The bare GET /api/:id generation of
// the contract is registered last so the fixed routes win.
func NewRouter(
	portfolioHandler *PortfolioHandler,
	sessionHandler *SessionHandler,
	mediaHandler *MediaHandler,
	allowedOrigins []string,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(CORSMiddleware(allowedOrigins))
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionHandler.StartSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id/sections/:name", sessionHandler.UpdateSection)
			sessions.POST("/:id/advance", sessionHandler.Advance)
			sessions.POST("/:id/retreat", sessionHandler.Retreat)
			sessions.POST("/:id/submit", sessionHandler.Submit)
			sessions.POST("/:id/reset", sessionHandler.Reset)
			sessions.DELETE("/:id", sessionHandler.Abandon)
		}

		pf := api.Group("/portfolio")
		{
			pf.POST("/generate", portfolioHandler.GeneratePortfolio)
			pf.GET("/:id", portfolioHandler.GetPortfolio)
			pf.GET("/:id/view", portfolioHandler.ViewPortfolio)
		}

		api.POST("/media/upload", mediaHandler.UploadAsset)

		// Legacy flat contract.
		api.POST("/generate", portfolioHandler.GenerateLegacy)
		api.GET("/:id", portfolioHandler.GetPortfolio)
	}

	return router
}
