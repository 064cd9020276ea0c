package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/config"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/handler"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/middleware"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Flow   *handler.FlowHandler
	Report *handler.ReportHandler
	Panel  *handler.PanelHandler
	Live   *handler.LiveHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID", middleware.SessionHeader, middleware.PanelTokenHeader}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for step submissions (60 requests per minute per IP).
	stepLimiter := middleware.NewRateLimiter(60, time.Minute)

	// ─── 1. Assessment Group ───────────────────────────────────────────
	// Registration is the only public step; every later step resolves the
	// caller's session token.
	assessment := router.Group("/api/v1/assessment")
	assessment.Use(stepLimiter.Middleware())
	{
		assessment.POST("/registration", handlers.Flow.Register)

		steps := assessment.Group("")
		steps.Use(middleware.RequireSession())
		{
			steps.POST("/interests", handlers.Flow.SubmitInterests)
			steps.POST("/self-efficacy", handlers.Flow.SubmitSelfEfficacy)
			steps.GET("/interpretation", handlers.Flow.Interpretation)
			steps.POST("/reflection", handlers.Flow.SubmitReflection)
			steps.GET("/close", handlers.Flow.Close)
			steps.GET("/session", handlers.Flow.Session)
		}
	}

	// ─── 2. Report Group (Session) ─────────────────────────────────────
	reportAPI := router.Group("/api/v1/report")
	reportAPI.Use(middleware.RequireSession())
	{
		reportAPI.GET("", handlers.Report.GetView)
		reportAPI.GET("/document", handlers.Report.Download)
	}

	// ─── 3. Panel Group (Shared Token) ─────────────────────────────────
	panelAPI := router.Group("/api/v1/panel")
	panelAPI.Use(middleware.RequirePanelToken(cfg.PanelToken))
	{
		panelAPI.GET("/submissions", handlers.Panel.List)
		panelAPI.GET("/export", handlers.Panel.Export)
	}

	// ─── 4. WebSocket Group (Shared Token) ─────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequirePanelToken(cfg.PanelToken))
	{
		ws.GET("/panel/live", handlers.Live.LiveFeed)
	}

	return router
}
