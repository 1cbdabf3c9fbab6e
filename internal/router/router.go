package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/placeready/placeready-backend/internal/config"
	"github.com/placeready/placeready-backend/internal/handler"
	"github.com/placeready/placeready-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student    *handler.StudentHandler
	Aptitude   *handler.AptitudeHandler
	SoftSkills *handler.SoftSkillsHandler
	Resume     *handler.ResumeHandler
	Company    *handler.CompanyHandler
	Analytics  *handler.AnalyticsHandler
	WS         *handler.WSHandler
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
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── API v1 ────────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.GET("/students", handlers.Student.ListStudents)
		api.GET("/students/:id", handlers.Student.GetStudent)

		api.GET("/aptitude/questions", handlers.Aptitude.GetQuestions)
		api.POST("/aptitude/submit", handlers.Aptitude.SubmitTest)

		api.GET("/soft-skills/questions", handlers.SoftSkills.GetQuestions)
		api.POST("/soft-skills/submit", handlers.SoftSkills.SubmitTest)

		api.POST("/resume/analyze", handlers.Resume.AnalyzeResume)

		api.GET("/companies", handlers.Company.ListCompanies)
		api.GET("/company-matches/:id", handlers.Company.GetMatches)

		api.GET("/analytics/cohort", handlers.Analytics.GetCohortSummary)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/analytics/stream", handlers.WS.AnalyticsStream)
	}

	return router
}
