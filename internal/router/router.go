package router

import (
	"github.com/gin-gonic/gin"

	"resumeiq/internal/handler"
	"resumeiq/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	analysisH *handler.AnalysisHandler,
	chatH *handler.ChatHandler,
	historyH *handler.HistoryHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Liveness
	r.GET("/", healthH.Root)
	r.GET("/healthz", healthH.Liveness)

	// Document analysis
	r.POST("/upload_resume", analysisH.UploadResume)
	r.POST("/predict_job_role", analysisH.PredictJobRole)
	r.POST("/analyze_skills", analysisH.AnalyzeSkills)

	// Chat
	r.POST("/httpchat", chatH.HTTPChat)
	r.GET("/chat", chatH.WebsocketChat)

	// Analysis history
	r.GET("/analyses", historyH.List)
	r.GET("/analyses/export", historyH.Export)

	return r
}
