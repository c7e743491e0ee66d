package router

import (
	"github.com/gin-gonic/gin"

	"seosik/internal/handler"
	"seosik/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	analyzeH *handler.AnalyzeHandler,
	remoteH *handler.RemoteHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/analyze", analyzeH.Analyze)

	remote := v1.Group("/remote")
	remote.GET("/:folder/files", remoteH.ListFiles)
	remote.GET("/:folder/forms", remoteH.ListForms)

	return r
}
