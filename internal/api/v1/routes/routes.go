package routes

import (
	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/v1/handlers"
	"interview-coach/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Interview routes
	interviewHandler := handlers.NewInterviewHandler(container.InterviewService)
	interviews := router.Group("/interviews")
	{
		interviews.POST("", interviewHandler.Start)
		interviews.GET("", interviewHandler.List)
		interviews.GET("/:id", interviewHandler.Get)
		interviews.POST("/:id/answers", interviewHandler.SubmitAnswer)
		interviews.POST("/:id/audio-answers", interviewHandler.SubmitAudioAnswer)
	}

	// Speech routes
	if container.SpeechService != nil {
		speechHandler := handlers.NewSpeechHandler(container.SpeechService)
		router.POST("/transcriptions", speechHandler.Transcribe)
		router.POST("/speech", speechHandler.Speak)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	InterviewService services.InterviewService
	SpeechService    services.SpeechService
}
