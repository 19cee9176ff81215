package routes

import (
	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/v1/handlers"
)

// RegisterCompatRoutes registers the unversioned routes used by the
// browser frontend
func RegisterCompatRoutes(router gin.IRoutes, container *ServiceContainer) {
	compat := handlers.NewCompatHandler(container.InterviewService)

	router.POST("/start-interview", compat.StartInterview)
	router.POST("/submit-answer", compat.SubmitAnswer)
	router.GET("/session/:id", compat.GetSession)
	router.POST("/process-audio-turn", compat.ProcessAudioTurn)

	if container.SpeechService != nil {
		speech := handlers.NewSpeechHandler(container.SpeechService)
		router.POST("/transcribe", speech.Transcribe)
		router.POST("/speak", speech.Speak)
	}
}
