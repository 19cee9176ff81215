package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/middleware"
	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/api/v1/services"
)

// SpeechHandler handles stand-alone transcription and synthesis
type SpeechHandler struct {
	service services.SpeechService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(service services.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		service: service,
	}
}

// Transcribe handles POST /api/v1/transcriptions
//
// @Summary Transcribe a recording
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscriptionResponse "Recognised text"
// @Failure 400 {object} errors.APIError "No file uploaded"
// @Failure 429 {object} errors.APIError "Provider rate limit exceeded"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /transcriptions [post]
func (h *SpeechHandler) Transcribe(c *gin.Context) {
	audio, filename, err := readUpload(c, "file")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), audio, filename)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Speak handles POST /api/v1/speech
//
// @Summary Synthesize speech
// @Description Markdown is stripped before synthesis. Returns the audio bytes.
// @Tags speech
// @Accept json
// @Produce audio/mpeg
// @Param speech body dto.SpeechRequest true "Text to speak"
// @Success 200 {file} binary "Synthesized audio"
// @Failure 400 {object} errors.APIError "Nothing to speak"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Synthesis failed"
// @Router /speech [post]
func (h *SpeechHandler) Speak(c *gin.Context) {
	var req dto.SpeechRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	clip, err := h.service.Speak(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="speech`+clip.Extension+`"`)
	c.Data(http.StatusOK, clip.ContentType, clip.Data)
}
