package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/errors"
	"interview-coach/internal/api/middleware"
	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/api/v1/services"
)

// CompatHandler serves the unversioned routes the browser frontend calls
type CompatHandler struct {
	interviews *InterviewHandler
	service    services.InterviewService
}

// NewCompatHandler creates a new compat handler
func NewCompatHandler(service services.InterviewService) *CompatHandler {
	return &CompatHandler{
		interviews: NewInterviewHandler(service),
		service:    service,
	}
}

// StartInterview handles POST /start-interview
func (h *CompatHandler) StartInterview(c *gin.Context) {
	var req dto.StartInterviewRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.StartInterview(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	middleware.TagSession(c, response.SessionID)
	c.JSON(http.StatusOK, response)
}

// SubmitAnswer handles POST /submit-answer with the session id in the body
func (h *CompatHandler) SubmitAnswer(c *gin.Context) {
	var req dto.CompatSubmitAnswerRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	middleware.TagSession(c, req.SessionID)

	response, err := h.service.SubmitAnswer(c.Request.Context(), req.SessionID, &dto.SubmitAnswerRequest{AnswerText: req.AnswerText})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSession handles GET /session/:id. Turns are returned under "logs".
func (h *CompatHandler) GetSession(c *gin.Context) {
	response, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": response.Session,
		"logs":    response.Turns,
	})
}

// ProcessAudioTurn handles POST /process-audio-turn with multipart
// session_id and audio_file fields
func (h *CompatHandler) ProcessAudioTurn(c *gin.Context) {
	if err := parseUpload(c); err != nil {
		middleware.HandleError(c, err)
		return
	}

	sessionID := strings.TrimSpace(c.PostForm("session_id"))
	if sessionID == "" {
		middleware.HandleError(c, errors.NewValidationError("Validation failed", map[string]string{
			"session_id": "is required",
		}))
		return
	}
	middleware.TagSession(c, sessionID)

	h.interviews.processAudio(c, sessionID)
}
