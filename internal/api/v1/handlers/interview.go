package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/errors"
	"interview-coach/internal/api/middleware"
	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/api/v1/services"
)

// MaxUploadBytes caps uploaded recordings at the hosted transcription limit
const MaxUploadBytes = 25 << 20

// InterviewHandler handles interview-related API endpoints
type InterviewHandler struct {
	service services.InterviewService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(service services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		service: service,
	}
}

// Start handles POST /api/v1/interviews
// Starts a new mock interview and returns the first question
//
// @Summary Start an interview
// @Description Creates an interview session and generates the first question. Blank fields default to General / Software Engineer / Intermediate and 5 questions.
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body dto.StartInterviewRequest true "Interview settings"
// @Success 201 {object} dto.StartInterviewResponse "Interview started"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 429 {object} errors.APIError "Provider rate limit exceeded"
// @Failure 500 {object} errors.APIError "Provider or internal error"
// @Failure 504 {object} errors.APIError "Provider timeout"
// @Router /interviews [post]
func (h *InterviewHandler) Start(c *gin.Context) {
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
	c.JSON(http.StatusCreated, response)
}

// SubmitAnswer handles POST /api/v1/interviews/:id/answers
//
// @Summary Answer the pending question
// @Description Evaluates the answer, returns coaching feedback and the next question. next_question is null once the interview is complete.
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.SubmitAnswerRequest true "Typed answer"
// @Success 200 {object} dto.TurnResponse "Turn result"
// @Failure 404 {object} errors.APIError "Session not found"
// @Failure 409 {object} errors.APIError "Interview complete or answer already in progress"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 429 {object} errors.APIError "Provider rate limit exceeded"
// @Failure 500 {object} errors.APIError "Provider or internal error"
// @Failure 504 {object} errors.APIError "Provider timeout"
// @Router /interviews/{id}/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")
	middleware.TagSession(c, sessionID)

	var req dto.SubmitAnswerRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SubmitAnswer(c.Request.Context(), sessionID, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SubmitAudioAnswer handles POST /api/v1/interviews/:id/audio-answers
//
// @Summary Answer the pending question with a recording
// @Description Transcribes the recording and processes it as the answer. The response includes the recognised user_text.
// @Tags interviews
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param audio_file formData file true "Recorded answer"
// @Success 200 {object} dto.TurnResponse "Turn result"
// @Failure 400 {object} errors.APIError "No recording uploaded"
// @Failure 404 {object} errors.APIError "Session not found"
// @Failure 409 {object} errors.APIError "Interview complete or answer already in progress"
// @Failure 429 {object} errors.APIError "Provider rate limit exceeded"
// @Failure 500 {object} errors.APIError "Provider or internal error"
// @Router /interviews/{id}/audio-answers [post]
func (h *InterviewHandler) SubmitAudioAnswer(c *gin.Context) {
	sessionID := c.Param("id")
	middleware.TagSession(c, sessionID)
	h.processAudio(c, sessionID)
}

func (h *InterviewHandler) processAudio(c *gin.Context, sessionID string) {
	audio, filename, err := readUpload(c, "audio_file")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SubmitAudioAnswer(c.Request.Context(), sessionID, audio, filename)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/interviews/:id
//
// @Summary Get an interview
// @Description Returns the session with its transcript and every recorded turn
// @Tags interviews
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDetailResponse "Session details"
// @Failure 404 {object} errors.APIError "Session not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	response, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/v1/interviews
//
// @Summary List interviews
// @Description Lists the most recent sessions, newest first
// @Tags interviews
// @Produce json
// @Param limit query int false "Maximum sessions to return" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.SessionListResponse "Sessions"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	var query dto.ListSessionsQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListSessions(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// parseUpload parses the multipart form with the body capped, so an
// oversized upload is refused before it reaches memory or temp files
func parseUpload(c *gin.Context) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+1<<20)

	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewBadRequestError("File too large")
		}
		return errors.NewBadRequestError("Invalid multipart form")
	}
	return nil
}

// readUpload reads a multipart file field into memory
func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	if c.Request.MultipartForm == nil {
		if err := parseUpload(c); err != nil {
			return nil, "", err
		}
	}

	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, "", errors.NewBadRequestError("No file uploaded in field " + field)
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		return nil, "", errors.NewBadRequestError("File too large")
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes))
	if err != nil {
		return nil, "", errors.NewBadRequestError("Failed to read uploaded file")
	}
	if len(data) == 0 {
		return nil, "", errors.NewBadRequestError("Uploaded file is empty")
	}

	return data, header.Filename, nil
}
