package interview

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/lock"
	"interview-coach/internal/app/logging"
	"interview-coach/internal/app/model"
	"interview-coach/internal/app/repository"
	"interview-coach/internal/app/speech"
	"interview-coach/internal/app/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// DefaultCoachingPlaceholder replaces coaching text when the coach fails
	DefaultCoachingPlaceholder = "Coaching feedback is unavailable for this answer. Keep going, you're doing fine."
)

// Dependencies are the collaborators an Orchestrator drives.
// Transcriber, Synthesizer and Audio may be nil.
type Dependencies struct {
	Store       repository.SessionRepository
	Interviewer QuestionGenerator
	Evaluator   AnswerEvaluator
	Coach       FeedbackCoach
	Transcriber api.Transcriber
	Synthesizer api.Synthesizer
	Audio       storage.AudioStore
	Locker      lock.Locker
	Metrics     Metrics
}

// Options tune the orchestrator
type Options struct {
	DefaultQuestionLimit int
	CoachingPlaceholder  string
}

// StartRequest describes a new interview. Blank fields take the defaults.
type StartRequest struct {
	Company       string
	Position      string
	Difficulty    string
	QuestionLimit int
}

// StartResult is returned by StartSession
type StartResult struct {
	SessionID     string
	Question      string
	AudioURL      string
	QuestionLimit int
}

// Answer is either typed text or recorded audio
type Answer struct {
	Text     string
	Audio    []byte
	Filename string
}

// TurnResult is the outcome of one answered question
type TurnResult struct {
	SessionID         string
	TurnID            int64
	Question          string
	AnswerText        string
	Evaluation        model.ScoreReport
	CoachFeedback     string
	CoachingDegraded  bool
	NextQuestion      string
	AudioURL          string
	Completed         bool
	QuestionsAnswered int
	QuestionLimit     int
}

// SessionDetail is a session with its recorded turns
type SessionDetail struct {
	Session *model.Session
	Turns   []model.Turn
}

// Orchestrator runs interview turns. It holds no per-session state; every
// call reads the store and commits before returning.
type Orchestrator struct {
	store       repository.SessionRepository
	interviewer QuestionGenerator
	evaluator   AnswerEvaluator
	coach       FeedbackCoach
	transcriber api.Transcriber
	synthesizer api.Synthesizer
	audio       storage.AudioStore
	locker      lock.Locker
	metrics     Metrics
	logger      *zap.Logger
	opts        Options

	now   func() time.Time
	newID func() string
}

// NewOrchestrator creates an orchestrator. A nil locker falls back to an
// in-process one and nil metrics to a no-op recorder.
func NewOrchestrator(deps Dependencies, opts Options, logger *zap.Logger) *Orchestrator {
	if opts.DefaultQuestionLimit <= 0 {
		opts.DefaultQuestionLimit = model.DefaultQuestionLimit
	}
	if strings.TrimSpace(opts.CoachingPlaceholder) == "" {
		opts.CoachingPlaceholder = DefaultCoachingPlaceholder
	}
	if deps.Locker == nil {
		deps.Locker = lock.NewLocalLocker()
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		store:       deps.Store,
		interviewer: deps.Interviewer,
		evaluator:   deps.Evaluator,
		coach:       deps.Coach,
		transcriber: deps.Transcriber,
		synthesizer: deps.Synthesizer,
		audio:       deps.Audio,
		locker:      deps.Locker,
		metrics:     deps.Metrics,
		logger:      logger,
		opts:        opts,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// StartSession generates the first question and persists a new session
func (o *Orchestrator) StartSession(ctx context.Context, req StartRequest) (result *StartResult, err error) {
	defer o.recordFailure("start_session", &err)

	if req.QuestionLimit < 0 {
		return nil, apperrors.ErrInvalidQuestionCap
	}
	limit := req.QuestionLimit
	if limit == 0 {
		limit = o.opts.DefaultQuestionLimit
	}

	now := o.now()
	session := model.NewSession(o.newID(), req.Company, req.Position, req.Difficulty, limit, now)
	log := logging.Session(o.logger, session.ID)

	question, err := o.nextQuestion(ctx, session)
	if err != nil {
		return nil, err
	}
	session.AskQuestion(question)

	if err := o.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	o.metrics.SessionStarted()
	log.Info("interview started",
		zap.String("company", session.Company),
		zap.String("position", session.Position),
		zap.String("difficulty", session.Difficulty),
		zap.Int("question_limit", session.QuestionLimit))

	return &StartResult{
		SessionID:     session.ID,
		Question:      question,
		AudioURL:      o.speakQuestion(ctx, session, question),
		QuestionLimit: session.QuestionLimit,
	}, nil
}

// SubmitAnswer evaluates the answer to the pending question, records the
// turn and asks the next question unless the interview is over.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, sessionID string, answer Answer) (result *TurnResult, err error) {
	defer o.recordFailure("submit_answer", &err)

	release, acquired, err := o.locker.TryLock(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, "acquire turn guard")
	}
	if !acquired {
		return nil, apperrors.ErrTurnInProgress
	}
	defer release()

	session, err := o.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsComplete() {
		return nil, apperrors.ErrSessionComplete
	}
	question, ok := session.PendingQuestion()
	if !ok {
		return nil, apperrors.ErrNoPendingQuestion
	}
	log := logging.Session(o.logger, sessionID)

	text := answer.Text
	if len(answer.Audio) > 0 {
		text, err = o.Transcribe(ctx, answer.Audio, answer.Filename)
		if err != nil {
			return nil, err
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrEmptyAnswer
	}

	started := time.Now()
	report, err := o.evaluator.Evaluate(ctx, question, text)
	o.metrics.ObserveProvider("evaluate", started, err)
	if err != nil {
		return nil, providerFailure(apperrors.ErrEvaluationUnavailable, err)
	}

	feedback, degraded := o.feedback(ctx, log, report)

	updated := session.Clone()
	updated.RecordAnswer(text)
	updated.UpdatedAt = o.now()

	var next string
	if !updated.IsComplete() {
		next, err = o.nextQuestion(ctx, updated)
		if err != nil {
			return nil, err
		}
		updated.AskQuestion(next)
	}

	turn := model.NewTurn(sessionID, question, text, report, feedback, updated.UpdatedAt)
	if err := o.store.CommitTurn(ctx, updated, session.Revision, turn); err != nil {
		return nil, err
	}
	completed := updated.IsComplete()
	o.metrics.TurnCompleted(completed)
	log.Info("turn recorded",
		zap.Int64("turn_id", turn.ID),
		zap.Int("questions_answered", updated.QuestionsAnswered),
		zap.Int("question_limit", updated.QuestionLimit),
		zap.Float64("average_score", report.Average()),
		zap.Bool("completed", completed))

	result = &TurnResult{
		SessionID:         sessionID,
		TurnID:            turn.ID,
		Question:          question,
		AnswerText:        text,
		Evaluation:        report,
		CoachFeedback:     feedback,
		CoachingDegraded:  degraded,
		NextQuestion:      next,
		Completed:         completed,
		QuestionsAnswered: updated.QuestionsAnswered,
		QuestionLimit:     updated.QuestionLimit,
	}
	if next != "" {
		result.AudioURL = o.speakQuestion(ctx, updated, next)
	}
	return result, nil
}

// GetSession returns a session and its turns
func (o *Orchestrator) GetSession(ctx context.Context, sessionID string) (*SessionDetail, error) {
	session, err := o.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := o.store.ListTurns(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: session, Turns: turns}, nil
}

// ListSessions returns the most recent sessions, newest first
func (o *Orchestrator) ListSessions(ctx context.Context, limit int) ([]*model.Session, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	sessions, err := o.store.ListSessions(ctx, limit)
	if err != nil {
		return nil, err
	}
	return lo.ToSlicePtr(sessions), nil
}

// Transcribe converts recorded speech to text
func (o *Orchestrator) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if o.transcriber == nil {
		return "", apperrors.WithCause(apperrors.ErrProviderNotConfigured, apperrors.New("no transcription backend"))
	}
	if len(audio) == 0 {
		return "", apperrors.InvalidField("audio", "empty")
	}

	started := time.Now()
	text, err := o.transcriber.Transcribe(ctx, audio, filename)
	o.metrics.ObserveProvider("transcribe", started, err)
	if err != nil {
		return "", providerFailure(apperrors.ErrTranscriptionFailed, err)
	}
	return strings.TrimSpace(text), nil
}

// Speak sanitizes text and synthesizes it
func (o *Orchestrator) Speak(ctx context.Context, text string) (*model.AudioClip, error) {
	if o.synthesizer == nil {
		return nil, apperrors.WithCause(apperrors.ErrProviderNotConfigured, apperrors.New("no speech backend"))
	}
	clean := speech.SanitizeForSpeech(text)
	if clean == "" {
		return nil, apperrors.InvalidField("text", "nothing to speak")
	}

	started := time.Now()
	clip, err := o.synthesizer.Synthesize(ctx, clean)
	o.metrics.ObserveProvider("synthesize", started, err)
	if err != nil {
		return nil, providerFailure(apperrors.ErrSynthesisFailed, err)
	}
	return clip, nil
}

func (o *Orchestrator) nextQuestion(ctx context.Context, session *model.Session) (string, error) {
	started := time.Now()
	question, err := o.interviewer.NextQuestion(ctx, session.Context(), session.Transcript)
	o.metrics.ObserveProvider("question", started, err)
	if err != nil {
		return "", providerFailure(apperrors.ErrQuestionUnavailable, err)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperrors.WithCause(apperrors.ErrQuestionUnavailable, apperrors.ErrResponseInvalid)
	}
	return question, nil
}

func (o *Orchestrator) feedback(ctx context.Context, log *zap.Logger, report model.ScoreReport) (string, bool) {
	started := time.Now()
	feedback, err := o.coach.Feedback(ctx, report)
	o.metrics.ObserveProvider("coach", started, err)
	if err == nil && strings.TrimSpace(feedback) != "" {
		return feedback, false
	}
	if err == nil {
		err = apperrors.ErrResponseInvalid
	}
	log.Warn("coaching failed, using placeholder", zap.Error(err))
	o.metrics.Degraded("coaching")
	return o.opts.CoachingPlaceholder, true
}

// speakQuestion synthesizes and stores a question. Failures are logged and
// yield an empty reference.
func (o *Orchestrator) speakQuestion(ctx context.Context, session *model.Session, question string) string {
	if o.synthesizer == nil || o.audio == nil {
		return ""
	}
	log := logging.Session(o.logger, session.ID)

	clip, err := o.Speak(ctx, question)
	if err != nil {
		log.Warn("speech synthesis failed", zap.Error(err))
		o.metrics.Degraded("synthesis")
		return ""
	}

	name := fmt.Sprintf("%s/q%d-%s", session.ID, questionNumber(session), uuid.New().String()[:8])
	url, err := o.audio.Save(ctx, name, clip)
	if err != nil {
		log.Warn("storing question audio failed", zap.Error(err))
		o.metrics.Degraded("audio_store")
		return ""
	}
	return url
}

func (o *Orchestrator) recordFailure(operation string, err *error) {
	if *err != nil {
		o.metrics.Failed(operation, string(apperrors.KindOf(*err)))
	}
}

func questionNumber(session *model.Session) int {
	return lo.CountBy(session.Transcript, func(e model.TranscriptEntry) bool {
		return e.Speaker == model.SpeakerInterviewer
	})
}

// providerFailure keeps rate-limit and timeout kinds and otherwise reports
// the operation's own error.
func providerFailure(sentinel *apperrors.Error, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindProviderRateLimited, apperrors.KindProviderTimeout:
		return err
	}
	if stderrors.Is(err, sentinel) {
		return err
	}
	return apperrors.WithCause(sentinel, err)
}
