package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"interview-coach/internal/api/server"
	v1routes "interview-coach/internal/api/v1/routes"
	"interview-coach/internal/api/v1/services"
	"interview-coach/internal/app/agent"
	"interview-coach/internal/app/api"
	"interview-coach/internal/app/api/gemini"
	"interview-coach/internal/app/api/openai"
	"interview-coach/internal/app/api/openai/chat"
	"interview-coach/internal/app/api/openai/speech"
	"interview-coach/internal/app/api/openai/whisper"
	"interview-coach/internal/app/api/whisper_cpp"
	"interview-coach/internal/app/audio"
	"interview-coach/internal/app/interview"
	"interview-coach/internal/app/lock"
	"interview-coach/internal/app/logging"
	"interview-coach/internal/app/metrics"
	"interview-coach/internal/app/repository"
	"interview-coach/internal/app/repository/pg"
	"interview-coach/internal/app/repository/sqlite"
	"interview-coach/internal/app/storage"
	"interview-coach/internal/config"
)

// Core is everything the command line needs to drive interviews without
// the HTTP server
type Core struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        *repository.SQLStore
	Orchestrator *interview.Orchestrator
	Metrics      *metrics.Recorder
}

// App is the fully wired HTTP application
type App struct {
	*Core
	Server *server.Server
}

var coreSet = wire.NewSet(
	provideLogger,
	provideStore,
	wire.Bind(new(repository.SessionRepository), new(*repository.SQLStore)),
	provideCompleter,
	agent.NewInterviewer,
	agent.NewEvaluator,
	agent.NewCoach,
	wire.Bind(new(interview.QuestionGenerator), new(*agent.Interviewer)),
	wire.Bind(new(interview.AnswerEvaluator), new(*agent.Evaluator)),
	wire.Bind(new(interview.FeedbackCoach), new(*agent.Coach)),
	provideTranscriber,
	provideSynthesizer,
	provideAudioStore,
	provideLocker,
	metrics.NewRecorder,
	wire.Bind(new(interview.Metrics), new(*metrics.Recorder)),
	wire.Struct(new(interview.Dependencies), "*"),
	provideOptions,
	interview.NewOrchestrator,
	wire.Struct(new(Core), "*"),
)

var serverSet = wire.NewSet(
	services.NewInterviewService,
	provideServiceContainer,
	provideServerConfig,
	provideRegistry,
	provideSlogLogger,
	server.NewServer,
	wire.Struct(new(App), "*"),
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.NewLogger(cfg.Server.Development())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Server.Development() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func provideStore(ctx context.Context, cfg *config.Config) (*repository.SQLStore, func(), error) {
	var (
		store *repository.SQLStore
		err   error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		store, err = pg.NewPostgresDB(ctx, cfg.Database.DSN)
	default:
		store, err = sqlite.NewSQLiteDB(ctx, cfg.Database.DSN)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	return store, func() { _ = store.Close() }, nil
}

// provideCompleter picks the chat backend. OpenRouter speaks the OpenAI
// protocol, so only the base URL and key differ.
func provideCompleter(ctx context.Context, cfg *config.Config) (api.Completer, error) {
	if err := config.RequireAPIKey(&cfg.Keys, cfg.LLM.Provider); err != nil {
		return nil, err
	}
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, cfg.LLMKey(), cfg.LLM.Model, cfg.LLM.BaseURL, cfg.Interview.ProviderTimeout)
	default:
		client := openai.NewClient(cfg.LLMKey(), cfg.LLM.BaseURL)
		return chat.NewClient(client, cfg.LLM.Model, cfg.Interview.ProviderTimeout), nil
	}
}

// provideTranscriber returns nil when no backend can run, which leaves
// audio answers disabled
func provideTranscriber(cfg *config.Config, logger *zap.Logger) api.Transcriber {
	t := cfg.Transcription
	switch t.Backend {
	case config.TranscriptionWhisperCpp:
		workDir := filepath.Join(os.TempDir(), "interview-coach")
		return whisper_cpp.NewLocalTranscriber(t.BinaryPath, t.ModelPath, t.Language, audio.NewFFmpeg(), workDir, cfg.Interview.ProviderTimeout, logger)
	default:
		if cfg.Keys.OpenAI == "" {
			logger.Warn("OPENAI_API_KEY not set, transcription disabled")
			return nil
		}
		return whisper.NewRemoteTranscriber(openai.NewClient(cfg.Keys.OpenAI, ""), t.Model, t.Language, cfg.Interview.ProviderTimeout)
	}
}

func provideSynthesizer(cfg *config.Config, logger *zap.Logger) api.Synthesizer {
	if !cfg.Speech.Enabled {
		return nil
	}
	if cfg.Keys.OpenAI == "" {
		logger.Warn("OPENAI_API_KEY not set, speech synthesis disabled")
		return nil
	}
	return speech.NewSynthesizer(openai.NewClient(cfg.Keys.OpenAI, ""), cfg.Speech.Model, cfg.Speech.Voice, cfg.Interview.ProviderTimeout)
}

func provideAudioStore(ctx context.Context, cfg *config.Config) (storage.AudioStore, error) {
	a := cfg.Audio
	switch a.Backend {
	case config.AudioMinio:
		return storage.NewMinioAudioStore(ctx, storage.MinioOptions{
			Endpoint:  a.Minio.Endpoint,
			AccessKey: a.Minio.AccessKey,
			SecretKey: a.Minio.SecretKey,
			Bucket:    a.Minio.Bucket,
			UseSSL:    a.Minio.UseSSL,
			URLExpiry: a.Minio.URLExpiry,
		})
	default:
		return storage.NewLocalAudioStore(a.Dir, a.URLPath)
	}
}

func provideLocker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (lock.Locker, func(), error) {
	if cfg.Lock.Backend != config.LockRedis {
		return lock.NewLocalLocker(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Lock.RedisAddr,
		Password: cfg.Lock.RedisPassword,
		DB:       cfg.Lock.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Lock.RedisAddr, err)
	}
	return lock.NewRedisLocker(client, "interview-coach:turn:", cfg.Lock.TTL, logger), func() { _ = client.Close() }, nil
}

func provideOptions(cfg *config.Config) interview.Options {
	return interview.Options{
		DefaultQuestionLimit: cfg.Interview.DefaultQuestionLimit,
		CoachingPlaceholder:  cfg.Interview.CoachingPlaceholder,
	}
}

func provideServiceContainer(svc *services.InterviewServiceImpl) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		InterviewService: svc,
		SpeechService:    svc,
	}
}

func provideRegistry(recorder *metrics.Recorder) *prometheus.Registry {
	return recorder.Registry()
}

func provideServerConfig(cfg *config.Config) server.Config {
	s := cfg.Server
	return server.Config{
		Host:         s.Host,
		Port:         s.Port,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
		Environment:  s.Environment,
		AudioDir:     lo.Ternary(cfg.Audio.Backend == config.AudioLocal, cfg.Audio.Dir, ""),
		AudioURLPath: cfg.Audio.URLPath,
	}
}
