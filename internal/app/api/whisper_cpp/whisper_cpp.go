package whisper_cpp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/util/files"
)

// Converter prepares input for whisper.cpp, which only reads 16kHz WAV
type Converter interface {
	Is16kHzWav(ctx context.Context, filePath string) (bool, error)
	ConvertTo16kHzWav(ctx context.Context, filePath string) (string, error)
}

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	converter  Converter
	workDir    string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber. Uploads
// are staged under workDir, or the system temp directory when empty.
func NewLocalTranscriber(binaryPath, modelPath, language string, converter Converter, workDir string, timeout time.Duration, logger *zap.Logger) *LocalTranscriber {
	if language == "" {
		language = "en"
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		converter:  converter,
		workDir:    workDir,
		timeout:    timeout,
		logger:     logger,
	}
}

// Transcribe stages the recording on disk, converts it to 16kHz WAV if
// needed and runs the whisper.cpp binary on it.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.WithCause(apperrors.ErrInvalidInput, apperrors.New("audio is empty"))
	}
	if lt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lt.timeout)
		defer cancel()
	}

	inputFilePath, cleanup, err := files.WriteTempFile(lt.workDir, filename, audio)
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrTranscriptionFailed, err)
	}
	defer cleanup()

	is16kHzWav, err := lt.converter.Is16kHzWav(ctx, inputFilePath)
	if err != nil {
		return "", lt.fail(ctx, fmt.Errorf("error checking input file: %w", err))
	}
	if !is16kHzWav {
		lt.logger.Debug("converting input to 16kHz WAV", zap.String("file", filename))
		inputFilePath, err = lt.converter.ConvertTo16kHzWav(ctx, inputFilePath)
		if err != nil {
			return "", lt.fail(ctx, fmt.Errorf("error converting input file: %w", err))
		}
	}

	outputFile := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath))
	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputFile,
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr
	command.WaitDelay = 2 * time.Second

	lt.logger.Debug("running whisper.cpp", zap.String("binary", lt.binaryPath), zap.Strings("args", args))
	if err := command.Run(); err != nil {
		return "", lt.fail(ctx, fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String()))
	}

	output, err := files.ReadOutputFile(outputFile + ".txt")
	if err != nil {
		return "", lt.fail(ctx, fmt.Errorf("failed to read output file: %w", err))
	}
	return output, nil
}

func (lt *LocalTranscriber) fail(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.WithCause(apperrors.ErrProviderTimeout, err)
	}
	return apperrors.WithCause(apperrors.ErrTranscriptionFailed, err)
}
