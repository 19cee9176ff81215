package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// FFProbeOutput is the subset of `ffprobe -show_streams` output we read
type FFProbeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
	} `json:"streams"`
}

// FFmpeg probes and converts audio files with the ffprobe and ffmpeg binaries
type FFmpeg struct {
	FFprobePath string
	FFmpegPath  string
}

// NewFFmpeg uses the binaries found on PATH
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{FFprobePath: "ffprobe", FFmpegPath: "ffmpeg"}
}

// Is16kHzWav reports whether the file already is 16kHz PCM, the only input
// whisper.cpp accepts
func (f *FFmpeg) Is16kHzWav(ctx context.Context, filePath string) (bool, error) {
	cmd := exec.CommandContext(ctx, f.FFprobePath, "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("ffprobe %s: %w", filePath, err)
	}
	return Is16kHzWavProbe(output)
}

// Is16kHzWavProbe inspects raw ffprobe JSON output
func Is16kHzWavProbe(output []byte) (bool, error) {
	var probeOutput FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}
	return false, nil
}

// ConvertTo16kHzWav writes a 16kHz mono WAV next to the input and returns its path
func (f *FFmpeg) ConvertTo16kHzWav(ctx context.Context, inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	cmd := exec.CommandContext(ctx, f.FFmpegPath, "-y", "-i", inputFilePath,
		"-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return outputFilePath, nil
}
