// Package voice is the optional speech collaborator: speech-to-text for
// query input and text-to-speech for answer output. It is invoked
// synchronously outside the core and is never required for answer
// generation.
package voice

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/tmahmud/uttor/internal/model"
)

// Capabilities states what the handler can do. Decided once at
// construction and injected, never read as ambient global state.
type Capabilities struct {
	STT bool // speech-to-text available
	TTS bool // text-to-speech available
}

// Handler wraps the speech API client
type Handler struct {
	client  *openai.Client
	caps    Capabilities
	limiter *rate.Limiter
	cfg     model.VoiceConfig
	log     zerolog.Logger
}

// NewHandler creates a voice handler. When the feature is disabled or no
// API key is configured, the returned handler has empty capabilities and
// every call reports unavailability instead of failing the session.
func NewHandler(cfg model.VoiceConfig, log zerolog.Logger) *Handler {
	h := &Handler{cfg: cfg, log: log}

	if !cfg.Enabled || cfg.APIKey == "" {
		log.Debug().Bool("enabled", cfg.Enabled).Msg("voice support not configured")
		return h
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	h.client = openai.NewClientWithConfig(clientConfig)
	h.caps = Capabilities{STT: true, TTS: true}

	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 1
	}
	h.limiter = rate.NewLimiter(rate.Limit(rps), 1)

	return h
}

// Capabilities returns what this handler supports
func (h *Handler) Capabilities() Capabilities {
	return h.caps
}

// Transcribe converts a recorded audio file to text
func (h *Handler) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if !h.caps.STT {
		return "", fmt.Errorf("speech-to-text is not available")
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := h.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    h.cfg.TranscribeModel,
		FilePath: audioPath,
		Language: h.cfg.Language,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}

	h.log.Debug().Str("file", audioPath).Int("chars", len(resp.Text)).Msg("transcription done")
	return resp.Text, nil
}

// Synthesize converts answer text to speech and writes the audio to
// outPath.
func (h *Handler) Synthesize(ctx context.Context, text, outPath string) error {
	if !h.caps.TTS {
		return fmt.Errorf("text-to-speech is not available")
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := h.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(h.cfg.SpeechModel),
		Input: text,
		Voice: openai.SpeechVoice(h.cfg.SpeechVoice),
	})
	if err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Close()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create audio file %s: %w", outPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp); err != nil {
		return fmt.Errorf("write audio file %s: %w", outPath, err)
	}

	h.log.Debug().Str("file", outPath).Msg("speech written")
	return nil
}
