// Package tts wraps the voice-synthesis service behind the
// service.Synthesizer interface.
package tts

import (
	"context"
	"fmt"
	"io"

	"yojana-sahayak/pkg/config"

	"github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer renders text to MP3 with fixed voice and engine
// parameters from configuration.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
	speed  float64
}

func NewOpenAISynthesizer(apiKey string, cfg *config.SpeechConfig) *OpenAISynthesizer {
	return &OpenAISynthesizer{
		client: openai.NewClient(apiKey),
		model:  cfg.TTSModel,
		voice:  cfg.TTSVoice,
		speed:  cfg.TTSSpeed,
	}
}

func (p *OpenAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.model),
		Input:          text,
		Voice:          openai.SpeechVoice(p.voice),
		Speed:          p.speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no audio data received")
	}

	return data, nil
}
