package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Synthesizer is the external voice service. Implemented by
// tts.OpenAISynthesizer; tests substitute fakes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ObjectStore persists audio artifacts and signs access URLs.
// Implemented by objectstore.S3Store.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// SpeechService synthesizes an explanation to audio, stores it and
// returns a time-limited URL. Every failure mode yields "no audio"
// rather than an error: callers fall back to a client-side voice.
type SpeechService struct {
	synth   Synthesizer
	store   ObjectStore
	prefix  string
	urlTTL  time.Duration
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewSpeechService(synth Synthesizer, store ObjectStore, prefix string, urlTTL time.Duration, logger *zap.Logger) *SpeechService {
	return &SpeechService{
		synth:   synth,
		store:   store,
		prefix:  prefix,
		urlTTL:  urlTTL,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Synthesize returns a signed URL for the stored audio, or ok=false when
// any sub-step (synthesis, storage write, signing) fails.
func (s *SpeechService) Synthesize(ctx context.Context, text, schemeID string) (string, bool) {
	if s.synth == nil || s.store == nil {
		return "", false
	}

	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		s.logger.Warn("Speech synthesis failed",
			zap.String("scheme_id", schemeID),
			zap.Error(err),
		)
		return "", false
	}

	key := s.audioKey(schemeID)
	if err := s.store.Put(ctx, key, audio, "audio/mpeg"); err != nil {
		s.logger.Warn("Audio upload failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}

	url, err := s.store.PresignGet(ctx, key, s.urlTTL)
	if err != nil {
		s.logger.Warn("Audio URL signing failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}

	return url, true
}

// audioKey derives a storage key that is unique across repeated calls
// for the same scheme. Artifacts are never deduplicated or cleaned up;
// only the signed URL expires.
func (s *SpeechService) audioKey(schemeID string) string {
	return fmt.Sprintf("%s/%s_%d.mp3", s.prefix, schemeID, s.nowFunc().Unix())
}
