package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"yojana-sahayak/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	data []byte
	err  error
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f.data, f.err
}

type fakeObjectStore struct {
	putErr   error
	signErr  error
	signed   string
	lastKey  string
	lastBody []byte
	lastTTL  time.Duration
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	f.lastKey = key
	f.lastBody = body
	return f.putErr
}

func (f *fakeObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	f.lastTTL = expires
	if f.signErr != nil {
		return "", f.signErr
	}
	return f.signed, nil
}

func newSpeechService(t *testing.T, synth Synthesizer, store ObjectStore) *SpeechService {
	return NewSpeechService(synth, store, "audio", time.Hour, logger.NewTestLogger(t))
}

func TestSynthesize_Success(t *testing.T) {
	store := &fakeObjectStore{signed: "https://storage.example/audio/PM_KISAN.mp3?sig=abc"}
	svc := newSpeechService(t, &fakeSynth{data: []byte("mp3-bytes")}, store)
	svc.nowFunc = func() time.Time { return time.Unix(1700000000, 0) }

	url, ok := svc.Synthesize(context.Background(), "PM Kisan explanation", "PM_KISAN")

	require.True(t, ok)
	assert.Equal(t, store.signed, url)
	assert.Equal(t, "audio/PM_KISAN_1700000000.mp3", store.lastKey)
	assert.Equal(t, []byte("mp3-bytes"), store.lastBody)
	assert.Equal(t, time.Hour, store.lastTTL)
}

func TestSynthesize_KeyUniquePerCall(t *testing.T) {
	store := &fakeObjectStore{signed: "https://storage.example/a"}
	svc := newSpeechService(t, &fakeSynth{data: []byte("x")}, store)

	ts := int64(1700000000)
	svc.nowFunc = func() time.Time { ts++; return time.Unix(ts, 0) }

	_, ok := svc.Synthesize(context.Background(), "text", "PM_UJJWALA")
	require.True(t, ok)
	first := store.lastKey

	_, ok = svc.Synthesize(context.Background(), "text", "PM_UJJWALA")
	require.True(t, ok)

	assert.NotEqual(t, first, store.lastKey, "repeated calls for the same scheme must not collide")
}

func TestSynthesize_FailuresReturnNoAudio(t *testing.T) {
	tests := []struct {
		name  string
		synth Synthesizer
		store ObjectStore
	}{
		{
			name:  "synthesis call fails",
			synth: &fakeSynth{err: errors.New("voice service down")},
			store: &fakeObjectStore{signed: "https://storage.example/a"},
		},
		{
			name:  "storage write fails",
			synth: &fakeSynth{data: []byte("x")},
			store: &fakeObjectStore{putErr: errors.New("bucket missing")},
		},
		{
			name:  "url signing fails",
			synth: &fakeSynth{data: []byte("x")},
			store: &fakeObjectStore{signErr: errors.New("credentials expired")},
		},
		{
			name:  "no synthesizer configured",
			synth: nil,
			store: &fakeObjectStore{signed: "https://storage.example/a"},
		},
		{
			name:  "no object store configured",
			synth: &fakeSynth{data: []byte("x")},
			store: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSpeechService(t, tt.synth, tt.store)

			assert.NotPanics(t, func() {
				url, ok := svc.Synthesize(context.Background(), "text", "PM_KISAN")
				assert.False(t, ok)
				assert.Empty(t, url)
			})
		})
	}
}

func TestAudioKey_Format(t *testing.T) {
	svc := newSpeechService(t, nil, nil)
	svc.nowFunc = func() time.Time { return time.Unix(42, 0) }

	assert.Equal(t, fmt.Sprintf("audio/%s_42.mp3", "PM_VIDYALAKSHMI"), svc.audioKey("PM_VIDYALAKSHMI"))
}
