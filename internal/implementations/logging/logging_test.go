package logging

import (
	"context"
	"errors"
	"testing"
	"time"
	"waterreminder/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := newZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "debug")
	log.Info(ctx, "Interval updated.", logging.Entry("interval", 600))
	log.Warning(ctx, "warning")
	log.Error(ctx, "error", logging.Entry("err", "boom"))

	assert := require.New(t)
	assert.Equal(4, logs.Len())
	entries := logs.FilterMessage("Interval updated.").All()
	assert.Len(entries, 1)
	assert.Equal(int64(600), entries[0].ContextMap()["interval"])
	assert.Equal(1, logs.FilterLevelExact(zap.ErrorLevel).Len())
	assert.Equal(1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

type recordingTransport struct {
	events []*sentry.Event
}

func (t *recordingTransport) Configure(options sentry.ClientOptions) {}

func (t *recordingTransport) SendEvent(event *sentry.Event) {
	t.events = append(t.events, event)
}

func (t *recordingTransport) Flush(timeout time.Duration) bool {
	return true
}

func TestSentryLoggerCapturesErrors(t *testing.T) {
	// Setup ---
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)
	hub := sentry.NewHub(client, sentry.NewScope())
	fake := logging.NewFakeLogger()
	log := NewSentryLogger(fake, hub)
	ctx := context.Background()

	// Exercise ---
	log.Info(ctx, "info")
	log.Error(ctx, "Unexpected error.", logging.Entry("err", errors.New("boom")), logging.Entry("interval", 60))

	// Verify ---
	assert := require.New(t)
	assert.Len(fake.Logged, 2)
	assert.Len(transport.events, 1)
	assert.Equal("60", transport.events[0].Extra["interval"])
}
