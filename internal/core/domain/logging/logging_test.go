package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelper(t *testing.T) {
	log := NewFakeLogger()
	err := errors.New("boom")

	Error(context.Background(), log, err, Entry("interval", 60))

	assert := require.New(t)
	records := log.Records(ERROR)
	assert.Len(records, 1)
	assert.Equal([]LogEntry{Entry("err", err), Entry("interval", 60)}, records[0].Entries)
	assert.Empty(log.Records(INFO))
}

func TestFakeLoggerKeepsLevels(t *testing.T) {
	log := NewFakeLogger()
	ctx := context.Background()

	log.Debug(ctx, "d")
	log.Info(ctx, "i")
	log.Warning(ctx, "w")
	log.Error(ctx, "e")

	assert := require.New(t)
	assert.Len(log.Logged, 4)
	assert.Equal("d", log.Records(DEBUG)[0].Msg)
	assert.Equal("i", log.Records(INFO)[0].Msg)
	assert.Equal("w", log.Records(WARNING)[0].Msg)
	assert.Equal("e", log.Records(ERROR)[0].Msg)
}
