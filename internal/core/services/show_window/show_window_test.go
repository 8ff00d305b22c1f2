package showwindow

import (
	"context"
	"errors"
	"testing"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"

	"github.com/stretchr/testify/require"
)

func TestShowWindow(t *testing.T) {
	// Setup ---
	presenter := reminder.NewTestPresenter()
	service := New(logging.NewFakeLogger(), presenter)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(1, presenter.ShowCalls)
	assert.Equal(0, presenter.HideCalls)
}

func TestShowWindowErrorIsOnlyLogged(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	presenter := reminder.NewTestPresenter()
	presenter.ShowError = errors.New("no window")
	service := New(log, presenter)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(log.Records(logging.WARNING), 1)
}
