package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"waterreminder/internal/core/domain/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	cases := []struct {
		raw      string
		expected reminder.Interval
		err      error
	}{
		{raw: "900", expected: 900},
		{raw: "15m", expected: 900},
		{raw: "1h30m", expected: 5400},
		{raw: "5", err: reminder.ErrIntervalTooShort},
		{raw: "48h", err: reminder.ErrIntervalTooLong},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			interval, err := parseInterval(c.raw)
			if c.err != nil {
				assert.True(t, errors.Is(err, c.err))
				return
			}
			require.Nil(t, err)
			assert.Equal(t, c.expected, interval)
		})
	}

	_, err := parseInterval("often")
	assert.Error(t, err)
}

func TestIntervalSet(t *testing.T) {
	// Setup
	var got map[string]int64
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"interval": 1800}`))
	}))
	defer server.Close()

	out := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--addr", server.URL, "interval", "set", "30m"})

	// Exercise
	err := cmd.ExecuteContext(context.Background())

	// Verify
	require.Nil(t, err)
	assert.Equal(t, int64(1800), got["interval"])
	assert.Equal(t, "1800 (30m0s)\n", out.String())
}

func TestRemindFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--addr", server.URL, "remind"})

	err := cmd.ExecuteContext(context.Background())

	assert.Error(t, err)
}
