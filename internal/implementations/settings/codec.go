package settings

import (
	"encoding/json"
	"fmt"
	"waterreminder/internal/core/domain/reminder"
)

// The persisted form is a bare JSON integer holding seconds, e.g. `3600`.

func encodeInterval(interval reminder.Interval) ([]byte, error) {
	return json.Marshal(interval.Seconds())
}

func decodeInterval(data []byte) (reminder.Interval, error) {
	var seconds int64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return 0, fmt.Errorf("%w: %v", reminder.ErrMalformedSettings, err)
	}
	interval, err := reminder.NewInterval(seconds)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", reminder.ErrMalformedSettings, err)
	}
	return interval, nil
}
