package response

import (
	"time"
	"waterreminder/internal/core/domain/reminder"
)

type Settings struct {
	Interval int64 `json:"interval"`
}

func (s *Settings) FromDomainType(interval reminder.Interval) {
	s.Interval = interval.Seconds()
}

type Preset struct {
	Label    string `json:"label"`
	Interval int64  `json:"interval"`
}

type Status struct {
	Interval  int64     `json:"interval"`
	LastShown time.Time `json:"last_shown"`
	NextAt    time.Time `json:"next_at"`
	NextIn    string    `json:"next_in"`
	Overdue   bool      `json:"overdue"`
	Presets   []Preset  `json:"presets"`
}

func NewPresets(presets []reminder.Preset) []Preset {
	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, Preset{Label: p.Label, Interval: p.Interval.Seconds()})
	}
	return result
}
