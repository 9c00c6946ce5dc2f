package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseClockMinute parses an "HH:MM" wall-clock string into minutes since
// midnight. Meeting times are stored in this form so interval comparisons
// stay plain integer arithmetic.
func ParseClockMinute(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClockMinute renders minutes since midnight as "HH:MM".
func FormatClockMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
