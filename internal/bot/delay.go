package bot

import (
	"time"

	"github.com/zhubert/botconsole/internal/errors"
)

// DefaultReplyDelay is used when the backend does not declare a typing delay
const DefaultReplyDelay = 2 * time.Second

// Display defaults for delay fields the backend leaves unset
const (
	DefaultBaseSeconds    = 1.0
	DefaultPerWordSeconds = 0.15
	DefaultMaxSeconds     = 5.0
)

// ExampleWordCount is the message length used for the delay estimate shown in settings
const ExampleWordCount = 10

// DelaySettings controls the backend's simulated typing latency
type DelaySettings struct {
	BaseSeconds    float64 `json:"base_seconds"`
	PerWordSeconds float64 `json:"per_word_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
}

// WithDefaults fills zero fields with the display defaults
func (d DelaySettings) WithDefaults() DelaySettings {
	if d.BaseSeconds == 0 {
		d.BaseSeconds = DefaultBaseSeconds
	}
	if d.PerWordSeconds == 0 {
		d.PerWordSeconds = DefaultPerWordSeconds
	}
	if d.MaxSeconds == 0 {
		d.MaxSeconds = DefaultMaxSeconds
	}
	return d
}

// Estimate returns base + words*perWord seconds, capped at MaxSeconds when it is set.
// The backend adds randomness on top; this is the nominal value.
func (d DelaySettings) Estimate(words int) float64 {
	est := d.BaseSeconds + float64(words)*d.PerWordSeconds
	if d.MaxSeconds > 0 && est > d.MaxSeconds {
		return d.MaxSeconds
	}
	return est
}

// ReplyDelay converts a server-declared typing delay in seconds to a duration.
// Missing or non-positive values fall back to DefaultReplyDelay.
func ReplyDelay(typingDelay *float64) time.Duration {
	if typingDelay == nil || *typingDelay <= 0 {
		return DefaultReplyDelay
	}
	return time.Duration(*typingDelay * float64(time.Second))
}

// Validate rejects negative delay fields
func (d DelaySettings) Validate() error {
	if d.BaseSeconds < 0 || d.PerWordSeconds < 0 || d.MaxSeconds < 0 {
		return errors.E(errors.Op("bot.DelaySettings.Validate"), errors.KindInvalid, "delays cannot be negative")
	}
	return nil
}
