package config

import "time"

// SpeedRamp shortens the drop interval each time the score crosses
// another multiple of the configured step.
type SpeedRamp struct {
	enabled   bool
	factor    float64
	every     int
	floor     time.Duration
	nextAt    int
	crossings int
}

// NewSpeedRamp creates a ramp from the blocks configuration.
func NewSpeedRamp(cfg BlocksConfig) *SpeedRamp {
	every := cfg.Timing.SpeedupEvery
	if every <= 0 {
		every = 1000
	}
	return &SpeedRamp{
		enabled: cfg.Difficulty.Enabled,
		factor:  cfg.Timing.SpeedupFactor,
		every:   every,
		floor:   cfg.Timing.MinDropInterval(),
		nextAt:  every,
	}
}

// IsEnabled returns whether the ramp changes the interval at all.
func (r *SpeedRamp) IsEnabled() bool {
	return r.enabled && r.factor > 0 && r.factor < 1
}

// Apply returns the interval after accounting for every threshold the
// score has crossed since the last call. Each threshold is applied once.
func (r *SpeedRamp) Apply(score int, interval time.Duration) time.Duration {
	for score >= r.nextAt {
		r.nextAt += r.every
		r.crossings++
		if !r.IsEnabled() {
			continue
		}
		interval = time.Duration(float64(interval) * r.factor)
		if interval < r.floor {
			interval = r.floor
		}
	}
	return interval
}

// Crossings returns how many thresholds have been crossed so far.
func (r *SpeedRamp) Crossings() int {
	return r.crossings
}

// NextAt returns the score of the next not-yet-crossed threshold.
func (r *SpeedRamp) NextAt() int {
	return r.nextAt
}
