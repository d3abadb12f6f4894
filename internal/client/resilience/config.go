package resilience

import "time"

type Config struct {
	Name             string
	MaxRetries       int
	BaseDelay        time.Duration
	FailureThreshold uint32
	BreakDuration    time.Duration
}

func DefaultConfig() Config {
	return Config{
		Name:             "appointment-api",
		MaxRetries:       3,
		BaseDelay:        time.Second,
		FailureThreshold: 5,
		BreakDuration:    30 * time.Second,
	}
}

// withDefaults fills zero fields; MaxRetries may legitimately be zero.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = d.BaseDelay
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.BreakDuration <= 0 {
		c.BreakDuration = d.BreakDuration
	}
	return c
}
