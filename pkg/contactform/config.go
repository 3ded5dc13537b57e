package contactform

import "time"

// Config carries the form's timing tunables. Load it through pkg/config to
// pick up environment overrides, or use Defaults.
type Config struct {
	// DebounceInterval is the quiet window coalescing rapid input events
	// into a single re-validation.
	DebounceInterval time.Duration `env:"FORM_DEBOUNCE_INTERVAL" envDefault:"500ms"`

	// SuccessBannerDelay is how long the success acknowledgment stays
	// visible before the form resets.
	SuccessBannerDelay time.Duration `env:"FORM_SUCCESS_BANNER_DELAY" envDefault:"5s"`
}

// Defaults returns the stock timing configuration.
func Defaults() Config {
	return Config{
		DebounceInterval:   500 * time.Millisecond,
		SuccessBannerDelay: 5 * time.Second,
	}
}

// normalized guards against zero or negative intervals from a malformed
// environment.
func (c Config) normalized() Config {
	d := Defaults()
	if c.DebounceInterval <= 0 {
		c.DebounceInterval = d.DebounceInterval
	}
	if c.SuccessBannerDelay <= 0 {
		c.SuccessBannerDelay = d.SuccessBannerDelay
	}
	return c
}
