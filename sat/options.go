package sat

import "github.com/akmonengine/halfspace/config"

// Option configures a New call, mirroring hull.Option's functional-options
// shape so both packages tune the same config.Config knobs consistently.
type Option func(*config.Config)

// WithConfig overrides every resolved tuning knob at once.
func WithConfig(cfg config.Config) Option {
	return func(c *config.Config) { *c = cfg }
}

// WithNumChunks overrides config.Config.NumChunks for this Tester.
func WithNumChunks(n uint32) Option {
	return func(c *config.Config) { c.NumChunks = n }
}

// WithWorkers overrides config.Config.Workers for this Tester.
func WithWorkers(n int) Option {
	return func(c *config.Config) { c.Workers = n }
}

func resolveOptions(opts []Option) config.Config {
	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
