package hull

import (
	"github.com/akmonengine/halfspace/config"
	"github.com/akmonengine/halfspace/diag"
)

// buildOptions collects the resolved configuration for a single Build
// call, following the teacher's plain-struct-plus-constructor idiom
// (actor.NewTransform, actor.NewRigidBody) generalized into Go's
// functional-options pattern so Build's signature stays stable as
// options grow.
type buildOptions struct {
	cfg  config.Config
	sink diag.Sink
}

// Option configures a Build call.
type Option func(*buildOptions)

// WithConfig overrides every resolved tuning knob at once.
func WithConfig(cfg config.Config) Option {
	return func(o *buildOptions) { o.cfg = cfg }
}

// WithProgress toggles spec §6's showProgress side channel. Progress
// notices are delivered to the configured Sink (WithSink), not printed
// directly, so Build stays silent by default.
func WithProgress(show bool) Option {
	return func(o *buildOptions) { o.cfg.ShowProgress = show }
}

// WithEpsilon overrides config.Config.CoplanarEpsilon for this call.
func WithEpsilon(epsilon float64) Option {
	return func(o *buildOptions) { o.cfg.CoplanarEpsilon = epsilon }
}

// WithSink routes CoplanarSkip, TopologyViolation, NonManifoldEdge and
// Progress notices to sink instead of the default diag.NopSink.
func WithSink(sink diag.Sink) Option {
	return func(o *buildOptions) { o.sink = sink }
}

func resolveOptions(opts []Option) buildOptions {
	o := buildOptions{cfg: config.Default(), sink: diag.NopSink{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
