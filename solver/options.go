package solver

import (
	"context"
	"fmt"
)

// Default depth caps, chosen as the empirical balance point where both
// tries fit in memory and intersection succeeds before either side
// exhausts its cap.
const (
	defaultForwardMaxNoRotate  = 28
	defaultBackwardMaxNoRotate = 24
	defaultForwardMaxRotate    = 24
	defaultBackwardMaxRotate   = 20
)

// Option configures Solve via functional arguments. An invalid Option
// (e.g. a negative depth cap) is recorded internally and surfaced as
// ErrOptionViolation on the first call to Solve.
type Option func(*Config)

// OnLayer, if set, is called once after every driver iteration with the
// depth and visited-state count of each side, letting a caller observe
// search progress without instrumenting the driver itself.
type OnLayerFunc func(fwDepth, fwVisited, bwDepth, bwVisited int)

// Config holds Solve's tunable surface. There is no config file or
// environment binding: Config is built exclusively from DefaultOptions
// plus any WithX options.
type Config struct {
	// Ctx allows cancellation; checked once per driver iteration.
	Ctx context.Context

	// AllowRotation enables matching the target under all four 90°
	// rotations, not just its given orientation. Changes the default
	// depth caps unless overridden explicitly.
	AllowRotation bool

	// ForwardMaxDepth and BackwardMaxDepth cap each solver's BFS depth.
	// Zero means "use the package default for the current AllowRotation
	// setting", resolved lazily in Solve.
	ForwardMaxDepth  int
	BackwardMaxDepth int

	// OnLayer, if non-nil, is invoked after each driver iteration.
	OnLayer OnLayerFunc

	err error
}

// DefaultOptions returns a Config with context.Background(), rotation
// disabled, and depth caps left at zero (resolved to the no-rotation
// defaults unless WithRotation(true) or an explicit depth is given).
func DefaultOptions() Config {
	return Config{
		Ctx:     context.Background(),
		OnLayer: func(int, int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation between layers.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithRotation enables or disables matching the target under any of
// its four 90° rotations.
func WithRotation(allow bool) Option {
	return func(c *Config) { c.AllowRotation = allow }
}

// WithForwardMaxDepth overrides the forward solver's depth cap.
// d <= 0 is a violation: there is no "unlimited" sentinel, since an
// unbounded bidirectional search over this state space is not a
// realistic configuration to offer.
func WithForwardMaxDepth(d int) Option {
	return func(c *Config) {
		if d <= 0 {
			c.err = fmt.Errorf("%w: ForwardMaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		c.ForwardMaxDepth = d
	}
}

// WithBackwardMaxDepth overrides the backward solver's depth cap.
func WithBackwardMaxDepth(d int) Option {
	return func(c *Config) {
		if d <= 0 {
			c.err = fmt.Errorf("%w: BackwardMaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		c.BackwardMaxDepth = d
	}
}

// WithOnLayer registers a callback invoked after each driver iteration.
func WithOnLayer(fn OnLayerFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.OnLayer = fn
		}
	}
}

// resolvedDepths fills in the zero-valued depth caps with the package
// default for the current AllowRotation setting.
func (c Config) resolvedDepths() (fwMax, bwMax int) {
	fwMax, bwMax = c.ForwardMaxDepth, c.BackwardMaxDepth
	if fwMax == 0 {
		if c.AllowRotation {
			fwMax = defaultForwardMaxRotate
		} else {
			fwMax = defaultForwardMaxNoRotate
		}
	}
	if bwMax == 0 {
		if c.AllowRotation {
			bwMax = defaultBackwardMaxRotate
		} else {
			bwMax = defaultBackwardMaxNoRotate
		}
	}
	return fwMax, bwMax
}
