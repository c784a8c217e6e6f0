package zoom

import "time"

const (
	// DefaultDuration is the length of a normal zoom transition.
	DefaultDuration = 750 * time.Millisecond

	// DefaultSlowFactor stretches a transition started in slow motion.
	DefaultSlowFactor = 10

	// DefaultMaxVisibleDepth is the outermost ring, relative to the focus,
	// that is still drawn.
	DefaultMaxVisibleDepth = 3.0

	// DefaultMinVisibleDepth is the innermost drawn ring. Ring 0 belongs to
	// the focus itself, which renderers show as the centre disc.
	DefaultMinVisibleDepth = 1.0

	// DefaultLabelMinArea is the smallest angular × radial area that gets a
	// label.
	DefaultLabelMinArea = 0.03
)

// Options configures a [Navigator]. Zero fields take the defaults above.
type Options struct {
	Duration        time.Duration
	SlowFactor      int
	MaxVisibleDepth float64

	// MinVisibleDepth is the innermost drawn ring. Zero selects
	// DefaultMinVisibleDepth; a negative value draws from ring 0, so the
	// focus arc itself is visible.
	MinVisibleDepth float64

	LabelMinArea float64

	// Now is the clock used to stamp runs. Defaults to time.Now.
	Now func() time.Time
}

// SetDefaults fills zero-valued options.
func (o *Options) SetDefaults() {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.SlowFactor <= 0 {
		o.SlowFactor = DefaultSlowFactor
	}
	if o.MaxVisibleDepth <= 0 {
		o.MaxVisibleDepth = DefaultMaxVisibleDepth
	}
	if o.MinVisibleDepth == 0 {
		o.MinVisibleDepth = DefaultMinVisibleDepth
	}
	if o.LabelMinArea <= 0 {
		o.LabelMinArea = DefaultLabelMinArea
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// minVisibleDepth returns the effective innermost ring.
func (o Options) minVisibleDepth() float64 {
	return max(o.MinVisibleDepth, 0)
}
