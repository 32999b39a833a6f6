package sketch

// Option configures a Sketch during creation.
//
// Example:
//
//	s := sketch.New(dev,
//	    sketch.WithEllipseDetail(24),
//	    sketch.WithStroke(sketch.Transparent))
type Option func(*options)

type options struct {
	fill          Color
	stroke        Color
	ellipseMode   EllipseMode
	ellipseDetail int
	sphereU       int
	sphereV       int
}

// Defaults used when no option overrides them.
const (
	DefaultEllipseDetail = 50
	DefaultSphereDetail  = 30
)

func defaultOptions() options {
	return options{
		fill:          White,
		stroke:        Black,
		ellipseMode:   Center,
		ellipseDetail: DefaultEllipseDetail,
		sphereU:       DefaultSphereDetail,
		sphereV:       DefaultSphereDetail,
	}
}

// WithFill sets the initial fill color.
func WithFill(c Color) Option {
	return func(o *options) { o.fill = c }
}

// WithStroke sets the initial stroke color.
func WithStroke(c Color) Option {
	return func(o *options) { o.stroke = c }
}

// WithEllipseMode sets the initial ellipse mode. Invalid modes are ignored.
func WithEllipseMode(m EllipseMode) Option {
	return func(o *options) {
		if m.Valid() {
			o.ellipseMode = m
		}
	}
}

// WithEllipseDetail sets the initial number of ellipse segments.
// Values below 3 are ignored.
func WithEllipseDetail(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.ellipseDetail = n
		}
	}
}

// WithSphereDetail sets the initial sphere resolution.
// Values below 2 are ignored.
func WithSphereDetail(ures, vres int) Option {
	return func(o *options) {
		if ures >= 2 && vres >= 2 {
			o.sphereU, o.sphereV = ures, vres
		}
	}
}

// WithConfig applies every setting of cfg. Invalid settings are logged and
// skipped; call cfg.Validate first to reject them instead.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		for _, opt := range cfg.Options() {
			opt(o)
		}
	}
}
