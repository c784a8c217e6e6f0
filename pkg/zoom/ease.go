package zoom

// Ease maps linear progress in [0, 1] to eased progress in [0, 1].
// Callers apply it before [Navigator.Advance]; the navigator itself always
// interpolates linearly.
type Ease func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates through the first half and decelerates through the
// second.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

func clamp01(v float64) float64 {
	switch {
	case v != v, v <= 0: // NaN counts as not started
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}
