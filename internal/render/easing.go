package render

// EasingFunc maps normalized animation time t in [0,1] to an eased value.
// Most curves stay within [0,1]; overshoot variants may exceed it.
type EasingFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseInQuad accelerates from zero.
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad decelerates to zero.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero, cubic profile.
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic decelerates to zero, cubic profile.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates then decelerates, cubic profile.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// EasingForProfile resolves a theme's animation profile name to its
// easing family. Unknown or empty profiles fall back to Linear.
func EasingForProfile(profile string) EasingFunc {
	switch profile {
	case "smooth":
		return EaseInOutQuad
	case "snappy":
		return EaseOutCubic
	case "bouncy":
		return Bounce
	default:
		return Linear
	}
}

// Bounce is the standard four-segment bounce approximation,
// settling at 1.
func Bounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
