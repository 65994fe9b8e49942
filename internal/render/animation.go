package render

import "time"

// Animation interpolates a scalar from start to end over a duration,
// shaped by an easing function. The host pumps it with Update each
// frame; completion fires exactly once.
type Animation struct {
	from, to   float64
	duration   time.Duration
	easing     EasingFunc
	onUpdate   func(float64)
	onComplete func()

	startedAt time.Time
	running   bool
	done      bool
}

// NewAnimation creates an animation. A nil easing defaults to Linear;
// a non-positive duration completes on the first Update.
func NewAnimation(from, to float64, duration time.Duration, easing EasingFunc) *Animation {
	if easing == nil {
		easing = Linear
	}
	return &Animation{from: from, to: to, duration: duration, easing: easing}
}

// OnUpdate sets the per-frame value callback. Returns the animation for
// chaining.
func (a *Animation) OnUpdate(fn func(float64)) *Animation {
	a.onUpdate = fn
	return a
}

// OnComplete sets the callback fired once when the animation finishes.
func (a *Animation) OnComplete(fn func()) *Animation {
	a.onComplete = fn
	return a
}

// Start records the start timestamp and arms the animation.
func (a *Animation) Start(now time.Time) {
	a.startedAt = now
	a.running = true
	a.done = false
}

// Running reports whether the animation is active and not yet complete.
func (a *Animation) Running() bool {
	return a.running && !a.done
}

// Update advances the animation to the given time, invoking onUpdate
// with the eased value. When normalized time reaches 1 it invokes
// onComplete once and stops. Calls after completion (or before Start)
// are no-ops returning false.
func (a *Animation) Update(now time.Time) bool {
	if !a.running || a.done {
		return false
	}

	t := 1.0
	if a.duration > 0 {
		t = float64(now.Sub(a.startedAt)) / float64(a.duration)
	}
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		t = 1
	}

	value := a.from + (a.to-a.from)*a.easing(t)
	if a.onUpdate != nil {
		a.onUpdate(value)
	}

	if t >= 1 {
		a.done = true
		a.running = false
		if a.onComplete != nil {
			a.onComplete()
		}
	}
	return true
}
