// Package geom provides 2D vector math, collision primitives, and a
// force-based physics body. It contains no external dependencies so game
// logic stays pure and testable.
package geom

import "math"

// Vector2D is a 2D vector with value semantics.
// All operations return new values and never mutate the receiver.
type Vector2D struct {
	X, Y float64
}

// NewVector2D creates a vector from its components.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar factor.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Dot returns the dot product of two vectors.
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the vector length.
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSquared returns the squared length, avoiding the sqrt.
func (v Vector2D) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector; this is the defined
// numeric policy for degenerate input, not an error condition.
func (v Vector2D) Normalize() Vector2D {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / mag, Y: v.Y / mag}
}

// Distance returns the distance between two points.
func (v Vector2D) Distance(o Vector2D) float64 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared returns the squared distance between two points.
func (v Vector2D) DistanceSquared(o Vector2D) float64 {
	return v.Sub(o).MagnitudeSquared()
}

// Limit returns the vector clamped to a maximum magnitude,
// preserving direction.
func (v Vector2D) Limit(max float64) Vector2D {
	mag := v.Magnitude()
	if mag <= max || mag == 0 {
		return v
	}
	return v.Scale(max / mag)
}

// Lerp returns the linear interpolation between v and o at parameter t.
func (v Vector2D) Lerp(o Vector2D, t float64) Vector2D {
	return Vector2D{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Clamp restricts a float64 value to [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
