package geom

// AABB is an axis-aligned bounding box. Pure geometric value type;
// it never owns gameplay state.
type AABB struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// NewAABB creates a box from its top-left corner and dimensions.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge.
func (a AABB) Right() float64 {
	return a.X + a.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (a AABB) Bottom() float64 {
	return a.Y + a.Height
}

// Center returns the center point of the box.
func (a AABB) Center() Vector2D {
	return Vector2D{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Contains reports whether the point lies inside the box.
// Right and bottom edges are exclusive.
func (a AABB) Contains(x, y float64) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// Circle is a circular collision volume.
type Circle struct {
	X, Y   float64 // Center
	Radius float64
}

// NewCircle creates a circle from its center and radius.
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, Radius: r}
}

// CheckAABBCollision reports whether two boxes overlap.
// Boxes that merely touch along an edge do not collide; the strict
// inequalities on both sides are load-bearing boundary behavior.
func CheckAABBCollision(a, b AABB) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// CheckCircleCollision reports whether two circles overlap.
// Tangent circles do not collide.
func CheckCircleCollision(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	sum := a.Radius + b.Radius
	return dx*dx+dy*dy < sum*sum
}

// CheckCircleAABBCollision reports whether a circle overlaps a box.
// Uses the closest point on the box to the circle center; touching
// does not count, matching the AABB boundary semantics.
func CheckCircleAABBCollision(c Circle, box AABB) bool {
	closestX := Clamp(c.X, box.X, box.Right())
	closestY := Clamp(c.Y, box.Y, box.Bottom())
	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// ClampAABB returns the box repositioned so it lies fully within bounds.
// When the box is larger than bounds on an axis, the position pins to the
// bounds origin on that axis; callers should not rely on any other
// behavior for oversized boxes.
func ClampAABB(box, bounds AABB) AABB {
	x := box.X
	if x+box.Width > bounds.Right() {
		x = bounds.Right() - box.Width
	}
	if x < bounds.X {
		x = bounds.X
	}

	y := box.Y
	if y+box.Height > bounds.Bottom() {
		y = bounds.Bottom() - box.Height
	}
	if y < bounds.Y {
		y = bounds.Y
	}

	return AABB{X: x, Y: y, Width: box.Width, Height: box.Height}
}
