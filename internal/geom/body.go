package geom

// PhysicsBody integrates position from accumulated forces.
// Forces apply through ApplyForce; Update consumes the accumulated
// acceleration and resets it, so acceleration never carries across ticks.
type PhysicsBody struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D // Reset to zero by every Update call
	Mass         float64
	Friction     float64 // Per-tick velocity damping in [0, 1)
	Restitution  float64 // Bounce energy retention in [0, 1]
}

// NewPhysicsBody creates a body at the given position.
// Non-positive mass is coerced to 1 so force division stays defined.
func NewPhysicsBody(x, y, mass float64) *PhysicsBody {
	if mass <= 0 {
		mass = 1
	}
	return &PhysicsBody{
		Position: Vector2D{X: x, Y: y},
		Mass:     mass,
	}
}

// ApplyForce accumulates acceleration for the next Update (a += F/m).
func (b *PhysicsBody) ApplyForce(f Vector2D) {
	b.Acceleration = b.Acceleration.Add(f.Scale(1 / b.Mass))
}

// ApplyGravity applies a downward force proportional to mass,
// so gravitational acceleration is mass-independent.
func (b *PhysicsBody) ApplyGravity(g float64) {
	b.ApplyForce(Vector2D{Y: g * b.Mass})
}

// Update advances the body by dt seconds: velocity picks up the
// accumulated acceleration, friction damps it, position integrates,
// and the acceleration accumulator resets.
func (b *PhysicsBody) Update(dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Velocity = b.Velocity.Scale(1 - b.Friction)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Acceleration = Vector2D{}
}

// BounceOffBounds reflects the body off the edges of bounds.
// Each axis is handled independently (x pass, then y pass), so a corner
// hit can invert both components in the same call.
func (b *PhysicsBody) BounceOffBounds(bounds AABB) {
	if b.Position.X < bounds.X {
		b.Position.X = bounds.X
		b.Velocity.X = -b.Velocity.X * b.Restitution
	} else if b.Position.X > bounds.Right() {
		b.Position.X = bounds.Right()
		b.Velocity.X = -b.Velocity.X * b.Restitution
	}

	if b.Position.Y < bounds.Y {
		b.Position.Y = bounds.Y
		b.Velocity.Y = -b.Velocity.Y * b.Restitution
	} else if b.Position.Y > bounds.Bottom() {
		b.Position.Y = bounds.Bottom()
		b.Velocity.Y = -b.Velocity.Y * b.Restitution
	}
}
