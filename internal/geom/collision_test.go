package geom

import "testing"

func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontal",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertical",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not collide",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching corners do not collide",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewAABB(0, 0, 20, 20),
			b:        NewAABB(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(9.9, 9.9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckAABBCollision(tc.a, tc.b); got != tc.expected {
				t.Errorf("CheckAABBCollision() = %v, expected %v", got, tc.expected)
			}
			// Symmetry must hold for any pair
			if got := CheckAABBCollision(tc.b, tc.a); got != tc.expected {
				t.Errorf("CheckAABBCollision() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCheckCircleCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"overlapping", NewCircle(0, 0, 5), NewCircle(6, 0, 5), true},
		{"separated", NewCircle(0, 0, 5), NewCircle(20, 0, 5), false},
		{"tangent circles do not collide", NewCircle(0, 0, 5), NewCircle(10, 0, 5), false},
		{"concentric", NewCircle(0, 0, 5), NewCircle(0, 0, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckCircleCollision(tc.a, tc.b); got != tc.expected {
				t.Errorf("CheckCircleCollision() = %v, expected %v", got, tc.expected)
			}
			if got := CheckCircleCollision(tc.b, tc.a); got != tc.expected {
				t.Errorf("CheckCircleCollision() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCheckCircleAABBCollision(t *testing.T) {
	box := NewAABB(10, 10, 20, 20)

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", NewCircle(20, 20, 1), true},
		{"overlapping edge", NewCircle(8, 20, 3), true},
		{"touching edge does not collide", NewCircle(5, 20, 5), false},
		{"far away", NewCircle(100, 100, 5), false},
		{"near corner outside", NewCircle(7, 7, 4), false},
		{"near corner overlapping", NewCircle(8, 8, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckCircleAABBCollision(tc.c, box); got != tc.expected {
				t.Errorf("CheckCircleAABBCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampAABB(t *testing.T) {
	bounds := NewAABB(0, 0, 100, 100)

	tests := []struct {
		name string
		box  AABB
		want AABB
	}{
		{
			name: "already inside",
			box:  NewAABB(10, 10, 20, 20),
			want: NewAABB(10, 10, 20, 20),
		},
		{
			name: "past right edge",
			box:  NewAABB(95, 10, 20, 20),
			want: NewAABB(80, 10, 20, 20),
		},
		{
			name: "past top-left",
			box:  NewAABB(-5, -5, 20, 20),
			want: NewAABB(0, 0, 20, 20),
		},
		{
			name: "oversized box pins to origin",
			box:  NewAABB(30, 30, 200, 200),
			want: NewAABB(0, 0, 200, 200),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampAABB(tc.box, bounds); got != tc.want {
				t.Errorf("ClampAABB() = %v, expected %v", got, tc.want)
			}
		})
	}
}
