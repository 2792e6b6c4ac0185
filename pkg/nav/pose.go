// Package nav implements the discrete position navigator behind the pad:
// a current pose on a grid of valid (horizontal, vertical, rotation)
// combinations, and the movement commands that step between them.
package nav

import "math"

// Axis selects which dimension a movement command acts on.
type Axis int

const (
	Translate Axis = iota
	Rotate
)

func (a Axis) String() string {
	switch a {
	case Translate:
		return "translate"
	case Rotate:
		return "rotate"
	}
	return "unknown"
}

// RotStep is the rotation increment in degrees.
const RotStep = 45

// Pose is the pad's current position and facing on the grid.
// Rot is in degrees, a multiple of RotStep in [0, 360).
type Pose struct {
	H   int
	V   int
	Rot int
}

// DefaultPose returns the state before any successful move.
func DefaultPose() Pose {
	return Pose{H: 1, V: 1, Rot: 0}
}

// Heading returns the unit displacement for the pose's current facing,
// so "forward" always matches the direction the pad points.
func (p Pose) Heading() (dh, dv int) {
	rad := float64(p.Rot) * math.Pi / 180
	dh = int(math.Round(math.Sin(rad)))
	dv = int(math.Round(math.Cos(rad)))
	return dh, dv
}

// Translated returns the pose moved step cells along its heading.
// Rotation is unchanged.
func (p Pose) Translated(step int) Pose {
	dh, dv := p.Heading()
	p.H += dh * step
	p.V += dv * step
	return p
}

// Rotated returns the pose turned by step increments of RotStep degrees.
func (p Pose) Rotated(step int) Pose {
	p.Rot = normalizeDeg(p.Rot + RotStep*step)
	return p
}

// normalizeDeg wraps a rotation into [0, 360).
func normalizeDeg(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
