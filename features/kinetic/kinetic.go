// Package kinetic computes weighted kinetic energy from joint velocity
// vectors. Each sample row is one joint's velocity; the energy of a joint is
// ½·m·|v|², accumulated per joint, per axis, and in total.
package kinetic

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the calculator.
var (
	ErrNegativeMass  = errors.New("kinetic: mass cannot be negative")
	ErrMassCount     = errors.New("kinetic: mass count does not match joint count")
	ErrVelocityShape = errors.New("kinetic: velocity vector length does not match axis count")
)

// Calculator computes kinetic energy with either a shared scalar mass or one
// mass per joint.
type Calculator struct {
	scalarMass float64
	masses     []float64 // nil when scalarMass applies to all joints
}

// New creates a calculator where every joint shares the same mass.
func New(mass float64) (*Calculator, error) {
	if mass < 0 {
		return nil, ErrNegativeMass
	}
	return &Calculator{scalarMass: mass}, nil
}

// NewPerJoint creates a calculator with one mass per joint. Energy can then
// only be computed for velocity sets with exactly len(masses) joints.
func NewPerJoint(masses []float64) (*Calculator, error) {
	for i, m := range masses {
		if m < 0 {
			return nil, fmt.Errorf("%w: joint %d", ErrNegativeMass, i)
		}
	}
	out := make([]float64, len(masses))
	copy(out, masses)
	return &Calculator{masses: out}, nil
}

// Energy holds the kinetic energy decomposition of one velocity set.
type Energy struct {
	Total    float64   // energy summed over all joints and axes
	PerJoint []float64 // energy per joint
	PerAxis  []float64 // energy per velocity component, summed over joints
}

// Compute returns the kinetic energy of the given joint velocities. Each row
// of velocities is one joint's velocity vector; all rows must share the
// same dimensionality (axes is the row width).
func (c *Calculator) Compute(velocities [][]float64, axes int) (Energy, error) {
	joints := len(velocities)
	if c.masses != nil && len(c.masses) != joints {
		return Energy{}, fmt.Errorf("%w: got %d joints, want %d", ErrMassCount, joints, len(c.masses))
	}

	e := Energy{
		PerJoint: make([]float64, joints),
		PerAxis:  make([]float64, axes),
	}

	sq := make([]float64, axes)
	for i, v := range velocities {
		if len(v) != axes {
			return Energy{}, fmt.Errorf("%w: joint %d has %d components, want %d", ErrVelocityShape, i, len(v), axes)
		}
		mass := c.scalarMass
		if c.masses != nil {
			mass = c.masses[i]
		}

		vecmath.MulBlock(sq, v, v)

		var joint float64
		for k, s := range sq {
			component := 0.5 * mass * s
			joint += component
			e.PerAxis[k] += component
		}
		e.PerJoint[i] = joint
		e.Total += joint
	}

	return e, nil
}
