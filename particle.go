package main

import (
	"image/color"
)

type ParticleKind uint8

const (
	KindFoliage ParticleKind = iota
	KindOrnament
	KindGarland
	KindAccent

	KindCount
)

func (k ParticleKind) String() string {
	switch k {
	case KindFoliage:
		return "Foliage"
	case KindOrnament:
		return "Ornament"
	case KindGarland:
		return "Garland"
	case KindAccent:
		return "Accent"
	}
	return "Unknown"
}

// ParticleRecord is the immutable per-instance dataset produced by the
// generation pass. ID doubles as the phase seed that desynchronizes
// per-instance animation.
type ParticleRecord struct {
	ID int

	AssembledPos Vec3
	DispersedPos Vec3

	BaseRot   Euler
	BaseScale float64

	Color    color.NRGBA
	HasColor bool

	Kind ParticleKind
}

// RunningTransform is the only cross-frame animation state.
// Owned exclusively by the Animator, one per record, never reallocated.
type RunningTransform struct {
	Pos Vec3
}
