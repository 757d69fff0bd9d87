package main

import (
	"image/color"
)

// TransformSink is the boundary to the rendering side : it receives one
// transform per instance index, refreshed every frame. Colors are static
// and set once after generation.
type TransformSink interface {
	SetTransform(index int, pos Vec3, rot Euler, scale float64)
	SetColor(index int, clr color.NRGBA)
}

type InstanceTransform struct {
	Pos   Vec3
	Rot   Euler
	Scale float64
}

// InstanceBuffer is the concrete sink the renderer reads from.
// Pre-sized once, mutated in place every frame.
type InstanceBuffer struct {
	Transforms []InstanceTransform
	Colors     []color.NRGBA
	HasColor   []bool
}

func NewInstanceBuffer(size int) *InstanceBuffer {
	return &InstanceBuffer{
		Transforms: make([]InstanceTransform, size),
		Colors:     make([]color.NRGBA, size),
		HasColor:   make([]bool, size),
	}
}

func (b *InstanceBuffer) Len() int {
	return len(b.Transforms)
}

func (b *InstanceBuffer) SetTransform(index int, pos Vec3, rot Euler, scale float64) {
	b.Transforms[index] = InstanceTransform{
		Pos:   pos,
		Rot:   rot,
		Scale: scale,
	}
}

func (b *InstanceBuffer) SetColor(index int, clr color.NRGBA) {
	b.Colors[index] = clr
	b.HasColor[index] = true
}

// OffsetSink reindexes writes into a shared sink. The particle set owns
// indices [0, n) of the frame buffer, the gallery owns the rest.
type OffsetSink struct {
	Sink TransformSink
	Base int
}

func (s OffsetSink) SetTransform(index int, pos Vec3, rot Euler, scale float64) {
	s.Sink.SetTransform(s.Base+index, pos, rot, scale)
}

func (s OffsetSink) SetColor(index int, clr color.NRGBA) {
	s.Sink.SetColor(s.Base+index, clr)
}
