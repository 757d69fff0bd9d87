package main

import (
	"math"
	"slices"

	eb "github.com/hajimehoshi/ebiten/v2"
)

//==============================================
// DEBUG RENDERER
//==============================================

// The engine proper stops at the TransformSink. This renderer is the
// rendering collaborator for the standalone binary : it projects the
// instance buffer through a simple orbiting perspective camera and draws
// particles as circles and gallery panels as framed rects.

type Camera struct {
	Yaw   float64
	Pitch float64

	Distance float64
	TargetY  float64

	AutoOrbit bool
}

func NewCamera() Camera {
	return Camera{
		Yaw:       0,
		Pitch:     0.18,
		Distance:  42,
		TargetY:   7.5,
		AutoOrbit: true,
	}
}

type Renderer struct {
	Camera Camera

	// panels start at this index in the instance buffer
	PanelStart int

	// pre-sized scratch, reused every frame
	order  []int
	depths []float64
	screen []FPoint
	radii  []float64
}

func NewRenderer(size, panelStart int) *Renderer {
	return &Renderer{
		Camera:     NewCamera(),
		PanelStart: panelStart,

		order:  make([]int, size),
		depths: make([]float64, size),
		screen: make([]FPoint, size),
		radii:  make([]float64, size),
	}
}

func (r *Renderer) Update() {
	if r.Camera.AutoOrbit {
		r.Camera.Yaw += UpdateDelta().Seconds() * 0.12
	}
}

const nearPlane = 0.5

// project maps a world position to screen space, returning false when the
// point sits behind the near plane.
func (r *Renderer) project(pos Vec3) (FPoint, float64, bool) {
	cam := &r.Camera

	cosYaw, sinYaw := math.Cos(cam.Yaw), math.Sin(cam.Yaw)
	cosP, sinP := math.Cos(cam.Pitch), math.Sin(cam.Pitch)

	px := pos.X
	py := pos.Y - cam.TargetY
	pz := pos.Z

	xr := px*cosYaw + pz*sinYaw
	zr := -px*sinYaw + pz*cosYaw

	yr := py*cosP - zr*sinP
	zr = py*sinP + zr*cosP

	zr += cam.Distance
	if zr <= nearPlane {
		return FPoint{}, 0, false
	}

	focal := ScreenHeight * 0.9
	f := focal / zr

	return FPt(
		ScreenWidth*0.5+xr*f,
		ScreenHeight*0.5-yr*f,
	), zr, true
}

func (r *Renderer) Draw(dst *eb.Image, buf *InstanceBuffer) {
	dst.Fill(ColorTable[ColorBg])

	r.order = r.order[:0]

	for i := range buf.Transforms {
		t := &buf.Transforms[i]

		if t.Scale <= hiddenScale {
			continue
		}

		pt, z, visible := r.project(t.Pos)
		if !visible {
			continue
		}

		r.screen[i] = pt
		r.depths[i] = z
		r.radii[i] = t.Scale * 0.12 * (ScreenHeight * 0.9 / z)
		r.order = append(r.order, i)
	}

	// painter's order, far to near
	slices.SortFunc(r.order, func(a, b int) int {
		if r.depths[a] > r.depths[b] {
			return -1
		}
		if r.depths[a] < r.depths[b] {
			return 1
		}
		return 0
	})

	for _, i := range r.order {
		pt := r.screen[i]

		// distance fade keeps the far side of the scatter from turning
		// into flat noise
		fade := Clamp(1.45-r.depths[i]/80, 0.25, 1)

		if i >= r.PanelStart {
			r.drawPanel(dst, buf, i, pt, fade)
			continue
		}

		clr := ColorTable[ColorFoliageFallback]
		if buf.HasColor[i] {
			clr = buf.Colors[i]
		}

		DrawFilledCircle(dst, pt.X, pt.Y, r.radii[i], ColorFade(clr, fade), false)
	}
}

func (r *Renderer) drawPanel(dst *eb.Image, buf *InstanceBuffer, i int, pt FPoint, fade float64) {
	t := &buf.Transforms[i]

	f := ScreenHeight * 0.9 / r.depths[i]

	w := t.Scale * 1.9 * f
	h := w * 0.75

	// cheap billboard foreshortening from the panel's yaw against the
	// camera
	w *= 0.35 + 0.65*math.Abs(math.Cos(t.Rot.Y-r.Camera.Yaw))

	rect := CenterFRectangle(FRectWH(w, h), pt.X, pt.Y)

	DrawFilledRect(dst, rect, ColorFade(ColorTable[ColorPanel], fade), false)
	StrokeRect(dst, rect, max(w*0.04, 1), ColorFade(ColorTable[ColorPanelFrame], fade), false)
}
