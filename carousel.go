package main

import (
	"math"
)

//==============================================
// GALLERY CAROUSEL
//==============================================

// CarouselScheduler drives the gallery panels. While dispersed it cycles
// them through a repeating hold/move schedule with the centered panel
// magnified; while assembled it eases them back onto their solved cone
// slots.
type CarouselScheduler struct {
	Config CarouselConfig

	Panels  []GalleryPanelRecord
	Running []PanelRunning
}

// PanelRunning is the smoothed per-panel state, one entry per panel,
// mutated in place every frame.
type PanelRunning struct {
	Pos   Vec3
	Rot   Euler
	Scale float64
}

func NewCarouselScheduler(cfg CarouselConfig) *CarouselScheduler {
	return &CarouselScheduler{
		Config: cfg,
	}
}

// SetPanels swaps in a new layout. Panels that survived the re-solve keep
// their running state so nothing pops.
func (c *CarouselScheduler) SetPanels(panels []GalleryPanelRecord) {
	kept := min(len(panels), len(c.Running))

	running := make([]PanelRunning, len(panels))
	copy(running, c.Running[:kept])

	for i := kept; i < len(panels); i++ {
		running[i] = PanelRunning{
			Pos:   panels[i].AssembledPos,
			Rot:   panels[i].AssembledRot,
			Scale: 1,
		}
	}

	c.Panels = panels
	c.Running = running
}

func (c *CarouselScheduler) CycleSeconds() float64 {
	return c.Config.HoldSeconds + c.Config.MoveSeconds
}

// ScrollPos is the fractional scroll index after timeInMode seconds :
// constant at a whole number during HOLD, eased toward the next whole
// number during MOVE. Adding k whole cycles to timeInMode adds exactly k.
func (c *CarouselScheduler) ScrollPos(timeInMode float64) float64 {
	cycle := c.CycleSeconds()
	if cycle <= 0 {
		return 0
	}

	idx := math.Floor(timeInMode / cycle)
	frac := timeInMode - idx*cycle

	if frac < c.Config.HoldSeconds {
		return idx
	}

	// a zero move window means the hop is instant
	if c.Config.MoveSeconds <= 0 {
		return idx + 1
	}

	moveT := (frac - c.Config.HoldSeconds) / c.Config.MoveSeconds

	return idx + EaseInOutCubic(Clamp(moveT, 0, 1))
}

func (c *CarouselScheduler) Tick(clock FrameClock, state SceneState, sink TransformSink) {
	n := len(c.Panels)
	if n == 0 {
		return
	}

	cfg := &c.Config

	t := clock.ElapsedSeconds()
	dt := clock.DeltaSeconds()

	dispersed := state.Mode == ModeDispersed

	scroll := 0.0
	if dispersed {
		scroll = c.ScrollPos(state.TimeInMode(clock.Elapsed))
	}

	totalWidth := f64(n) * cfg.SlotSpacing

	for i := range c.Panels {
		panel := &c.Panels[i]
		run := &c.Running[i]

		var target Vec3
		var targetRot Euler
		var targetScale float64
		var speed float64

		if dispersed {
			offset := WrapOffset((f64(panel.Slot)-scroll)*cfg.SlotSpacing, totalWidth)

			target = V3(offset, cfg.CenterY, cfg.CenterZ)
			targetScale = cfg.SideScale

			// magnification falloff toward the visual center
			centerK := 0.0
			if dist := math.Abs(offset); dist < cfg.InfluenceDistance {
				centerK = EaseInOutCubic(1 - dist/cfg.InfluenceDistance)
				targetScale = Lerp(cfg.SideScale, cfg.CenterScale, centerK)
				target.Z += cfg.ForwardDepth * centerK
			}

			// side panels wobble, the centered one holds steady
			wobble := cfg.WobbleAmplitude * math.Sin(t*cfg.WobbleFrequency+f64(panel.Slot)*1.1)
			targetRot = Euler{Z: wobble * (1 - centerK)}

			speed = cfg.DispersedLerpSpeed
		} else {
			target = panel.AssembledPos
			targetRot = panel.AssembledRot
			targetScale = 1
			speed = cfg.AssembledLerpSpeed
		}

		lerpT := ExpLerpT(speed, dt)

		run.Pos = Vec3Lerp(run.Pos, target, lerpT)
		run.Rot = EulerLerp(run.Rot, targetRot, lerpT)
		run.Scale = Lerp(run.Scale, targetScale, lerpT)

		sink.SetTransform(i, run.Pos, run.Rot, run.Scale)
	}
}
