package main

import (
	"math"
)

//==============================================
// PER INSTANCE ANIMATION
//==============================================

// Animator owns the per-instance running positions and advances them once
// per frame. Foliage and ornaments chase their mode target directly; the
// garland and the star accents only show up behind the reveal wave that
// sweeps the tree after every switch into assembled mode.
type Animator struct {
	Records []ParticleRecord
	Running []RunningTransform

	Tuning TuningConfig
}

// scale used instead of 0 when an instance is suppressed but must stay
// resident in the instance buffer
const hiddenScale = 0.001

const phaseStep = 0.35

func NewAnimator(records []ParticleRecord, tuning TuningConfig) *Animator {
	a := &Animator{
		Records: records,
		Running: make([]RunningTransform, len(records)),
		Tuning:  tuning,
	}

	// everything starts scattered so the first assembled session plays
	// the full reveal
	for i := range records {
		a.Running[i].Pos = records[i].DispersedPos
	}

	return a
}

// PushColors writes the static per-instance colors. Called once after
// generation, not per frame.
func (a *Animator) PushColors(sink TransformSink) {
	for i := range a.Records {
		rec := &a.Records[i]
		if rec.HasColor {
			sink.SetColor(rec.ID, rec.Color)
		}
	}
}

// WaveHeight is where the reveal front sits after timeInMode seconds of
// assembled mode. Strictly increasing in timeInMode.
func (a *Animator) WaveHeight(timeInMode float64) float64 {
	return a.Tuning.WaveStart + timeInMode*a.Tuning.WaveSpeed
}

func (a *Animator) Tick(clock FrameClock, state SceneState, sink TransformSink) {
	t := clock.ElapsedSeconds()
	dt := clock.DeltaSeconds()

	wave := a.WaveHeight(state.TimeInMode(clock.Elapsed))

	for i := range a.Records {
		rec := &a.Records[i]
		run := &a.Running[i]

		var pos Vec3
		var rot Euler
		var scale float64

		switch rec.Kind {
		case KindFoliage, KindOrnament:
			pos, rot, scale = a.tickFloater(rec, run, state, t, dt)
		default:
			pos, rot, scale = a.tickRevealer(rec, run, state, wave, t, dt)
		}

		sink.SetTransform(rec.ID, pos, rot, scale)
	}
}

// tickFloater handles foliage and ornaments : chase the mode target,
// bob gently while assembled, drift chaotically while dispersed.
func (a *Animator) tickFloater(
	rec *ParticleRecord,
	run *RunningTransform,
	state SceneState,
	t, dt float64,
) (Vec3, Euler, float64) {
	tune := &a.Tuning

	phase := f64(rec.ID) * phaseStep
	assembled := state.Mode == ModeAssembled

	var target Vec3
	var speed float64

	if assembled {
		target = rec.AssembledPos
		target.Y += tune.BobAmplitude * math.Sin(t*tune.BobFrequency+phase)
		speed = tune.AssembleLerpSpeed
	} else {
		target = rec.DispersedPos
		target.X += tune.DriftAmplitude * math.Sin(t*0.7+phase*1.3)
		target.Y += tune.DriftAmplitude * math.Sin(t*0.9+phase*0.7)
		target.Z += tune.DriftAmplitude * math.Sin(t*0.53+phase)
		speed = tune.DisperseLerpSpeed
	}

	run.Pos = Vec3Lerp(run.Pos, target, ExpLerpT(speed, dt))

	spin := tune.SpinAssembled
	if !assembled {
		spin = tune.SpinDispersed
	}

	rot := rec.BaseRot
	rot.Y += t * spin
	if rec.Kind == KindOrnament {
		rot.X += t * spin * 0.5
	}

	scale := rec.BaseScale
	if !assembled && rec.Kind == KindOrnament {
		scale *= tune.OrnamentDispersedScale
	}

	return run.Pos, rot, scale
}

// tickRevealer handles the garland and the star accents.
//
// While assembled, the wave front decides everything : instances the
// front has passed snap quickly into place and ramp up from zero scale,
// instances still waiting crawl and stay invisible. Accents wait for the
// front to clear the star height instead of their own height, then pop
// in over a bounded distance past it.
func (a *Animator) tickRevealer(
	rec *ParticleRecord,
	run *RunningTransform,
	state SceneState,
	wave float64,
	t, dt float64,
) (Vec3, Euler, float64) {
	tune := &a.Tuning

	rot := rec.BaseRot
	if rec.Kind == KindAccent {
		rot.Z += math.Sin(t*2+f64(rec.ID)*phaseStep) * 0.2
	}

	if state.Mode == ModeDispersed {
		// hidden, parked on its scatter slot, ready for the next reveal
		run.Pos = Vec3Lerp(run.Pos, rec.DispersedPos, ExpLerpT(tune.SlowLerpSpeed, dt))
		return run.Pos, rot, 0
	}

	var revealed bool
	var scale float64

	if rec.Kind == KindAccent {
		revealed = wave >= tune.StarRevealHeight
		pop := Clamp((wave-tune.StarRevealHeight)/tune.StarPopDistance, 0, 1)
		scale = rec.BaseScale * EaseOutCubic(pop)
	} else {
		revealed = wave >= rec.AssembledPos.Y
		ramp := Clamp((wave-rec.AssembledPos.Y)/tune.RevealRampDistance, 0, 1)
		scale = rec.BaseScale * ramp
	}

	speed := tune.SlowLerpSpeed
	if revealed {
		speed = tune.FastLerpSpeed
	}

	run.Pos = Vec3Lerp(run.Pos, rec.AssembledPos, ExpLerpT(speed, dt))

	// an instance that is visible but still traveling would smear a
	// streak across the scene, so keep it hidden until it's close
	if run.Pos.DistanceTo(rec.AssembledPos) > tune.StreakHideDistance {
		scale = min(scale, hiddenScale)
	}

	return run.Pos, rot, scale
}
