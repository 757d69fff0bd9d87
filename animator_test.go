package main

import (
	"math"
	"testing"
	"time"
)

const testFrameDelta = time.Millisecond * 16

func testRecord(kind ParticleKind, assembled, dispersed Vec3) ParticleRecord {
	return ParticleRecord{
		ID:           0,
		Kind:         kind,
		AssembledPos: assembled,
		DispersedPos: dispersed,
		BaseScale:    1,
	}
}

// runFrames ticks the animator with a fixed delta starting at `from`,
// returning the clock after the last frame.
func runFrames(a *Animator, state SceneState, sink TransformSink, from time.Duration, frames int) FrameClock {
	clock := FrameClock{Elapsed: from, Delta: testFrameDelta}

	for i := 0; i < frames; i++ {
		clock.Elapsed += testFrameDelta
		a.Tick(clock, state, sink)
	}

	return clock
}

func TestWaveHeightMonotonic(t *testing.T) {
	a := NewAnimator(nil, DefaultTuningConfig())

	prev := math.Inf(-1)
	for timeInMode := 0.0; timeInMode < 5.0; timeInMode += 0.05 {
		wave := a.WaveHeight(timeInMode)
		if wave < prev {
			t.Fatalf("wave height decreased: %v -> %v at timeInMode %v", prev, wave, timeInMode)
		}
		prev = wave
	}
}

func TestRevealTiming(t *testing.T) {
	tune := DefaultTuningConfig()
	if tune.WaveStart != -15 || tune.WaveSpeed != 20 {
		t.Fatalf("default wave tuning changed: start %v speed %v", tune.WaveStart, tune.WaveSpeed)
	}

	a := NewAnimator(nil, tune)

	// entity at height 5 becomes eligible at (5 - (-15)) / 20 = 1.0s
	if wave := a.WaveHeight(1.0); wave < 5 {
		t.Errorf("at 1.0s wave is %v, expected >= 5", wave)
	}
	if wave := a.WaveHeight(0.99); wave >= 5 {
		t.Errorf("at 0.99s wave is %v, expected < 5", wave)
	}
}

func TestModeFlipScenario(t *testing.T) {
	records := []ParticleRecord{
		testRecord(KindGarland, V3(2, 5, 0), V3(30, -10, 25)),
	}

	a := NewAnimator(records, DefaultTuningConfig())
	sink := NewInstanceBuffer(1)

	// start settled on the assembled position
	a.Running[0].Pos = records[0].AssembledPos

	var state SceneState
	state.SetMode(ModeDispersed, time.Second)

	initialDist := a.Running[0].Pos.DistanceTo(records[0].DispersedPos)

	runFrames(a, state, sink, time.Second, 30)

	finalDist := a.Running[0].Pos.DistanceTo(records[0].DispersedPos)

	if finalDist >= initialDist {
		t.Errorf("running position did not approach dispersed target: %v -> %v", initialDist, finalDist)
	}

	if scale := sink.Transforms[0].Scale; scale != 0 {
		t.Errorf("dispersed garland scale: expected exactly 0, got %v", scale)
	}
}

func TestRevealVisibilityMonotone(t *testing.T) {
	records := []ParticleRecord{
		testRecord(KindGarland, V3(1, 5, 1), V3(20, 30, -15)),
	}

	a := NewAnimator(records, DefaultTuningConfig())
	sink := NewInstanceBuffer(1)

	var state SceneState
	state.Mode = ModeAssembled
	state.ModeChangedAt = 0

	clock := FrameClock{Elapsed: 0, Delta: testFrameDelta}

	seenVisible := false

	// 6 seconds of assembled mode
	for i := 0; i < 375; i++ {
		clock.Elapsed += testFrameDelta
		a.Tick(clock, state, sink)

		visible := sink.Transforms[0].Scale > hiddenScale

		if seenVisible && !visible {
			t.Fatalf("entity flickered back to hidden at %v", clock.Elapsed)
		}
		seenVisible = seenVisible || visible
	}

	if !seenVisible {
		t.Fatal("entity never became visible")
	}
}

func TestStreakSuppression(t *testing.T) {
	tune := DefaultTuningConfig()

	records := []ParticleRecord{
		testRecord(KindGarland, V3(0, 2, 0), V3(50, 0, 0)),
	}

	a := NewAnimator(records, tune)
	sink := NewInstanceBuffer(1)

	var state SceneState
	state.Mode = ModeAssembled
	state.ModeChangedAt = 0

	// wave has long passed height 2 by now, but the instance is still
	// sitting out at its scatter slot
	clock := FrameClock{Elapsed: time.Second * 3, Delta: testFrameDelta}
	a.Tick(clock, state, sink)

	dist := a.Running[0].Pos.DistanceTo(records[0].AssembledPos)
	if dist <= tune.StreakHideDistance {
		t.Skipf("instance already traveled within %v", tune.StreakHideDistance)
	}

	if scale := sink.Transforms[0].Scale; scale > hiddenScale {
		t.Errorf("far traveling instance not suppressed: scale %v at distance %v", scale, dist)
	}
}

func TestAccentWaitsForStarHeight(t *testing.T) {
	tune := DefaultTuningConfig()

	records := []ParticleRecord{
		// assembled low, but accents key off the star height instead
		testRecord(KindAccent, V3(0, 15, 0), V3(0, 0, 40)),
	}

	a := NewAnimator(records, tune)
	a.Running[0].Pos = records[0].AssembledPos

	sink := NewInstanceBuffer(1)

	var state SceneState
	state.Mode = ModeAssembled
	state.ModeChangedAt = 0

	// wave at 5 : garland at this height would show, accents must not
	beforeTime := time.Duration(f64(time.Second) * (5 - tune.WaveStart) / tune.WaveSpeed)
	a.Tick(FrameClock{Elapsed: beforeTime, Delta: testFrameDelta}, state, sink)

	if scale := sink.Transforms[0].Scale; scale > hiddenScale {
		t.Errorf("accent visible before wave reached star height: scale %v", scale)
	}

	// wave well past the star threshold and the pop distance
	afterTime := time.Duration(f64(time.Second) *
		(tune.StarRevealHeight + tune.StarPopDistance + 1 - tune.WaveStart) / tune.WaveSpeed)
	a.Tick(FrameClock{Elapsed: afterTime, Delta: testFrameDelta}, state, sink)

	if scale := sink.Transforms[0].Scale; !nearly(scale, records[0].BaseScale, 1e-9) {
		t.Errorf("accent pop incomplete past pop distance: scale %v", scale)
	}
}

func TestOrnamentDispersedScaleBoost(t *testing.T) {
	tune := DefaultTuningConfig()

	records := []ParticleRecord{
		testRecord(KindOrnament, V3(1, 3, 0), V3(10, 10, 10)),
	}

	a := NewAnimator(records, tune)
	sink := NewInstanceBuffer(1)

	var state SceneState

	state.Mode = ModeAssembled
	a.Tick(FrameClock{Elapsed: testFrameDelta, Delta: testFrameDelta}, state, sink)
	assembledScale := sink.Transforms[0].Scale

	state.SetMode(ModeDispersed, testFrameDelta*2)
	a.Tick(FrameClock{Elapsed: testFrameDelta * 2, Delta: testFrameDelta}, state, sink)
	dispersedScale := sink.Transforms[0].Scale

	if !nearly(dispersedScale, assembledScale*tune.OrnamentDispersedScale, 1e-9) {
		t.Errorf("expected dispersed scale %v, got %v",
			assembledScale*tune.OrnamentDispersedScale, dispersedScale)
	}
}

func TestDegenerateFrameDelta(t *testing.T) {
	records := []ParticleRecord{
		testRecord(KindFoliage, V3(1, 3, 0), V3(10, 10, 10)),
	}

	a := NewAnimator(records, DefaultTuningConfig())
	sink := NewInstanceBuffer(1)

	var state SceneState
	state.Mode = ModeAssembled

	// zero and absurd deltas must both stay finite
	for _, delta := range []time.Duration{0, time.Minute} {
		a.Tick(FrameClock{Elapsed: time.Second, Delta: delta}, state, sink)

		p := sink.Transforms[0].Pos
		for _, v := range []float64{p.X, p.Y, p.Z, sink.Transforms[0].Scale} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite transform with delta %v: %+v", delta, sink.Transforms[0])
			}
		}
	}
}

func BenchmarkAnimatorTick(b *testing.B) {
	cfg := DefaultTreeConfig()
	records := GenerateTree(cfg, NewSceneRand(1))

	a := NewAnimator(records, DefaultTuningConfig())
	sink := NewInstanceBuffer(len(records))

	var state SceneState
	state.Mode = ModeAssembled

	clock := FrameClock{Elapsed: 0, Delta: testFrameDelta}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		clock.Elapsed += testFrameDelta
		a.Tick(clock, state, sink)
	}
}
