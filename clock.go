package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

func TimeSinceNow(t time.Duration) time.Duration {
	return GlobalTimerNow() - t
}

// FrameClock is the (elapsed, delta) pair handed to every per-frame tick.
type FrameClock struct {
	Elapsed time.Duration
	Delta   time.Duration
}

// clamp bounds for DeltaSeconds
// a zero delta happens on the very first frame, a huge one on frame spikes
const (
	MinFrameDelta = time.Microsecond * 100
	MaxFrameDelta = time.Millisecond * 100
)

func (c FrameClock) ElapsedSeconds() float64 {
	return c.Elapsed.Seconds()
}

func (c FrameClock) DeltaSeconds() float64 {
	return Clamp(c.Delta, MinFrameDelta, MaxFrameDelta).Seconds()
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) TickDown() {
	t.Current -= UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
