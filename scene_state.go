package main

import (
	"time"
)

type SceneMode uint8

const (
	ModeAssembled SceneMode = iota
	ModeDispersed
)

func (m SceneMode) String() string {
	switch m {
	case ModeAssembled:
		return "Assembled"
	case ModeDispersed:
		return "Dispersed"
	}
	return "Unknown"
}

// SceneState tracks the current layout mode and when it last changed.
// Everything the reveal wave does is timed off ModeChangedAt.
type SceneState struct {
	Mode          SceneMode
	ModeChangedAt time.Duration
}

// SetMode is edge triggered : the timestamp only moves when the mode
// actually changes.
func (s *SceneState) SetMode(mode SceneMode, now time.Duration) {
	if s.Mode == mode {
		return
	}

	s.Mode = mode
	s.ModeChangedAt = now
}

func (s *SceneState) Toggle(now time.Duration) {
	if s.Mode == ModeAssembled {
		s.SetMode(ModeDispersed, now)
	} else {
		s.SetMode(ModeAssembled, now)
	}
}

// TimeInMode returns seconds since the last mode change.
func (s SceneState) TimeInMode(now time.Duration) float64 {
	return (now - s.ModeChangedAt).Seconds()
}
