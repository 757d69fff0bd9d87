package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

//==============================================
// INPUT
//==============================================

type PointerGestureKind uint8

const (
	GestureNone PointerGestureKind = iota
	GesturePinch
	GestureOpen
)

// PointerGesture mirrors what an external hand tracking pipeline would
// feed the host : a discrete gesture plus a normalized screen position.
// The mouse stands in for it here. The engine itself never reads this.
type PointerGesture struct {
	Detected      bool
	Kind          PointerGestureKind
	NormalizedPos FPoint
	AuxValue      float64
}

// InputIntents is what one frame of input asks the app to do.
type InputIntents struct {
	ToggleMode bool
	Regenerate bool
	AddPhoto   bool
	Screenshot bool

	YawDelta   float64
	PitchDelta float64
}

type InputManager struct {
	Gesture PointerGesture

	dragging   bool
	dragMoved  float64
	prevCursor FPoint
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func (im *InputManager) Dragging() bool {
	return im.dragging
}

// below this much total cursor travel a press still counts as a click
const clickSlopPx = 6

func (im *InputManager) Update() InputIntents {
	var intents InputIntents

	cursor := CursorFPt()

	// ==========================
	// drag to rotate, click to toggle
	// ==========================
	if ebi.IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		im.dragging = true
		im.dragMoved = 0
		im.prevCursor = cursor
	}

	if im.dragging && eb.IsMouseButtonPressed(eb.MouseButtonLeft) {
		delta := cursor.Sub(im.prevCursor)
		im.dragMoved += delta.Length()

		intents.YawDelta = delta.X * 0.008
		intents.PitchDelta = delta.Y * 0.005

		im.prevCursor = cursor
	}

	if im.dragging && ebi.IsMouseButtonJustReleased(eb.MouseButtonLeft) {
		im.dragging = false

		if im.dragMoved < clickSlopPx {
			intents.ToggleMode = true
		}
	}

	// ==========================
	// keys
	// ==========================
	if ebi.IsKeyJustPressed(ToggleModeKey) {
		intents.ToggleMode = true
	}
	if ebi.IsKeyJustPressed(RegenerateKey) {
		intents.Regenerate = true
	}
	if ebi.IsKeyJustPressed(AddPhotoKey) {
		intents.AddPhoto = true
	}
	if ebi.IsKeyJustPressed(ScreenshotKey) {
		intents.Screenshot = true
	}

	// ==========================
	// synthesized gesture record
	// ==========================
	im.Gesture = PointerGesture{
		Detected: true,
		Kind:     GestureNone,
		NormalizedPos: FPt(
			Clamp(cursor.X/ScreenWidth, 0, 1),
			Clamp(cursor.Y/ScreenHeight, 0, 1),
		),
	}

	if eb.IsMouseButtonPressed(eb.MouseButtonLeft) {
		im.Gesture.Kind = GesturePinch
		im.Gesture.AuxValue = im.dragMoved
	}

	return intents
}
