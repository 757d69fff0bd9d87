package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ToggleModeKey eb.Key = eb.KeySpace
	RegenerateKey eb.Key = eb.KeyR

	AddPhotoKey eb.Key = eb.KeyU
	CopySeedKey eb.Key = eb.KeyC

	ShowDebugConsoleKey = eb.KeyF1

	LoadColorTableKey = eb.KeyF5
	SaveColorTableKey = eb.KeyF10
	SaveConfigKey     = eb.KeyF9

	ScreenshotKey eb.Key = eb.KeyP
)
