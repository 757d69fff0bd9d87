package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	err := clipboard.Init()
	cm.Initialized = err == nil

	if !cm.Initialized {
		InfoLogger.Printf("clipboard unavailable: %v", err)
	}
}

// ClipboardWriteImage puts PNG bytes on the system clipboard.
// Silently a no-op when clipboard init failed.
func ClipboardWriteImage(pngBytes []byte) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtImage, pngBytes)
	}
}

func ClipboardWriteText(str string) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
	}
}
