package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// TakeScreenshot writes the frame next to the binary and hands the PNG
// bytes back for the clipboard.
func TakeScreenshot(img *eb.Image) (string, []byte, error) {
	timeStr := time.Now().Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	fullPath, err := RelativePath(filename)
	if err != nil {
		return "", nil, err
	}

	buffer := &bytes.Buffer{}

	bounds := img.Bounds()

	if err := png.Encode(buffer, img); err != nil {
		return "", nil, err
	}

	toWrite := buffer.Bytes()
	InfoLogger.Printf("screenshot %dx%d, %d bytes", bounds.Dx(), bounds.Dy(), len(toWrite))

	if err := os.WriteFile(fullPath, toWrite, 0644); err != nil {
		return "", nil, err
	}

	return filename, toWrite, nil
}
