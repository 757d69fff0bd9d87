package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.PersistentDebugMsgs {
		if msg.Key == key {
			dm.PersistentDebugMsgs[i].Value = value
			return
		}
	}

	dm.PersistentDebugMsgs = append(dm.PersistentDebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	lineCount := 0
	maxLineLen := 0

	writeMsg := func(msg DebugMsg) {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)
		dm.builder.WriteString("\n")

		lineCount++
		maxLineLen = max(maxLineLen, len(msg.Key)+2+len(msg.Value))
	}

	for _, msg := range dm.PersistentDebugMsgs {
		writeMsg(msg)
	}

	for _, msg := range dm.DebugMsgs {
		writeMsg(msg)
	}

	const charW = 6
	const charH = 16
	const margin = 5

	boxW := f64(maxLineLen*charW + margin*2)
	boxH := f64(lineCount*charH + margin*2)

	DrawFilledRect(
		dst,
		FRect(0, 0, boxW, boxH),
		ColorFade(ColorTable[ColorBg], 0.85),
		false,
	)

	ebitenutil.DebugPrintAt(dst, dm.builder.String(), margin, margin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
