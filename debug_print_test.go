package main

import (
	"testing"
)

func TestPersistentDebugMsgsSurviveClear(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = dm.DebugMsgs[:0]
	dm.PersistentDebugMsgs = dm.PersistentDebugMsgs[:0]

	DebugPuts("frame", "1")
	DebugPutsPersist("pprof", "true")

	ClearDebugMsgs()

	if len(dm.DebugMsgs) != 0 {
		t.Errorf("per-frame messages survived the clear: %v", dm.DebugMsgs)
	}
	if len(dm.PersistentDebugMsgs) != 1 || dm.PersistentDebugMsgs[0].Value != "true" {
		t.Fatalf("persistent message lost: %v", dm.PersistentDebugMsgs)
	}

	// same key updates in place instead of appending
	DebugPutsPersist("pprof", "false")
	if len(dm.PersistentDebugMsgs) != 1 || dm.PersistentDebugMsgs[0].Value != "false" {
		t.Errorf("persistent update appended instead of replacing: %v", dm.PersistentDebugMsgs)
	}
}
