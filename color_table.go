package main

import (
	"encoding/json"
	"image/color"
	"os"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorPanel
	ColorPanelFrame

	ColorFoliageFallback
	ColorOrnamentFallback

	ColorTableSize
)

func (i ColorTableIndex) String() string {
	switch i {
	case ColorBg:
		return "ColorBg"
	case ColorPanel:
		return "ColorPanel"
	case ColorPanelFrame:
		return "ColorPanelFrame"
	case ColorFoliageFallback:
		return "ColorFoliageFallback"
	case ColorOrnamentFallback:
		return "ColorOrnamentFallback"
	}
	return "Unknown"
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable[ColorBg] = color.NRGBA{8, 10, 18, 255}

	ColorTable[ColorPanel] = color.NRGBA{235, 235, 245, 255}
	ColorTable[ColorPanelFrame] = color.NRGBA{120, 130, 160, 255}

	ColorTable[ColorFoliageFallback] = color.NRGBA{40, 120, 60, 255}
	ColorTable[ColorOrnamentFallback] = color.NRGBA{220, 70, 70, 255}
}

func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	colorTable := ColorTable

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			continue
		}

		clr, err := ParseColorString(v)
		if err != nil {
			ErrorLogger.Printf("color table entry %q: %v", k, err)
			continue
		}

		colorTable[index] = clr
	}

	return colorTable, nil
}

const colorTableFileName = "colors.json"

func SaveColorTable() {
	jsonBytes, err := ColorTableToJson(ColorTable)
	if err != nil {
		ErrorLogger.Printf("failed to save color table: %v", err)
		return
	}

	path, err := RelativePath(colorTableFileName)
	if err != nil {
		ErrorLogger.Printf("failed to save color table: %v", err)
		return
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		ErrorLogger.Printf("failed to save color table: %v", err)
		return
	}

	InfoLogger.Printf("saved color table to %s", path)
}

func LoadColorTable() {
	path, err := RelativePath(colorTableFileName)
	if err != nil {
		return
	}

	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		// no file is fine, defaults stay
		return
	}

	table, err := ColorTableFromJson(jsonBytes)
	if err != nil {
		ErrorLogger.Printf("failed to load color table: %v", err)
		return
	}

	ColorTable = table
	InfoLogger.Printf("loaded color table from %s", path)
}
