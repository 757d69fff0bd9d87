package main

import (
	"encoding/json"
	"os"
)

// TuningConfig holds the animation tuning constants.
// The wave and streak numbers are hand tuned values with no derivation,
// kept overridable instead of folded into formulas.
type TuningConfig struct {
	WaveStart float64
	WaveSpeed float64

	StarRevealHeight float64
	StarPopDistance  float64

	RevealRampDistance float64
	StreakHideDistance float64

	SlowLerpSpeed float64
	FastLerpSpeed float64

	AssembleLerpSpeed float64
	DisperseLerpSpeed float64

	BobAmplitude float64
	BobFrequency float64

	DriftAmplitude float64

	OrnamentDispersedScale float64

	SpinAssembled float64
	SpinDispersed float64
}

func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		WaveStart: -15,
		WaveSpeed: 20,

		StarRevealHeight: 14.0,
		StarPopDistance:  6.0,

		RevealRampDistance: 2.5,
		StreakHideDistance: 10.0,

		SlowLerpSpeed: 0.8,
		FastLerpSpeed: 6.0,

		AssembleLerpSpeed: 2.0,
		DisperseLerpSpeed: 1.5,

		BobAmplitude: 0.15,
		BobFrequency: 1.2,

		DriftAmplitude: 1.5,

		OrnamentDispersedScale: 1.2,

		SpinAssembled: 0.35,
		SpinDispersed: 1.3,
	}
}

// TreeConfig is the shape parameter set for the generation pass.
// Palette entries are css color strings.
type TreeConfig struct {
	Height     float64
	BaseRadius float64

	FoliageCount  int
	OrnamentCount int
	GarlandCount  int
	AccentCount   int

	GarlandTurns float64

	StarCenterY float64
	StarRadius  float64
	StarWidth   float64
	StarDepth   float64

	// uniform-volume scatter sphere radius per kind
	FoliageScatterRadius  float64
	OrnamentScatterRadius float64
	GarlandScatterRadius  float64
	AccentScatterRadius   float64

	FoliagePalette  [2]string
	OrnamentPalette []string
	GarlandPalette  [2]string
	AccentColor     string
}

func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		Height:     14.0,
		BaseRadius: 5.5,

		FoliageCount:  6000,
		OrnamentCount: 80,
		GarlandCount:  1200,
		AccentCount:   900,

		GarlandTurns: 9,

		StarCenterY: 15.2,
		StarRadius:  1.6,
		StarWidth:   0.55,
		StarDepth:   0.35,

		FoliageScatterRadius:  45,
		OrnamentScatterRadius: 55,
		GarlandScatterRadius:  60,
		AccentScatterRadius:   80,

		FoliagePalette:  [2]string{"#0B5226", "#2E8B57"},
		OrnamentPalette: []string{"#D03A3A", "#E3B341", "#3A66D0", "#C850C0"},
		GarlandPalette:  [2]string{"#FFF6D8", "#E8B33C"},
		AccentColor:     "#FFE9A8",
	}
}

func (c TreeConfig) ScatterRadius(kind ParticleKind) float64 {
	switch kind {
	case KindFoliage:
		return c.FoliageScatterRadius
	case KindOrnament:
		return c.OrnamentScatterRadius
	case KindGarland:
		return c.GarlandScatterRadius
	case KindAccent:
		return c.AccentScatterRadius
	}
	return c.FoliageScatterRadius
}

type GalleryConfig struct {
	MinDistance float64
	MaxAttempts int

	BandMinY float64
	BandMaxY float64

	// placement radius at height y is
	// BaseRadius * (1 - y/ConeHeight) + RadiusPadding
	ConeHeight    float64
	BaseRadius    float64
	RadiusPadding float64

	// per axis orientation jitter in radians
	OrientationJitter float64
}

func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		MinDistance: 3.6,
		MaxAttempts: 100,

		BandMinY: 3.0,
		BandMaxY: 11.0,

		ConeHeight:    14.0,
		BaseRadius:    5.5,
		RadiusPadding: 1.4,

		OrientationJitter: 10.0 * 3.14159265358979 / 180.0,
	}
}

type CarouselConfig struct {
	HoldSeconds float64
	MoveSeconds float64

	SlotSpacing float64

	CenterY float64
	CenterZ float64

	InfluenceDistance float64
	CenterScale       float64
	SideScale         float64
	ForwardDepth      float64

	WobbleAmplitude float64
	WobbleFrequency float64

	DispersedLerpSpeed float64
	AssembledLerpSpeed float64
}

func DefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		HoldSeconds: 2.0,
		MoveSeconds: 1.0,

		SlotSpacing: 4.0,

		CenterY: 8.0,
		CenterZ: 14.0,

		InfluenceDistance: 5.0,
		CenterScale:       1.6,
		SideScale:         0.55,
		ForwardDepth:      2.0,

		WobbleAmplitude: 0.08,
		WobbleFrequency: 1.3,

		DispersedLerpSpeed: 8.0,
		AssembledLerpSpeed: 3.0,
	}
}

// SceneConfig is the on-disk bundle of every tunable.
type SceneConfig struct {
	Tuning   TuningConfig
	Tree     TreeConfig
	Gallery  GalleryConfig
	Carousel CarouselConfig
}

func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Tuning:   DefaultTuningConfig(),
		Tree:     DefaultTreeConfig(),
		Gallery:  DefaultGalleryConfig(),
		Carousel: DefaultCarouselConfig(),
	}
}

func SceneConfigToJson(cfg SceneConfig) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func SceneConfigFromJson(cfgJson []byte) (SceneConfig, error) {
	// missing fields keep their defaults
	cfg := DefaultSceneConfig()

	err := json.Unmarshal(cfgJson, &cfg)
	if err != nil {
		return DefaultSceneConfig(), err
	}

	return cfg, nil
}

func LoadSceneConfig(path string) (SceneConfig, error) {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return DefaultSceneConfig(), err
	}

	return SceneConfigFromJson(jsonBytes)
}

func SaveSceneConfig(path string, cfg SceneConfig) error {
	jsonBytes, err := SceneConfigToJson(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonBytes, 0644)
}
