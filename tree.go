package main

import (
	"image/color"
	"math"
	"math/rand/v2"
)

//==============================================
// TREE GENERATION PASS
//==============================================

// GenerateTree produces the full immutable particle dataset :
// foliage, ornaments, garland and the star accents, in that ID order.
// Everything after this runs off the returned records, so the pass only
// reruns when the shape config changes.
func GenerateTree(cfg TreeConfig, rng *rand.Rand) []ParticleRecord {
	total := cfg.FoliageCount + cfg.OrnamentCount + cfg.GarlandCount + cfg.AccentCount
	records := make([]ParticleRecord, 0, total)

	foliage1 := ParseColorStringOr(cfg.FoliagePalette[0], color.NRGBA{11, 82, 38, 255})
	foliage2 := ParseColorStringOr(cfg.FoliagePalette[1], color.NRGBA{46, 139, 87, 255})

	garland1 := ParseColorStringOr(cfg.GarlandPalette[0], color.NRGBA{255, 246, 216, 255})
	garland2 := ParseColorStringOr(cfg.GarlandPalette[1], color.NRGBA{232, 179, 60, 255})

	accentColor := ParseColorStringOr(cfg.AccentColor, color.NRGBA{255, 233, 168, 255})

	ornamentColors := make([]color.NRGBA, 0, len(cfg.OrnamentPalette))
	for _, str := range cfg.OrnamentPalette {
		ornamentColors = append(ornamentColors, ParseColorStringOr(str, color.NRGBA{220, 60, 60, 255}))
	}

	id := 0

	// ==========================
	// foliage
	// ==========================
	for i := 0; i < cfg.FoliageCount; i++ {
		records = append(records, ParticleRecord{
			ID:           id,
			Kind:         KindFoliage,
			AssembledPos: sampleCone(rng, cfg.Height, cfg.BaseRadius),
			DispersedPos: sampleScatterSphere(rng, cfg.FoliageScatterRadius),
			BaseRot:      randomBaseRot(rng),
			BaseScale:    0.6 + rng.Float64()*0.5,
			Color:        LerpColorRGB(foliage1, foliage2, rng.Float64()),
			HasColor:     true,
		})
		id++
	}

	// ==========================
	// ornaments
	// ==========================
	for i := 0; i < cfg.OrnamentCount; i++ {
		rec := ParticleRecord{
			ID:           id,
			Kind:         KindOrnament,
			AssembledPos: sampleCone(rng, cfg.Height, cfg.BaseRadius),
			DispersedPos: sampleScatterSphere(rng, cfg.OrnamentScatterRadius),
			BaseRot:      randomBaseRot(rng),
			BaseScale:    1.0 + rng.Float64()*0.3,
		}

		if len(ornamentColors) > 0 {
			rec.Color = ornamentColors[rng.IntN(len(ornamentColors))]
			rec.HasColor = true
		}

		records = append(records, rec)
		id++
	}

	// ==========================
	// garland ribbon
	// ==========================
	for i := 0; i < cfg.GarlandCount; i++ {
		t := f64(i) / f64(max(cfg.GarlandCount-1, 1))

		y := t * cfg.Height
		angle := t * cfg.GarlandTurns * 2 * math.Pi
		radius := cfg.BaseRadius*(1-t) + 0.25

		// jitter band widens toward the top so the coil doesn't read as
		// perfectly mechanical
		spread := 0.12 + t*0.55

		radial := radius + (rng.Float64()*2-1)*spread

		records = append(records, ParticleRecord{
			ID:   id,
			Kind: KindGarland,
			AssembledPos: V3(
				math.Cos(angle)*radial,
				y+(rng.Float64()*2-1)*spread*0.5,
				math.Sin(angle)*radial,
			),
			DispersedPos: sampleScatterSphere(rng, cfg.GarlandScatterRadius),
			BaseRot:      randomBaseRot(rng),
			BaseScale:    0.45 + rng.Float64()*0.2,
			Color:        LerpColorRGB(garland1, garland2, t),
			HasColor:     true,
		})
		id++
	}

	// ==========================
	// star accents
	// ==========================
	for i := 0; i < cfg.AccentCount; i++ {
		records = append(records, ParticleRecord{
			ID:           id,
			Kind:         KindAccent,
			AssembledPos: sampleStar(rng, cfg),
			DispersedPos: sampleScatterSphere(rng, cfg.AccentScatterRadius),
			BaseRot:      randomBaseRot(rng),
			BaseScale:    0.35 + rng.Float64()*0.25,
			Color:        accentColor,
			HasColor:     true,
		})
		id++
	}

	return records
}

// sampleCone picks a point inside the tree cone with uniform areal
// density per height slice : sqrt on the disk radius, plain uniform on
// height and angle.
func sampleCone(rng *rand.Rand, height, baseRadius float64) Vec3 {
	y := rng.Float64() * height
	coneRadius := baseRadius * (1 - y/height)

	r := coneRadius * math.Sqrt(rng.Float64())
	angle := rng.Float64() * 2 * math.Pi

	return V3(
		math.Cos(angle)*r,
		y,
		math.Sin(angle)*r,
	)
}

// sampleStar picks a point on a 5-lobe star outline : pick a lobe, walk a
// lerp parameter toward the tip, with the lobe width pinching linearly to
// a point, plus a small depth jitter.
func sampleStar(rng *rand.Rand, cfg TreeConfig) Vec3 {
	lobe := rng.IntN(5)
	lobeAngle := math.Pi*0.5 + f64(lobe)*2*math.Pi/5

	t := rng.Float64()
	along := cfg.StarRadius * t
	width := cfg.StarWidth * (1 - t)

	perp := (rng.Float64()*2 - 1) * width
	depth := (rng.Float64()*2 - 1) * cfg.StarDepth

	cos := math.Cos(lobeAngle)
	sin := math.Sin(lobeAngle)

	return V3(
		cos*along-sin*perp,
		cfg.StarCenterY+sin*along+cos*perp,
		depth,
	)
}

// sampleScatterSphere draws a point from a uniform volume sphere.
// The cube root keeps density constant over radius instead of clumping
// samples at the center.
func sampleScatterSphere(rng *rand.Rand, radius float64) Vec3 {
	r := radius * math.Cbrt(rng.Float64())

	cosTheta := rng.Float64()*2 - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := rng.Float64() * 2 * math.Pi

	return V3(
		r*sinTheta*math.Cos(phi),
		r*sinTheta*math.Sin(phi),
		r*cosTheta,
	)
}

func randomBaseRot(rng *rand.Rand) Euler {
	return Euler{
		X: (rng.Float64()*2 - 1) * 0.3,
		Y: rng.Float64() * 2 * math.Pi,
		Z: (rng.Float64()*2 - 1) * 0.3,
	}
}
