package main

import (
	"math"
	"math/rand/v2"
)

//==============================================
// GALLERY PLACEMENT
//==============================================

// PhotoHandle is an opaque reference to an uploaded image. The engine
// never looks inside it.
type PhotoHandle string

type GalleryPanelRecord struct {
	Slot   int
	Handle PhotoHandle

	AssembledPos Vec3
	AssembledRot Euler
}

const goldenAngle = math.Pi * (3 - 2.2360679774997896) // π(3-√5)

// SolveGalleryLayout places every photo on the conical band around the
// tree. Random rejection sampling keeps panels MinDistance apart; when a
// panel runs out of attempts it falls onto a deterministic spiral slot
// instead, so the solver always returns exactly len(photos) records.
func SolveGalleryLayout(photos []PhotoHandle, cfg GalleryConfig, rng *rand.Rand) []GalleryPanelRecord {
	records := make([]GalleryPanelRecord, 0, len(photos))
	placed := make([]Vec3, 0, len(photos))

	for i, handle := range photos {
		pos, ok := tryRandomPlacement(placed, cfg, rng)
		if !ok {
			pos = spiralPlacement(i, cfg)
		}

		records = append(records, GalleryPanelRecord{
			Slot:         i,
			Handle:       handle,
			AssembledPos: pos,
			AssembledRot: outwardRot(pos, cfg, rng),
		})
		placed = append(placed, pos)
	}

	return records
}

func bandRadius(cfg GalleryConfig, y float64) float64 {
	return cfg.BaseRadius*(1-y/cfg.ConeHeight) + cfg.RadiusPadding
}

func bandPoint(cfg GalleryConfig, y, angle float64) Vec3 {
	r := bandRadius(cfg, y)
	return V3(
		math.Cos(angle)*r,
		y,
		math.Sin(angle)*r,
	)
}

func tryRandomPlacement(placed []Vec3, cfg GalleryConfig, rng *rand.Rand) (Vec3, bool) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		y := cfg.BandMinY + rng.Float64()*(cfg.BandMaxY-cfg.BandMinY)
		angle := rng.Float64() * 2 * math.Pi

		pos := bandPoint(cfg, y, angle)

		collides := false
		for _, other := range placed {
			if pos.Sub(other).LengthSquared() < cfg.MinDistance*cfg.MinDistance {
				collides = true
				break
			}
		}

		if !collides {
			return pos, true
		}
	}

	return Vec3{}, false
}

// spiralPlacement is the exhaustion fallback : a fixed spiral indexed by
// slot. It may overlap but it always terminates and never drops a panel.
func spiralPlacement(slot int, cfg GalleryConfig) Vec3 {
	bandHeight := cfg.BandMaxY - cfg.BandMinY

	y := cfg.BandMinY + math.Mod(f64(slot)*bandHeight*0.31, bandHeight)
	angle := f64(slot) * goldenAngle

	return bandPoint(cfg, y, angle)
}

// outwardRot orients a panel toward the central axis at its own height,
// flips it 180° so it faces out, then applies a small random tilt.
func outwardRot(pos Vec3, cfg GalleryConfig, rng *rand.Rand) Euler {
	inwardYaw := math.Atan2(-pos.X, -pos.Z)
	yaw := inwardYaw + math.Pi

	jitter := func() float64 {
		return (rng.Float64()*2 - 1) * cfg.OrientationJitter
	}

	return Euler{
		X: jitter(),
		Y: yaw + jitter(),
		Z: jitter(),
	}
}

//==============================================
// GALLERY SESSION
//==============================================

// Gallery owns the photo list and its solved layout. The list only grows
// during a session; re-solving with the stored seed replays the earlier
// draws so panels that are already up keep their slots.
type Gallery struct {
	Config GalleryConfig
	Seed   uint64

	Photos []PhotoHandle
	Panels []GalleryPanelRecord
}

func NewGallery(cfg GalleryConfig, seed uint64) *Gallery {
	// a zero seed would re-roll on every solve, shuffling panels that are
	// already placed
	if seed == 0 {
		seed = NewSceneRand(0).Uint64()
	}

	return &Gallery{
		Config: cfg,
		Seed:   seed,
	}
}

// SetPhotos replaces the photo list, re-solving the layout when the
// length changed. Reports whether a new layout was produced.
func (g *Gallery) SetPhotos(photos []PhotoHandle) bool {
	if len(photos) == len(g.Photos) {
		return false
	}

	g.Photos = g.Photos[:0]
	g.Photos = append(g.Photos, photos...)

	g.Panels = SolveGalleryLayout(g.Photos, g.Config, NewSceneRand(g.Seed))

	return true
}

func (g *Gallery) AddPhoto(handle PhotoHandle) {
	g.Photos = append(g.Photos, handle)
	g.Panels = SolveGalleryLayout(g.Photos, g.Config, NewSceneRand(g.Seed))
}
