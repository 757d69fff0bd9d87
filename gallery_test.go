package main

import (
	"fmt"
	"math"
	"testing"
)

func makePhotos(n int) []PhotoHandle {
	photos := make([]PhotoHandle, 0, n)
	for i := 0; i < n; i++ {
		photos = append(photos, PhotoHandle(fmt.Sprintf("photo-%d", i+1)))
	}
	return photos
}

func TestGalleryCollisionGuarantee(t *testing.T) {
	cfg := DefaultGalleryConfig()

	// few enough panels that random placement succeeds for all of them
	records := SolveGalleryLayout(makePhotos(8), cfg, NewSceneRand(11))

	for i := range records {
		for j := i + 1; j < len(records); j++ {
			d := records[i].AssembledPos.DistanceTo(records[j].AssembledPos)
			if d < cfg.MinDistance {
				t.Errorf("panels %d and %d are %v apart, need %v", i, j, d, cfg.MinDistance)
			}
		}
	}
}

func TestGalleryAlwaysPlacesAll(t *testing.T) {
	cfg := DefaultGalleryConfig()

	// way past what the band can hold without overlap, forcing the
	// spiral fallback
	const n = 300

	photos := makePhotos(n)
	records := SolveGalleryLayout(photos, cfg, NewSceneRand(12))

	if len(records) != n {
		t.Fatalf("expected %d records, got %d", n, len(records))
	}

	for i := range records {
		if records[i].Handle != photos[i] {
			t.Fatalf("record %d has handle %q, expected %q", i, records[i].Handle, photos[i])
		}
		if records[i].Slot != i {
			t.Fatalf("record %d has slot %d", i, records[i].Slot)
		}
	}
}

func TestGalleryBandBounds(t *testing.T) {
	cfg := DefaultGalleryConfig()
	records := SolveGalleryLayout(makePhotos(50), cfg, NewSceneRand(13))

	for i := range records {
		y := records[i].AssembledPos.Y
		if y < cfg.BandMinY-1e-9 || y > cfg.BandMaxY+1e-9 {
			t.Errorf("panel %d at height %v outside band [%v, %v]", i, y, cfg.BandMinY, cfg.BandMaxY)
		}
	}
}

func TestGalleryOutwardOrientation(t *testing.T) {
	cfg := DefaultGalleryConfig()
	records := SolveGalleryLayout(makePhotos(20), cfg, NewSceneRand(14))

	for i := range records {
		rec := &records[i]

		outwardYaw := math.Atan2(rec.AssembledPos.X, rec.AssembledPos.Z)

		diff := math.Abs(WrapAngle(rec.AssembledRot.Y) - WrapAngle(outwardYaw))
		// account for wraparound at 2π
		diff = min(diff, 2*math.Pi-diff)

		if diff > cfg.OrientationJitter+1e-9 {
			t.Errorf("panel %d yaw off outward by %v, jitter cap is %v", i, diff, cfg.OrientationJitter)
		}

		if math.Abs(rec.AssembledRot.X) > cfg.OrientationJitter+1e-9 {
			t.Errorf("panel %d X tilt %v beyond jitter cap", i, rec.AssembledRot.X)
		}
		if math.Abs(rec.AssembledRot.Z) > cfg.OrientationJitter+1e-9 {
			t.Errorf("panel %d Z tilt %v beyond jitter cap", i, rec.AssembledRot.Z)
		}
	}
}

func TestGalleryAppendKeepsEarlierSlots(t *testing.T) {
	g := NewGallery(DefaultGalleryConfig(), 21)

	g.SetPhotos(makePhotos(5))

	before := make([]Vec3, len(g.Panels))
	for i := range g.Panels {
		before[i] = g.Panels[i].AssembledPos
	}

	g.AddPhoto("photo-6")

	if len(g.Panels) != 6 {
		t.Fatalf("expected 6 panels, got %d", len(g.Panels))
	}

	for i, pos := range before {
		if g.Panels[i].AssembledPos != pos {
			t.Errorf("panel %d moved after append: %v -> %v", i, pos, g.Panels[i].AssembledPos)
		}
	}
}

func TestGallerySetPhotosSameLengthNoResolve(t *testing.T) {
	g := NewGallery(DefaultGalleryConfig(), 22)

	if regenerated := g.SetPhotos(makePhotos(4)); !regenerated {
		t.Error("first SetPhotos should solve a layout")
	}
	if regenerated := g.SetPhotos(makePhotos(4)); regenerated {
		t.Error("same length SetPhotos should not re-solve")
	}
}

func TestGalleryEmptyPhotoList(t *testing.T) {
	records := SolveGalleryLayout(nil, DefaultGalleryConfig(), NewSceneRand(23))
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
