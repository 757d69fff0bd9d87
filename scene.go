package main

import (
	"time"
)

//==============================================
// SCENE SESSION
//==============================================

// Scene is the top level session object : it owns the generated records,
// the animator, the gallery and the per-frame instance buffer, and is
// rebuilt wholesale on regeneration.
type Scene struct {
	Config SceneConfig
	Seed   uint64

	State SceneState

	Records  []ParticleRecord
	Animator *Animator
	Gallery  *Gallery
	Carousel *CarouselScheduler

	Buffer *InstanceBuffer
}

func NewScene(cfg SceneConfig, seed uint64, photos []PhotoHandle) *Scene {
	s := &Scene{
		Config: cfg,
		Seed:   seed,
	}

	s.generate(photos)

	return s
}

func (s *Scene) generate(photos []PhotoHandle) {
	timer := NewProfTimer("scene generation")
	defer timer.Report()

	rng := NewSceneRand(s.Seed)

	s.Records = GenerateTree(s.Config.Tree, rng)

	s.Gallery = NewGallery(s.Config.Gallery, s.Seed)
	s.Gallery.SetPhotos(photos)

	s.Carousel = NewCarouselScheduler(s.Config.Carousel)
	s.Carousel.SetPanels(s.Gallery.Panels)

	s.Animator = NewAnimator(s.Records, s.Config.Tuning)

	s.rebuildBuffer()
}

func (s *Scene) rebuildBuffer() {
	s.Buffer = NewInstanceBuffer(len(s.Records) + len(s.Gallery.Panels))

	s.Animator.PushColors(s.Buffer)

	for i := range s.Gallery.Panels {
		s.Buffer.SetColor(s.PanelStart()+i, ColorTable[ColorPanel])
	}
}

// PanelStart is the instance buffer index of the first gallery panel.
func (s *Scene) PanelStart() int {
	return len(s.Records)
}

func (s *Scene) InstanceCount() int {
	return s.Buffer.Len()
}

func (s *Scene) ToggleMode(now time.Duration) {
	s.State.Toggle(now)
}

// Regenerate rebuilds the whole particle set under a new seed, keeping
// the photo list.
func (s *Scene) Regenerate(seed uint64) {
	s.Seed = seed
	photos := s.Gallery.Photos
	s.generate(photos)
}

// AddPhoto grows the gallery and re-solves its layout. The tree records
// are untouched; only the instance buffer grows.
func (s *Scene) AddPhoto(handle PhotoHandle) {
	s.Gallery.AddPhoto(handle)
	s.Carousel.SetPanels(s.Gallery.Panels)
	s.rebuildBuffer()
}

// Tick advances one frame : every particle, then every gallery panel,
// all into the shared buffer.
func (s *Scene) Tick(clock FrameClock) {
	s.Animator.Tick(clock, s.State, s.Buffer)
	s.Carousel.Tick(clock, s.State, OffsetSink{Sink: s.Buffer, Base: s.PanelStart()})
}
