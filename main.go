package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 900
	ScreenHeight float64 = 700
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagSeed uint64
var FlagPProf bool
var FlagPhotos int
var FlagConfig string

func init() {
	flag.Uint64Var(&FlagSeed, "seed", 0, "generation seed, 0 picks one from the clock")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.IntVar(&FlagPhotos, "photos", 8, "number of simulated gallery photos")
	flag.StringVar(&FlagConfig, "config", "", "path to a scene config json")
}

type App struct {
	ShowDebugConsole bool

	Scene    *Scene
	Renderer *Renderer

	Input InputManager

	photoCounter int

	takeScreenshot bool
	flashTimer     Timer

	regenCooldown Timer
}

func NewApp(cfg SceneConfig, seed uint64) *App {
	a := new(App)

	photos := make([]PhotoHandle, 0, FlagPhotos)
	for i := 0; i < FlagPhotos; i++ {
		photos = append(photos, PhotoHandle(fmt.Sprintf("photo-%d", i+1)))
	}
	a.photoCounter = FlagPhotos

	a.flashTimer = Timer{Duration: time.Millisecond * 250}

	a.regenCooldown = Timer{Duration: time.Millisecond * 400}
	a.regenCooldown.Current = a.regenCooldown.Duration

	a.Scene = NewScene(cfg, seed, photos)
	a.rebuildRenderer()

	return a
}

func (a *App) rebuildRenderer() {
	cam := NewCamera()
	if a.Renderer != nil {
		cam = a.Renderer.Camera
	}

	a.Renderer = NewRenderer(a.Scene.InstanceCount(), a.Scene.PanelStart())
	a.Renderer.Camera = cam
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	a.flashTimer.TickDown()
	a.flashTimer.ClampCurrent()

	a.regenCooldown.TickUp()
	a.regenCooldown.ClampCurrent()

	clock := FrameClock{
		Elapsed: GlobalTimerNow(),
		Delta:   UpdateDelta(),
	}

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	eb.SetWindowTitle("Cybertree FPS: " + fpsStr + " TPS: " + tpsStr)

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// input
	// ==========================
	intents := a.Input.Update()

	if intents.ToggleMode {
		a.Scene.ToggleMode(clock.Elapsed)
	}

	// regeneration rebuilds ~8k records, so holding R shouldn't retrigger
	// it every frame
	if intents.Regenerate && a.regenCooldown.Normalize() >= 1 {
		a.regenCooldown.Current = 0

		a.Scene.Regenerate(NewSceneRand(0).Uint64())
		a.rebuildRenderer()
	}

	if intents.AddPhoto {
		a.photoCounter++
		a.Scene.AddPhoto(PhotoHandle(fmt.Sprintf("photo-%d", a.photoCounter)))
		a.rebuildRenderer()
	}

	if intents.Screenshot {
		a.takeScreenshot = true
		a.flashTimer.Current = a.flashTimer.Duration
	}

	cam := &a.Renderer.Camera
	cam.Yaw += intents.YawDelta
	cam.Pitch = Clamp(cam.Pitch+intents.PitchDelta, -1.2, 1.2)
	cam.AutoOrbit = !a.Input.Dragging()

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if IsKeyJustPressed(CopySeedKey) {
		seedStr := fmt.Sprintf("%d", a.Scene.Seed)
		ClipboardWriteText(seedStr)
		InfoLogger.Printf("copied seed %s", seedStr)
	}

	if IsKeyJustPressed(SaveColorTableKey) {
		SaveColorTable()
	}

	if IsKeyJustPressed(LoadColorTableKey) {
		LoadColorTable()
	}

	if IsKeyJustPressed(SaveConfigKey) {
		path, err := RelativePath("scene.json")
		if err == nil {
			err = SaveSceneConfig(path, a.Scene.Config)
		}
		if err != nil {
			ErrorLogger.Printf("failed to save scene config: %v", err)
		} else {
			InfoLogger.Printf("saved scene config to %s", path)
		}
	}

	// ==========================
	// frame tick
	// ==========================
	a.Scene.Tick(clock)
	a.Renderer.Update()

	// ==========================
	// DebugPrint
	// ==========================
	state := a.Scene.State
	DebugPrint("mode", state.Mode)
	DebugPrintf("in mode", "%.1fs", TimeSinceNow(state.ModeChangedAt).Seconds())
	DebugPrintf("wave", "%.2f", a.Scene.Animator.WaveHeight(state.TimeInMode(clock.Elapsed)))
	DebugPrint("instances", a.Scene.InstanceCount())
	DebugPrintf("scroll", "%.2f", a.Scene.Carousel.ScrollPos(state.TimeInMode(clock.Elapsed)))

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Renderer.Draw(dst, a.Scene.Buffer)

	if norm := a.flashTimer.Normalize(); norm > 0 {
		DrawFilledRect(
			dst,
			FRect(0, 0, ScreenWidth, ScreenHeight),
			ColorFade(color.NRGBA{255, 255, 255, 255}, 0.35*norm),
			false,
		)
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}

	if a.takeScreenshot {
		a.takeScreenshot = false

		filename, pngBytes, err := TakeScreenshot(dst)
		if err != nil {
			ErrorLogger.Printf("screenshot failed: %v", err)
		} else {
			ClipboardWriteImage(pngBytes)
			InfoLogger.Printf("saved %s", filename)
		}
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		DebugPutsPersist("pprof", "true")

		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	LoadColorTable()

	cfg := DefaultSceneConfig()
	if FlagConfig != "" {
		loaded, err := LoadSceneConfig(FlagConfig)
		if err != nil {
			ErrorLogger.Printf("failed to load %s: %v", FlagConfig, err)
		} else {
			cfg = loaded
		}
	}

	app := NewApp(cfg, FlagSeed)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Cybertree")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
