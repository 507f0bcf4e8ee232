// Command mole-rush runs the terminal demo host for the tap-the-target
// game core. It simulates surface detection, feeds wall-clock frames to
// the session, and draws a top-down camera view of the grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/lixenwraith/mole-rush/audio"
	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/engine"
	"github.com/lixenwraith/mole-rush/input"
	"github.com/lixenwraith/mole-rush/render"
	"github.com/lixenwraith/mole-rush/settings"
	"github.com/lixenwraith/mole-rush/vmath"
)

const (
	// surfaceDetectDelay simulates how long the "tracker" needs before
	// it produces an anchor estimate
	surfaceDetectDelay = 2 * time.Second

	// camHeight is the demo camera's height above the surface
	camHeight = 2.0

	camFOVY = math.Pi / 3
)

var (
	verboseFlag = flag.Bool("v", false, "Verbose logging to stderr")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed, 0 for time-based")
	configFlag  = flag.String("config", "", "Path to yaml config overrides")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
)

type app struct {
	screen     tcell.Screen
	session    *engine.Session
	renderer   *render.TerminalRenderer
	translator *input.Translator
	sounds     *audio.SoundManager
	prefs      *settings.Manager

	clock *engine.TimeProvider
	start time.Time

	camera core.CameraTransform
	paused bool

	prev core.RenderState
}

func main() {
	var screen tcell.Screen

	// Ensure the terminal is restored even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nMOLE-RUSH CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		loaded, err := engine.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Persisted preferences; a missing store just means defaults
	store, err := gdata.Open(gdata.Config{AppName: "mole-rush"})
	if err != nil {
		log.Printf("Settings storage unavailable: %v", err)
		store = nil
	}
	prefs := settings.NewManager(store)
	if s := prefs.Get(); s.GridRows > 0 && s.GridCols > 0 {
		cfg.GridRows = s.GridRows
		cfg.GridCols = s.GridCols
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	session, err := engine.NewSession(cfg, vmath.NewFastRand(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio unavailable, continuing silent: %v", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(*muteFlag || prefs.Get().Muted)

	a := &app{
		screen:     screen,
		session:    session,
		renderer:   render.NewTerminalRenderer(screen),
		translator: input.NewTranslator(),
		sounds:     sounds,
		prefs:      prefs,
		clock:      engine.NewTimeProvider(),
	}
	a.start = a.clock.Now()
	a.run()
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// tick runs one frame: estimate, advance, cues, draw
func (a *app) tick() {
	now := a.clock.Now()
	a.updateCamera()

	rs := a.session.OnFrame(now, a.surfaceEstimate(now))
	a.playCues(rs)
	a.prev = rs

	x, y, w, h := a.renderer.Viewport()
	a.translator.SetViewport(x, y, w, h)
	a.renderer.RenderFrame(rs, a.camera)
}

// surfaceEstimate fakes the external tracker: nothing for the first
// couple of seconds, then a stable anchor candidate at the origin
func (a *app) surfaceEstimate(now time.Time) *core.Pose {
	if now.Sub(a.start) < surfaceDetectDelay {
		return nil
	}
	return &core.Pose{Orientation: vmath.QIdentity()}
}

// updateCamera keeps the overhead demo camera aspect in sync with the
// viewport. Terminal cells are roughly twice as tall as wide
func (a *app) updateCamera() {
	_, _, w, h := a.renderer.Viewport()
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / (float64(h) * 2.0)
	}
	a.camera = core.CameraTransform{
		Pose: core.Pose{
			Position:    vmath.Vec3F{Y: camHeight},
			Orientation: vmath.QFromAxisAngle(vmath.Vec3F{X: 1}, -math.Pi/2),
		},
		FOVY:   camFOVY,
		Aspect: aspect,
	}
}

// playCues derives sound events from frame-over-frame state changes,
// keeping the core free of audio concerns
func (a *app) playCues(rs core.RenderState) {
	if rs.Score > a.prev.Score {
		a.sounds.PlayHit()
		return
	}
	if a.prev.TargetState == core.TargetDown && rs.TargetState == core.TargetRising {
		a.sounds.PlayPop()
	}
	if a.prev.TargetState == core.TargetUp && rs.TargetState == core.TargetRetreating {
		a.sounds.PlayMiss()
	}
}

// handleEvent routes one input event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.translator.Translate(ev)

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentTap:
		a.session.OnTap(intent.NX, intent.NY, &a.camera)

	case input.IntentReset:
		a.session.Reset()

	case input.IntentTogglePause:
		a.paused = !a.paused
		a.session.SetPaused(a.paused)

	case input.IntentToggleMute:
		muted := !a.sounds.Muted()
		a.sounds.SetMuted(muted)

		s := a.prefs.Get()
		s.Muted = muted
		a.prefs.Set(s)
		if err := a.prefs.Save(); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}

	case input.IntentResize:
		a.screen.Sync()
		a.renderer.Layout()
	}
	return true
}
