package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/config"
	"github.com/gpbacay/Arcanus-Sphere/core"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/render"
	"github.com/gpbacay/Arcanus-Sphere/service"
	"github.com/gpbacay/Arcanus-Sphere/status"
	"github.com/gpbacay/Arcanus-Sphere/system"
)

const (
	logDir      = "logs"
	logFileName = "arcanus.log"

	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

var (
	configPath  = flag.String("config", "", "Path to a TOML tuning file")
	filePath    = flag.String("file", "", "Audio file to play (wav, mp3, flac, ogg); synthetic demo when empty")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed; 0 keeps the configured seed")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/arcanus.log")
	fpsFlag     = flag.Int("fps", 0, "Tick rate; 0 keeps the configured rate")
	pausedFlag  = flag.Bool("paused", false, "Start with playback paused")
	writeConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// setupLogging discards logs unless debug is set
func setupLogging(debug bool) *os.File {
	return core.SetupLogging(debug, logDir, logFileName)
}

// loadConfig resolves file, environment and flag overrides, in that order
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if *seedFlag != 0 {
		cfg.Scene.Seed = *seedFlag
	}
	if *fpsFlag > 0 {
		cfg.Render.FPS = *fpsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "arcanus: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	world, err := engine.NewWorld(cfg.Scene, nil)
	if err != nil {
		return err
	}
	if err := system.Register(world, cfg.Settings()); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.OnCrash(screen.Fini)

	renderer := render.NewTerminalRenderer(screen, world.Status)
	renderer.Rasterizer().Camera.OrbitRate = cfg.Render.OrbitRate

	clock := engine.NewPausableClock()
	scheduler, frames := engine.NewClockScheduler(world, clock, renderer, cfg.TickInterval())
	player := audio.NewService(&cfg.Audio, *filePath)

	hub := service.NewHub()
	if err := hub.Register(player); err != nil {
		renderer.Close()
		return err
	}
	if err := hub.Register(scheduler); err != nil {
		renderer.Close()
		return err
	}

	if err := hub.InitAll(*pausedFlag); err != nil {
		renderer.Close()
		return err
	}
	world.Source = player.Source()
	clock.SetPaused(*pausedFlag)

	if err := hub.StartAll(); err != nil {
		// Renderer Close is idempotent; the scheduler may not have reached Start
		renderer.Close()
		return err
	}
	defer hub.StopAll()

	log.Printf("arcanus started: source=%s silent=%v seed=%d", player.Label(), player.Disabled(), cfg.Scene.Seed)
	world.Status.Strings.Get(status.KeyAudioSource).Store(player.Label())

	stop := make(chan struct{})
	defer close(stop)
	core.Go(func() { publishStatus(world.Status, player, clock, frames, stop) })

	eventLoop(screen, scheduler, player, clock)
	return nil
}

// eventLoop blocks on terminal input until quit
func eventLoop(screen tcell.Screen, scheduler *engine.ClockScheduler, player *audio.Service, clock *engine.PausableClock) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			scheduler.Resize(ev.Size())

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return

			case ev.Rune() == ' ':
				playing, err := player.Toggle()
				if err != nil {
					log.Printf("toggle: %v", err)
				}
				clock.SetPaused(!playing)

			case ev.Key() == tcell.KeyLeft:
				if err := player.SeekBy(-seekStep); err != nil {
					log.Printf("seek: %v", err)
				}

			case ev.Key() == tcell.KeyRight:
				if err := player.SeekBy(seekStep); err != nil {
					log.Printf("seek: %v", err)
				}

			case ev.Rune() == '+', ev.Rune() == '=':
				player.AdjustVolume(volumeStep)

			case ev.Rune() == '-':
				player.AdjustVolume(-volumeStep)
			}
		}
	}
}

// publishStatus mirrors transport state into the registry once per rendered frame
func publishStatus(reg *status.Registry, player *audio.Service, clock *engine.PausableClock, frames <-chan struct{}, stop <-chan struct{}) {
	state := reg.Strings.Get(status.KeyEngineState)
	position := reg.Strings.Get(status.KeyAudioPosition)
	fps := reg.Floats.Get(status.KeyEngineFPS)

	count := 0
	windowStart := time.Now()
	for {
		select {
		case <-stop:
			return
		case <-frames:
		}

		count++
		if elapsed := time.Since(windowStart); elapsed >= time.Second {
			fps.Set(float64(count) / elapsed.Seconds())
			count = 0
			windowStart = time.Now()
		}

		if clock.IsPaused() {
			state.Store("paused")
		} else {
			state.Store("playing")
		}
		position.Store(player.Position().Truncate(time.Second).String())
	}
}
