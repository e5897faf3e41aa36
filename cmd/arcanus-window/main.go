package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/config"
	"github.com/gpbacay/Arcanus-Sphere/core"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/render/window"
	"github.com/gpbacay/Arcanus-Sphere/service"
	"github.com/gpbacay/Arcanus-Sphere/status"
	"github.com/gpbacay/Arcanus-Sphere/system"
)

const (
	logDir      = "logs"
	logFileName = "arcanus-window.log"

	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

var (
	configPath = flag.String("config", "", "Path to a TOML tuning file")
	filePath   = flag.String("file", "", "Audio file to play (wav, mp3, flac, ogg); synthetic demo when empty")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed; 0 keeps the configured seed")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/arcanus-window.log")
	fpsFlag    = flag.Int("fps", 0, "Tick rate; 0 keeps the configured rate")
	pausedFlag = flag.Bool("paused", false, "Start with playback paused")
)

func setupLogging(debug bool) *os.File {
	return core.SetupLogging(debug, logDir, logFileName)
}

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

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "arcanus-window: %v\n", err)
		os.Exit(1)
	}
}

// session is the per-update state shared by the ebiten callbacks
type session struct {
	world  *engine.World
	clock  *engine.PausableClock
	player *audio.Service
	win    *window.Window
}

func run(cfg *config.Config) error {
	world, err := engine.NewWorld(cfg.Scene, nil)
	if err != nil {
		return err
	}
	if err := system.Register(world, cfg.Settings()); err != nil {
		return err
	}

	player := audio.NewService(&cfg.Audio, *filePath)
	hub := service.NewHub()
	if err := hub.Register(player); err != nil {
		return err
	}
	if err := hub.InitAll(*pausedFlag); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	world.Source = player.Source()
	world.Status.Strings.Get(status.KeyAudioSource).Store(player.Label())

	s := &session{
		world:  world,
		clock:  engine.NewPausableClock(),
		player: player,
	}
	s.clock.SetPaused(*pausedFlag)
	s.win = window.New(cfg.Render.Width, cfg.Render.Height, world.Status, s.step)
	s.win.Rasterizer().Camera.OrbitRate = cfg.Render.OrbitRate

	log.Printf("arcanus-window started: source=%s silent=%v seed=%d", player.Label(), player.Disabled(), cfg.Scene.Seed)

	ebiten.SetTPS(cfg.Render.FPS)
	err = s.win.Run("Arcanus Sphere")
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// step handles input, then ticks and renders unless paused
func (s *session) step() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		playing, err := s.player.Toggle()
		if err != nil {
			log.Printf("toggle: %v", err)
		}
		s.clock.SetPaused(!playing)

	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		if err := s.player.SeekBy(-seekStep); err != nil {
			log.Printf("seek: %v", err)
		}

	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		if err := s.player.SeekBy(seekStep); err != nil {
			log.Printf("seek: %v", err)
		}

	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.player.AdjustVolume(volumeStep)

	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.player.AdjustVolume(-volumeStep)
	}

	if s.clock.IsPaused() {
		s.world.Status.Strings.Get(status.KeyEngineState).Store("paused")
		return nil
	}
	s.world.Status.Strings.Get(status.KeyEngineState).Store("playing")
	s.world.Status.Floats.Get(status.KeyEngineFPS).Set(ebiten.ActualTPS())
	s.world.Status.Strings.Get(status.KeyAudioPosition).Store(s.player.Position().Truncate(time.Second).String())

	s.world.Tick(s.clock.Elapsed())
	return s.win.Render(s.world.Frame())
}
