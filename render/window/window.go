// Package window hosts frames in a desktop window through ebiten
package window

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/render"
	"github.com/gpbacay/Arcanus-Sphere/status"
)

// hudLineHeight matches basicfont.Face7x13
const hudLineHeight = 16

// Window is both an ebiten.Game and a render.Renderer
// Update calls the host step, which ticks the world and hands the frame to Render
type Window struct {
	mu       sync.Mutex
	raster   *render.Rasterizer
	pixels   []byte
	image    *ebiten.Image
	hud      []string
	registry *status.Registry
	step     func() error
	width    int
	height   int
	closed   bool
}

// New creates a window with a logical resolution; step runs once per ebiten update
func New(width, height int, registry *status.Registry, step func() error) *Window {
	w := &Window{
		raster:   render.NewRasterizer(render.DefaultCamera(1), parameter.WindowPointGain, width, height),
		registry: registry,
		step:     step,
	}
	w.resize(width, height)
	return w
}

// Rasterizer exposes the camera and gains for host tuning
func (w *Window) Rasterizer() *render.Rasterizer {
	return w.raster
}

func (w *Window) resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.raster.Resize(width, height)
	w.pixels = make([]byte, 4*width*height)
	if w.image != nil {
		w.image.Deallocate()
		w.image = nil
	}
}

// Render rasterizes the frame into the pixel buffer uploaded on the next Draw
func (w *Window) Render(f *render.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.raster.Draw(f)
	w.raster.Canvas().WriteRGBA(w.pixels)
	w.hud = render.HUDLines(f, w.registry)
	return nil
}

func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resize(width, height)
}

// Close ends the run loop on the next update
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return ebiten.Termination
	}
	if w.step == nil {
		return nil
	}
	return w.step()
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.image == nil {
		w.image = ebiten.NewImage(w.width, w.height)
	}
	w.image.WritePixels(w.pixels)
	screen.DrawImage(w.image, nil)

	for i, line := range w.hud {
		text.Draw(screen, line, basicfont.Face7x13, 6, w.height-hudLineHeight*(len(w.hud)-i)+8, color.White)
	}
}

// Layout implements ebiten.Game; the canvas follows the outside size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resize(outsideWidth, outsideHeight)
	return w.width, w.height
}

// Run opens the window and blocks until it is closed
func (w *Window) Run(title string) error {
	w.mu.Lock()
	width, height := w.width, w.height
	w.mu.Unlock()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}
