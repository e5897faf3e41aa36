package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/status"
)

// glyphRamp orders glyphs by visual density
var glyphRamp = []rune(" .:-=+*#%@")

// Glyph picks a density glyph for a luminance in [0, 1]
func Glyph(lum float64) rune {
	if lum <= 0 {
		return ' '
	}
	i := int(lum * float64(len(glyphRamp)))
	if i >= len(glyphRamp) {
		i = len(glyphRamp) - 1
	}
	if i == 0 {
		i = 1
	}
	return glyphRamp[i]
}

// TerminalRenderer draws frames into a tcell screen with a HUD on the bottom rows
type TerminalRenderer struct {
	mu       sync.Mutex
	screen   tcell.Screen
	raster   *Rasterizer
	registry *status.Registry
	hudRows  int
	closed   bool
}

// NewTerminalRenderer takes ownership of an initialized screen; Close finalizes it
func NewTerminalRenderer(screen tcell.Screen, registry *status.Registry) *TerminalRenderer {
	w, h := screen.Size()
	r := &TerminalRenderer{
		screen:   screen,
		registry: registry,
		hudRows:  parameter.HUDRows,
	}
	r.raster = NewRasterizer(DefaultCamera(parameter.CellAspect), parameter.TerminalPointGain, w, r.sceneHeight(h))
	return r
}

func (r *TerminalRenderer) sceneHeight(h int) int {
	return max(h-r.hudRows, 0)
}

// Rasterizer exposes the camera and gains for host tuning
func (r *TerminalRenderer) Rasterizer() *Rasterizer {
	return r.raster
}

func (r *TerminalRenderer) Render(f *Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}

	w, h := r.screen.Size()
	r.raster.Resize(w, r.sceneHeight(h))
	r.raster.Draw(f)

	c := r.raster.Canvas()
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			lum := Luminance(c.At(x, y))
			g := Glyph(lum)
			if g == ' ' {
				r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcell.ColorBlack))
				continue
			}
			cr, cg, cb := c.RGB8(x, y)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))).
				Background(tcell.ColorBlack)
			r.screen.SetContent(x, y, g, nil, style)
		}
	}

	r.drawHUD(f, w, c.H)
	r.screen.Show()
	return nil
}

// HUDLines formats the status lines shown under the scene
func HUDLines(f *Frame, registry *status.Registry) []string {
	state := "active"
	if f.Quiescent {
		state = "quiescent"
	}
	lines := []string{fmt.Sprintf("bass %.2f  mid %.2f  treble %.2f  bolts %d  %s  [space] play/pause  [<-/->] seek  [+/-] volume  [q] quit",
		f.Bands.Bass, f.Bands.Mid, f.Bands.Treble, f.Active, state)}

	if registry != nil {
		var sb strings.Builder
		for _, e := range registry.Snapshot() {
			if sb.Len() > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(e.Key)
			sb.WriteByte('=')
			sb.WriteString(e.Value)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (r *TerminalRenderer) drawHUD(f *Frame, w, top int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	lines := HUDLines(f, r.registry)
	for row := 0; row < r.hudRows; row++ {
		var line []rune
		if row < len(lines) {
			line = []rune(lines[row])
		}
		for x := 0; x < w; x++ {
			ch := ' '
			if x < len(line) {
				ch = line[x]
			}
			r.screen.SetContent(x, top+row, ch, nil, style)
		}
	}
}

// Resize resynchronizes the screen; the canvas follows on the next Render
func (r *TerminalRenderer) Resize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.raster.Resize(w, r.sceneHeight(h))
	r.screen.Sync()
}

// Close finalizes the screen once
func (r *TerminalRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.screen.Fini()
	return nil
}
