package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/status"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// flatCamera looks straight down -Z with no orbit
func flatCamera(aspect float64) Camera {
	cam := DefaultCamera(aspect)
	cam.Pitch = 0
	cam.OrbitRate = 0
	return cam
}

func TestCameraProject(t *testing.T) {
	cam := flatCamera(2)
	view := cam.View(10)

	tests := []struct {
		name   string
		p      vmath.Vec3F
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"origin centred", vmath.Vec3F{}, 40, 12, true},
		{"unit x stretched", vmath.Vec3F{X: 1}, 54, 12, true},
		{"unit y up", vmath.Vec3F{Y: 1}, 40, 4, true},
		{"behind eye", vmath.Vec3F{Z: -5}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := cam.Project(&view, tt.p, 80, 24)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && (x != tt.wantX || y != tt.wantY) {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestCameraOffscreen(t *testing.T) {
	cam := flatCamera(1)
	view := cam.View(0)
	if _, _, _, ok := cam.Project(&view, vmath.Vec3F{X: 50}, 80, 24); ok {
		t.Error("Expected far point to be off screen")
	}
	if _, _, _, ok := cam.Project(&view, vmath.Vec3F{}, 0, 0); ok {
		t.Error("Expected empty viewport to reject every point")
	}
}

func TestCanvasAddBounds(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Add(1, 1, vmath.Vec3F{X: 1}, 0.5)
	c.Add(1, 1, vmath.Vec3F{X: 1}, 0.25)
	c.Add(-1, 0, vmath.Vec3F{X: 1}, 1)
	c.Add(4, 0, vmath.Vec3F{X: 1}, 1)

	if got := c.At(1, 1).X; !near(got, 0.75) {
		t.Errorf("Expected accumulated 0.75, got %f", got)
	}
	if got := c.At(9, 9); got != (vmath.Vec3F{}) {
		t.Errorf("Expected zero out of bounds, got %v", got)
	}

	c.Resize(2, 2)
	if c.W != 2 || c.H != 2 || c.At(1, 1) != (vmath.Vec3F{}) {
		t.Error("Expected resize to clear and shrink the canvas")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(5, 5)
	red := vmath.Vec3F{X: 1}
	c.Line(0, 0, 3, 3, red, 1)

	for i := 0; i <= 3; i++ {
		if got := c.At(i, i).X; !near(got, 1) {
			t.Errorf("Expected diagonal cell %d lit, got %f", i, got)
		}
	}
	if got := c.At(1, 0).X; got != 0 {
		t.Errorf("Expected off-line cell dark, got %f", got)
	}

	c.Clear()
	c.Line(4, 2, 0, 2, red, 0.5)
	for x := 0; x <= 4; x++ {
		if got := c.At(x, 2).X; !near(got, 0.5) {
			t.Errorf("Expected horizontal cell %d at 0.5, got %f", x, got)
		}
	}
}

func TestCanvasBloom(t *testing.T) {
	white := vmath.Vec3F{X: 1, Y: 1, Z: 1}

	t.Run("spreads excess", func(t *testing.T) {
		c := NewCanvas(3, 3)
		c.Add(1, 1, white, 1)
		c.Bloom(component.Bloom{Strength: 1, Radius: 1, Threshold: 0.5})

		if got := c.At(1, 1).X; !near(got, 1.25) {
			t.Errorf("Expected centre 1.25, got %f", got)
		}
		if got := c.At(1, 0).X; !near(got, 0.125) {
			t.Errorf("Expected orthogonal 0.125, got %f", got)
		}
		if got := c.At(0, 0).X; !near(got, 0.0625) {
			t.Errorf("Expected diagonal 0.0625, got %f", got)
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		c := NewCanvas(3, 3)
		c.Add(1, 1, white, 0.4)
		c.Bloom(component.Bloom{Strength: 1, Radius: 1, Threshold: 0.5})
		if got := c.At(0, 1).X; got != 0 {
			t.Errorf("Expected no glow, got %f", got)
		}
	})

	t.Run("zero strength", func(t *testing.T) {
		c := NewCanvas(3, 3)
		c.Add(1, 1, white, 1)
		c.Bloom(component.Bloom{Radius: 1})
		if got := c.At(1, 1).X; got != 1 {
			t.Errorf("Expected untouched centre, got %f", got)
		}
	})
}

func TestCanvasRGB8(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Add(0, 0, vmath.Vec3F{X: 2, Y: 0.5, Z: -1}, 1)
	r, g, b := c.RGB8(0, 0)
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("Expected (255,128,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		lum  float64
		want rune
	}{
		{0, ' '},
		{-1, ' '},
		{0.01, '.'},
		{0.55, '+'},
		{1, '@'},
		{7, '@'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.lum); got != tt.want {
			t.Errorf("Glyph(%f): Expected %q, got %q", tt.lum, tt.want, got)
		}
	}
}

func TestBoltEnds(t *testing.T) {
	b := BoltFrame{Position: vmath.Vec3F{X: 1}, Direction: vmath.Vec3F{Y: 1}, Length: 2}
	a, e := BoltEnds(&b)
	if a != (vmath.Vec3F{X: 1, Y: -1}) || e != (vmath.Vec3F{X: 1, Y: 1}) {
		t.Errorf("Expected ends (1,-1,0)/(1,1,0), got %v/%v", a, e)
	}
}

func TestLayerToWorld(t *testing.T) {
	tr := component.Transform{
		Position: vmath.Vec3F{Z: 1},
		Rotation: vmath.Vec3F{Z: math.Pi / 2},
		Scale:    2,
	}
	m := vmath.Mat3FromEuler(tr.Rotation)
	got := LayerToWorld(&m, tr, vmath.Vec3F{X: 1})
	if !near(got.X, 0) || !near(got.Y, 2) || !near(got.Z, 1) {
		t.Errorf("Expected (0,2,1), got %v", got)
	}
}

func pointFrame() *Frame {
	f := &Frame{}
	f.Layers[component.LayerInner] = LayerFrame{
		ID:        component.LayerInner,
		Positions: []float32{0, 0, 0},
		Colors:    []float32{1, 0, 0},
		Transform: component.Transform{Scale: 1},
	}
	f.Layers[component.LayerMiddle] = LayerFrame{ID: component.LayerMiddle, Transform: component.Transform{Scale: 1}}
	f.Layers[component.LayerCore] = LayerFrame{ID: component.LayerCore, Transform: component.Transform{Scale: 1}}
	return f
}

func TestRasterizerDraw(t *testing.T) {
	r := NewRasterizer(flatCamera(2), 0.5, 80, 24)
	f := pointFrame()
	f.Bolts = []BoltFrame{
		{Visible: true, Direction: vmath.Vec3F{X: 1}, Length: 1, Opacity: 0.5},
		{Visible: false, Direction: vmath.Vec3F{Y: 1}, Length: 1, Opacity: 0.5},
	}
	r.Draw(f)
	c := r.Canvas()

	if got := c.At(45, 12); got == (vmath.Vec3F{}) {
		t.Error("Expected bolt stroke through (45,12)")
	}
	if got := c.At(40, 8); got != (vmath.Vec3F{}) {
		t.Errorf("Expected invisible bolt not drawn, got %v", got)
	}

	// Point and bolt overlap at the centre
	want := 0.5 + 0.5*r.BoltGain*boltColor.X
	if got := c.At(40, 12).X; !near(got, want) {
		t.Errorf("Expected centre red %f, got %f", want, got)
	}
}

func TestRasterizerCoreTint(t *testing.T) {
	r := NewRasterizer(flatCamera(1), 1, 10, 10)
	f := pointFrame()
	f.Layers[component.LayerInner] = LayerFrame{ID: component.LayerInner, Transform: component.Transform{Scale: 1}}
	f.Layers[component.LayerCore] = LayerFrame{
		ID:        component.LayerCore,
		Positions: []float32{0, 0, 0},
		Colors:    []float32{0, 0, 0},
		Transform: component.Transform{Scale: 1},
	}
	f.CoreColor = vmath.Vec3F{Z: 1}
	r.Draw(f)

	if got := r.Canvas().At(5, 5); got.Z <= 0 || got.X != 0 {
		t.Errorf("Expected core pulled toward blue, got %v", got)
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestTerminalRenderer(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyEngineTicks).Store(7)

	r := NewTerminalRenderer(screen, reg)
	r.Rasterizer().Camera = flatCamera(2)

	if err := r.Render(pointFrame()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if ch, _, _, _ := screen.GetContent(20, 5); ch != '.' {
		t.Errorf("Expected dim point glyph at centre, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != ' ' {
		t.Errorf("Expected empty corner, got %q", ch)
	}

	var hud strings.Builder
	for x := 0; x < 4; x++ {
		ch, _, _, _ := screen.GetContent(x, 10)
		hud.WriteRune(ch)
	}
	if hud.String() != "bass" {
		t.Errorf("Expected HUD on row 10, got %q", hud.String())
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got %v", err)
	}
	if err := r.Render(pointFrame()); err != nil {
		t.Errorf("Expected Render after Close to be ignored, got %v", err)
	}
}

func TestHUDLines(t *testing.T) {
	reg := status.NewRegistry()
	reg.Bools.Get(status.KeyQuiescent).Store(true)
	reg.Ints.Get(status.KeyActive).Store(3)

	f := &Frame{Quiescent: true, Active: 3}
	lines := HUDLines(f, reg)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "quiescent") || !strings.Contains(lines[0], "bolts 3") {
		t.Errorf("Expected state summary, got %q", lines[0])
	}
	if lines[1] != "lightning.active=3  lightning.quiescent=true" {
		t.Errorf("Expected sorted metrics, got %q", lines[1])
	}

	if got := HUDLines(f, nil); len(got) != 1 {
		t.Errorf("Expected 1 line without registry, got %d", len(got))
	}
}

func TestCanvasWriteRGBA(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Add(1, 0, vmath.Vec3F{X: 1, Y: 1, Z: 1}, 1)
	dst := make([]byte, 8)
	c.WriteRGBA(dst)
	want := []byte{0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, dst)
		}
	}
}
