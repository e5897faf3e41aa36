package parameter

// Preview camera
// Distance and Focal are in world units; the sphere sits at the origin
const (
	CameraDistance = 4.0
	CameraFocal    = 4.0

	// CameraPitch tilts the view down onto the sphere (radians)
	CameraPitch = 0.35

	// CameraOrbitRate is the slow yaw drift (radians per second)
	CameraOrbitRate = 0.12

	// CameraZoom is the projected radius of a unit sphere as a fraction of viewport height
	CameraZoom = 0.3

	// CameraNear clips points behind or too close to the eye
	CameraNear = 0.1

	// CellAspect stretches x for terminal cells, which are about twice as tall as wide
	CellAspect = 2.0
)

// Preview shading
const (
	// TerminalPointGain / WindowPointGain scale each splatted particle's contribution
	TerminalPointGain = 0.22
	WindowPointGain   = 0.55

	// BoltGain scales bolt opacity when drawn into the accumulation buffer
	BoltGain = 1.6

	// CoreTint is how far core particle colours are pulled toward the modulated core colour
	CoreTint = 0.6

	// HUDRows reserved at the bottom of the terminal
	HUDRows = 2
)

// BoltColor is the electric tint of lightning strokes (linear rgb)
var BoltColor = [3]float64{0.85, 0.8, 1.0}
