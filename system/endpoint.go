package system

import (
	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// HighlightColor marks the particle a bolt lands on for the current tick
var HighlightColor = vmath.Vec3F{X: 1, Y: 1, Z: 1}

// ResolveBolt recomputes world-space geometry of an active bolt from current layer state
// Core-originating bolts start on the core surface facing the end point
func ResolveBolt(b *component.Bolt, layers *[component.LayerCount]*component.ParticleLayer, coreRadius float64) {
	endLayer := layers[b.Track.EndLayer]
	end := endLayer.WorldPoint(b.Track.EndIndex)

	var start vmath.Vec3F
	if b.Track.StartLayer == component.LayerCore {
		core := layers[component.LayerCore]
		centre := core.Transform.Position
		out := vmath.V3FNormalize(vmath.V3FSub(end, centre))
		if out == (vmath.Vec3F{}) {
			out = vmath.UnitY
		}
		start = vmath.V3FAdd(centre, vmath.V3FScale(out, coreRadius*core.Transform.Scale))
	} else {
		start = layers[b.Track.StartLayer].WorldPoint(b.Track.StartIndex)
	}

	seg := vmath.V3FSub(end, start)
	b.Start = start
	b.End = end
	b.Mid = vmath.V3FLerp(start, end, 0.5)
	b.Length = vmath.V3FMag(seg)
	if b.Length > 0 {
		b.Dir = vmath.V3FScale(seg, 1/b.Length)
	} else {
		b.Dir = vmath.UnitY
	}
	b.Orientation = vmath.QuatFromUnitVectors(vmath.UnitY, b.Dir)

	endLayer.LiveColor[b.Track.EndIndex] = HighlightColor
}
