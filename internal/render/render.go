// Package render projects the compiled dataset through the current
// orientation and emits drawable segments. Frame is a pure function of
// its inputs, so the whole pipeline tests without a live canvas.
package render

import (
	"goglobe/internal/geodata"
	"goglobe/internal/sphere"
)

// Segment is one drawable line in screen coordinates. Back marks
// back-hemisphere line work, drawn dim by the host surface.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Back   bool
}

// Options selects optional frame content.
type Options struct {
	// Backside emits back-hemisphere line work as dim segments instead
	// of culling it.
	Backside bool
}

// Frame walks every ring, projects consecutive vertex pairs, and emits
// segments. Front-front pairs come out as front segments. A pair that
// crosses the horizon is clipped where the chord meets z = 0 and the
// clip point is pushed back onto the sphere, so the visible part ends
// exactly on the horizon circle instead of leaving a gap at the
// silhouette. The hidden remainder, and fully back-facing pairs, are
// emitted as dim back segments only when opts.Backside is set. Rings
// are independent; there is no cross-ring state.
func Frame(ds geodata.Dataset, o sphere.Orientation, vp Viewport, opts Options) []Segment {
	var segs []Segment
	for _, ring := range ds.Rings {
		var prev sphere.Vec3
		for i := range ring {
			cur := o.Apply(sphere.ToUnitVector(ring.Lat(i), ring.Lon(i)))
			if i > 0 {
				segs = appendSegments(segs, prev, cur, vp, opts)
			}
			prev = cur
		}
	}
	return segs
}

func appendSegments(segs []Segment, a, b sphere.Vec3, vp Viewport, opts Options) []Segment {
	aFront := a.Z >= 0
	bFront := b.Z >= 0
	switch {
	case aFront && bFront:
		segs = append(segs, segment(Project(a, vp), Project(b, vp), false))
	case !aFront && !bFront:
		if opts.Backside {
			segs = append(segs, segment(Project(a, vp), Project(b, vp), true))
		}
	default:
		h := horizonCrossing(a, b)
		if aFront {
			segs = append(segs, segment(Project(a, vp), Project(h, vp), false))
			if opts.Backside {
				segs = append(segs, segment(Project(h, vp), Project(b, vp), true))
			}
		} else {
			segs = append(segs, segment(Project(h, vp), Project(b, vp), false))
			if opts.Backside {
				segs = append(segs, segment(Project(a, vp), Project(h, vp), true))
			}
		}
	}
	return segs
}

func segment(p, q ScreenPoint, back bool) Segment {
	return Segment{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y, Back: back}
}

// horizonCrossing finds where the chord from a to b pierces the z = 0
// plane and renormalizes it onto the unit sphere, landing the clip
// point on the horizon circle. Callers guarantee a and b lie on
// opposite hemispheres, so the denominator cannot vanish.
func horizonCrossing(a, b sphere.Vec3) sphere.Vec3 {
	t := a.Z / (a.Z - b.Z)
	return sphere.Vec3{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: 0,
	}.Normalize()
}
