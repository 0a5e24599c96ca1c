package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/vehicle"
)

const (
	gridSpacing = 20.0 // Distance between ground grid lines
	segmentStep = 2.0  // Lines are split so pieces behind the camera can be dropped
	headingLine = 6.0  // Length of the overhead heading marker
)

// Chassis outline in chassis space.
var chassisBox = [2]mgl64.Vec3{{-0.75, 0, -0.3}, {0.75, 0.35, 0.3}}

// boxEdges indexes corner pairs of a box built by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Renderer draws the track and the car as a wireframe.
// It reuses its buffers between frames and is not safe for concurrent use.
type Renderer struct {
	order  []int
	depths []float64
}

// Render draws one frame into dst through p.
func (r *Renderer) Render(dst *core.Screen, p *Projector, t *Track, pose vehicle.Pose, mode Mode) {
	r.drawGround(dst, p, t)
	r.drawBillboards(dst, p, t)
	if mode == ModeOverhead {
		drawMarker(dst, p, pose.Chassis)
		return
	}
	drawCar(dst, p, pose)
}

func (r *Renderer) drawGround(dst *core.Screen, p *Projector, t *Track) {
	for x := t.GroundMin.X(); x <= t.GroundMax.X(); x += gridSpacing {
		p.Line(dst, mgl64.Vec3{x, 0, t.GroundMin.Y()}, mgl64.Vec3{x, 0, t.GroundMax.Y()}, '.', core.ColorGray)
	}
	for z := t.GroundMin.Y(); z <= t.GroundMax.Y(); z += gridSpacing {
		p.Line(dst, mgl64.Vec3{t.GroundMin.X(), 0, z}, mgl64.Vec3{t.GroundMax.X(), 0, z}, '.', core.ColorGray)
	}
}

// drawBillboards paints barriers far to near so closer quads overwrite.
func (r *Renderer) drawBillboards(dst *core.Screen, p *Projector, t *Track) {
	r.order = r.order[:0]
	r.depths = r.depths[:0]
	for i, b := range t.Billboards {
		r.order = append(r.order, i)
		r.depths = append(r.depths, p.Depth(b.Center()))
	}
	sort.Slice(r.order, func(i, j int) bool {
		return r.depths[r.order[i]] > r.depths[r.order[j]]
	})

	for _, i := range r.order {
		b := t.Billboards[i]
		color := core.ColorYellow
		if b.Ring == RingInner {
			color = core.ColorCyan
		}
		c := b.Corners()
		p.Line(dst, c[0], c[1], '#', color)
		p.Line(dst, c[3], c[2], '#', color)
		p.Line(dst, c[0], c[3], '|', color)
		p.Line(dst, c[1], c[2], '|', color)
	}
}

func drawCar(dst *core.Screen, p *Projector, pose vehicle.Pose) {
	corners := boxCorners(chassisBox[0], chassisBox[1])
	for i := range corners {
		corners[i] = mgl64.TransformCoordinate(corners[i], pose.Chassis)
	}
	for _, e := range boxEdges {
		p.Line(dst, corners[e[0]], corners[e[1]], '=', core.ColorBrightRed)
	}

	for _, w := range pose.Wheels {
		if x, y, _, ok := p.Project(w.Col(3).Vec3()); ok && p.Visible(x, y) {
			dst.SetColored(x, y, 'o', core.ColorBrightWhite)
		}
	}
}

// drawMarker draws the car as a dot with a heading line, for views where
// the chassis would be smaller than a cell.
func drawMarker(dst *core.Screen, p *Projector, chassis mgl64.Mat4) {
	pos := chassis.Col(3).Vec3()
	fwd := chassis.Col(0).Vec3()
	p.Line(dst, pos, pos.Add(fwd.Mul(headingLine)), '*', core.ColorBrightRed)
	if x, y, _, ok := p.Project(pos); ok && p.Visible(x, y) {
		dst.SetColored(x, y, '@', core.ColorBrightWhite)
	}
}

// Line draws a world-space line. It is split into short pieces and pieces
// with an end behind the camera are skipped.
func (p *Projector) Line(dst *core.Screen, a, b mgl64.Vec3, r rune, c core.Color) {
	n := int(math.Ceil(b.Sub(a).Len() / segmentStep))
	if n < 1 {
		n = 1
	}
	px, py, _, pok := p.Project(a)
	for i := 1; i <= n; i++ {
		next := a.Add(b.Sub(a).Mul(float64(i) / float64(n)))
		nx, ny, _, nok := p.Project(next)
		if pok && nok {
			dst.DrawLineIn(p.viewport, px, py, nx, ny, r, c)
		}
		px, py, pok = nx, ny, nok
	}
}

// boxCorners returns the corners of an axis-aligned box. Bit 0 of the index
// selects max X, bit 1 max Y and bit 2 max Z.
func boxCorners(lo, hi mgl64.Vec3) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := range out {
		v := lo
		if i&1 != 0 {
			v[0] = hi[0]
		}
		if i&2 != 0 {
			v[1] = hi[1]
		}
		if i&4 != 0 {
			v[2] = hi[2]
		}
		out[i] = v
	}
	return out
}
