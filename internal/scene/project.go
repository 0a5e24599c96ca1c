package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/buggy-racer/internal/core"
)

// maxNDC rejects points so far outside the frustum that drawing lines to
// them would only waste time.
const maxNDC = 8.0

// Projector maps world points to screen cells for one camera and viewport.
type Projector struct {
	vp       mgl64.Mat4
	near     float64
	viewport core.Rect
}

// NewProjector captures the camera matrices for the given viewport.
func NewProjector(c *Camera, viewport core.Rect) *Projector {
	return &Projector{
		vp:       c.ViewProjection(),
		near:     c.Near,
		viewport: viewport,
	}
}

// Viewport returns the screen area the projector draws into.
func (p *Projector) Viewport() core.Rect {
	return p.viewport
}

// Project maps a world point to a screen cell. depth is the distance along
// the view axis. ok is false for points behind the near plane or far outside
// the view.
//
// World +Z is the driver's left while the look-at basis puts it on the
// right, so screen X is mirrored.
func (p *Projector) Project(world mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := p.vp.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= p.near {
		return 0, 0, w, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	if math.Abs(ndcX) > maxNDC || math.Abs(ndcY) > maxNDC {
		return 0, 0, w, false
	}

	vw, vh := float64(p.viewport.W), float64(p.viewport.H)
	x = p.viewport.X + int(math.Floor((1-ndcX)*0.5*vw))
	y = p.viewport.Y + int(math.Floor((1-ndcY)*0.5*vh))
	return x, y, w, true
}

// Visible reports whether a projected cell lies inside the viewport.
func (p *Projector) Visible(x, y int) bool {
	return p.viewport.Contains(x, y)
}

// Depth returns the view-axis distance of a world point.
func (p *Projector) Depth(world mgl64.Vec3) float64 {
	return p.vp.Mul4x1(world.Vec4(1)).W()
}
