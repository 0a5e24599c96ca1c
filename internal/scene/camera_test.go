package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/buggy-racer/internal/core"
)

type fixedAnchors struct {
	behind, ahead mgl64.Vec3
}

func (a fixedAnchors) PositionBehind() mgl64.Vec3 { return a.behind }
func (a fixedAnchors) PositionAhead() mgl64.Vec3  { return a.ahead }

// chaseAtOrigin mimics a car at the origin facing +X.
var chaseAtOrigin = fixedAnchors{behind: mgl64.Vec3{-4, 2, 0}, ahead: mgl64.Vec3{6, 0, 0}}

func TestModeCycle(t *testing.T) {
	m := ModeChase
	seen := []Mode{m}
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	want := []Mode{ModeChase, ModeOverhead, ModeTrackside, ModeChase}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle[%d] = %v, expected %v", i, seen[i], want[i])
		}
	}

	for _, m := range want[:3] {
		if ParseMode(m.String()) != m {
			t.Errorf("ParseMode(%q) = %v, expected %v", m.String(), ParseMode(m.String()), m)
		}
	}
	if ParseMode("cockpit") != ModeChase {
		t.Error("unknown mode names should fall back to chase")
	}
}

func TestCameraFollow(t *testing.T) {
	track := NewTrack()
	cam := NewCamera(track, 50)

	cam.Follow(chaseAtOrigin)
	if cam.Position != chaseAtOrigin.behind || cam.Target != chaseAtOrigin.ahead {
		t.Errorf("chase camera at %v looking at %v", cam.Position, cam.Target)
	}

	cam.Mode = ModeOverhead
	cam.Follow(chaseAtOrigin)
	want := track.Center().Add(mgl64.Vec3{0, 50, 0})
	if !cam.Position.ApproxEqualThreshold(want, eps) {
		t.Errorf("overhead camera at %v, expected %v", cam.Position, want)
	}
	if cam.Target != track.Center() {
		t.Errorf("overhead target = %v, expected track centre", cam.Target)
	}

	cam.Mode = ModeTrackside
	cam.Follow(chaseAtOrigin)
	if cam.Position != (mgl64.Vec3{10, 5, 10}) || cam.Target != chaseAtOrigin.ahead {
		t.Errorf("trackside camera at %v looking at %v", cam.Position, cam.Target)
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := NewCamera(NewTrack(), 0)
	if cam.OverheadHeight != 110 {
		t.Errorf("OverheadHeight = %v, expected fallback 110", cam.OverheadHeight)
	}

	cam.SetViewport(80, 20)
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, expected 2", cam.Aspect)
	}
	cam.SetViewport(0, 20)
	if cam.Aspect != 1 {
		t.Errorf("Aspect = %v, expected 1 for an empty viewport", cam.Aspect)
	}
}

func TestProjectChase(t *testing.T) {
	cam := NewCamera(NewTrack(), 0)
	cam.SetViewport(80, 24)
	cam.Follow(chaseAtOrigin)
	p := NewProjector(cam, core.NewRect(0, 0, 80, 24))

	cx, cy, depth, ok := p.Project(chaseAtOrigin.ahead)
	if !ok {
		t.Fatal("camera target should be projectable")
	}
	if core.Abs(cx-40) > 1 || core.Abs(cy-12) > 1 {
		t.Errorf("target projects to (%d, %d), expected the viewport centre", cx, cy)
	}
	if depth <= 0 {
		t.Errorf("depth = %v, expected positive", depth)
	}

	// +Z is the driver's left and must land left of centre.
	lx, _, _, ok := p.Project(chaseAtOrigin.ahead.Add(mgl64.Vec3{0, 0, 3}))
	if !ok || lx >= cx {
		t.Errorf("left point projects to x=%d, expected left of %d", lx, cx)
	}

	_, uy, _, ok := p.Project(chaseAtOrigin.ahead.Add(mgl64.Vec3{0, 2, 0}))
	if !ok || uy >= cy {
		t.Errorf("raised point projects to y=%d, expected above %d", uy, cy)
	}

	if _, _, _, ok := p.Project(mgl64.Vec3{-10, 2, 0}); ok {
		t.Error("point behind the camera should not project")
	}
	if !p.Visible(cx, cy) || p.Visible(-1, 0) {
		t.Error("Visible() should follow the viewport")
	}
}

func TestProjectOverhead(t *testing.T) {
	track := NewTrack()
	cam := NewCamera(track, 110)
	cam.Mode = ModeOverhead
	cam.SetViewport(80, 24)
	cam.Follow(chaseAtOrigin)
	p := NewProjector(cam, core.NewRect(0, 0, 80, 24))

	c := track.Center()
	cx, cy, _, ok := p.Project(c)
	if !ok {
		t.Fatal("track centre should be projectable")
	}

	// Map view: +X is up, +Z is left.
	_, ny, _, ok := p.Project(c.Add(mgl64.Vec3{20, 0, 0}))
	if !ok || ny >= cy {
		t.Errorf("+X point projects to y=%d, expected above %d", ny, cy)
	}
	lx, _, _, ok := p.Project(c.Add(mgl64.Vec3{0, 0, 20}))
	if !ok || lx >= cx {
		t.Errorf("+Z point projects to x=%d, expected left of %d", lx, cx)
	}

	// The whole outer barrier fits on screen.
	for _, b := range track.Ring(RingOuter) {
		for _, corner := range b.Corners() {
			x, y, _, ok := p.Project(corner)
			if !ok || !p.Visible(x, y) {
				t.Fatalf("corner %v projects to (%d, %d), expected inside the viewport", corner, x, y)
			}
		}
	}
}
