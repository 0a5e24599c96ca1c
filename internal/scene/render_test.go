package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/vehicle"
)

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func newTestScene(t *testing.T, mode Mode) (*core.Screen, *Projector, *Track, *vehicle.Car) {
	t.Helper()
	car, err := vehicle.NewBuggy(vehicle.DefaultParams())
	if err != nil {
		t.Fatalf("NewBuggy() failed: %v", err)
	}
	car.Place(mgl64.Vec3{-12, 0, -44}, 0)

	track := NewTrack()
	cam := NewCamera(track, 110)
	cam.Mode = mode
	cam.SetViewport(80, 24)
	cam.Follow(car)

	screen := core.NewScreen(80, 24)
	return screen, NewProjector(cam, core.NewRect(0, 0, 80, 24)), track, car
}

func TestRenderChaseDrawsCarAndBarriers(t *testing.T) {
	screen, p, track, car := newTestScene(t, ModeChase)

	var r Renderer
	r.Render(screen, p, track, car.Pose(), ModeChase)

	if countRune(screen, 'o') == 0 {
		t.Error("chase view should show the wheels")
	}
	if countRune(screen, '=') == 0 {
		t.Error("chase view should show the chassis outline")
	}
	if countRune(screen, '#') == 0 {
		t.Error("chase view should show the barrier ahead")
	}
	if countRune(screen, '@') != 0 {
		t.Error("chase view should not draw the overhead marker")
	}
}

func TestRenderOverheadDrawsMarker(t *testing.T) {
	screen, p, track, car := newTestScene(t, ModeOverhead)

	var r Renderer
	r.Render(screen, p, track, car.Pose(), ModeOverhead)

	x, y, _, ok := p.Project(car.Position())
	if !ok {
		t.Fatal("car should be projectable from above")
	}
	if screen.GetCell(x, y) != (core.Cell{Rune: '@', Color: core.ColorBrightWhite}) {
		t.Errorf("expected the car marker at (%d, %d), got %q", x, y, screen.Get(x, y))
	}
	if countRune(screen, 'o') != 0 {
		t.Error("overhead view should not draw individual wheels")
	}

	// Rendering twice reuses the sort buffers.
	r.Render(screen, p, track, car.Pose(), ModeOverhead)
	if len(r.order) != len(track.Billboards) {
		t.Errorf("len(order) = %d, expected %d", len(r.order), len(track.Billboards))
	}
}

func TestProjectorLineSkipsPiecesBehindCamera(t *testing.T) {
	cam := NewCamera(NewTrack(), 0)
	cam.SetViewport(40, 20)
	cam.Follow(chaseAtOrigin)
	p := NewProjector(cam, core.NewRect(0, 0, 40, 20))
	screen := core.NewScreen(40, 20)

	// The line passes under and behind the camera; only the part ahead shows.
	p.Line(screen, mgl64.Vec3{-30, 0, 0}, mgl64.Vec3{30, 0, 0}, '+', core.ColorGreen)
	if countRune(screen, '+') == 0 {
		t.Error("the visible part of the line should be drawn")
	}
}

func TestBoxCorners(t *testing.T) {
	c := boxCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3})
	if c[0] != (mgl64.Vec3{0, 0, 0}) || c[7] != (mgl64.Vec3{1, 2, 3}) || c[5] != (mgl64.Vec3{1, 0, 3}) {
		t.Errorf("boxCorners() = %v", c)
	}
	for _, e := range boxEdges {
		d := c[e[0]].Sub(c[e[1]])
		nonZero := 0
		for _, v := range d {
			if v != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			t.Errorf("edge %v is not axis aligned", e)
		}
	}
}
