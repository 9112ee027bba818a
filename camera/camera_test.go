package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/harpoon/vmath"
)

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 0.01 && math.Abs(a.Y-b.Y) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 5000)

	if cam.Center != vmath.Zero {
		t.Errorf("expected camera at origin, got %v", cam.Center)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 5000)
	cam.Follow(vmath.New(300, -200))

	s := cam.WorldToScreen(vmath.New(300, -200))
	if !near(s, vmath.New(640, 360)) {
		t.Errorf("expected screen center (640, 360), got %v", s)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 5000)
	cam.Follow(vmath.New(-1000, 500))
	cam.SetZoom(2)

	for _, s := range []vmath.Vec2{
		vmath.New(640, 360),
		vmath.New(100, 100),
		vmath.New(1200, 600),
	} {
		w := cam.ScreenToWorld(s)
		back := cam.WorldToScreen(w)
		if !near(back, s) {
			t.Errorf("roundtrip failed: %v -> %v -> %v", s, w, back)
		}
	}
}

func TestFollowClampsToWorld(t *testing.T) {
	cam := New(1280, 720, 5000)

	tests := []struct {
		name   string
		target vmath.Vec2
		want   vmath.Vec2
	}{
		{"interior", vmath.New(100, 100), vmath.New(100, 100)},
		{"right edge", vmath.New(2500, 0), vmath.New(2500-640, 0)},
		{"top left corner", vmath.New(-2490, -2490), vmath.New(-2500+640, -2500+360)},
		{"outside", vmath.New(9000, -9000), vmath.New(2500-640, -2500+360)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.Follow(tt.target)
			if !near(cam.Center, tt.want) {
				t.Errorf("Follow(%v) center = %v, want %v", tt.target, cam.Center, tt.want)
			}
			min, max := cam.VisibleWorldBounds()
			if min.X < -2500.01 || min.Y < -2500.01 || max.X > 2500.01 || max.Y > 2500.01 {
				t.Errorf("viewport %v..%v leaves the world", min, max)
			}
		})
	}
}

func TestFollowTinyWorldCenters(t *testing.T) {
	// Viewport larger than the world even at min zoom on one axis.
	cam := &Camera{Zoom: 1, ViewportW: 1280, ViewportH: 720, WorldSize: 500, MaxZoom: 4}
	cam.Follow(vmath.New(200, 200))
	if cam.Center != vmath.Zero {
		t.Errorf("center = %v, want origin", cam.Center)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 5000)

	cam.SetZoom(10)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to max %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to min %f, got %f", cam.MinZoom, cam.Zoom)
	}

	// 1280/5000 dominates 720/5000
	if math.Abs(cam.MinZoom-0.256) > 1e-12 {
		t.Errorf("MinZoom = %f, want 0.256", cam.MinZoom)
	}
}

func TestZoomByReclamps(t *testing.T) {
	cam := New(1280, 720, 5000)
	cam.Follow(vmath.New(2500, 2500))
	cam.ZoomBy(0.5)

	// Visible half-width doubled, so the clamp moves the center inward.
	want := vmath.New(2500-1280, 2500-720)
	if !near(cam.Center, want) {
		t.Errorf("center = %v, want %v", cam.Center, want)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 5000)

	if !cam.IsVisible(vmath.New(0, 0), 10) {
		t.Error("center should be visible")
	}
	if !cam.IsVisible(vmath.New(645, 0), 10) {
		t.Error("circle overlapping the edge should be visible")
	}
	if cam.IsVisible(vmath.New(1000, 0), 10) {
		t.Error("far point should not be visible")
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720, 5000)
	cam.Follow(vmath.New(2500, 0))
	cam.Resize(1920, 1080)

	if !near(cam.Center, vmath.New(2500-960, 0)) {
		t.Errorf("center after resize = %v", cam.Center)
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 5000)
	cam.Follow(vmath.New(1000, 1000))
	cam.SetZoom(3)
	cam.Reset()

	if cam.Center != vmath.Zero || cam.Zoom != 1 {
		t.Errorf("after reset: center %v zoom %v", cam.Center, cam.Zoom)
	}
}
