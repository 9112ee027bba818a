package game

import (
	"slices"
	"testing"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/vmath"
)

func TestWorldLayers(t *testing.T) {
	tests := []struct {
		name     string
		landMask bool
		want     []layer
	}{
		{"mask on", true, []layer{layerLower, layerFish, layerUpper, layerHarpoon, layerPlayer}},
		{"mask off", false, []layer{layerLower, layerFish, layerHarpoon, layerPlayer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := worldLayers(tt.landMask); !slices.Equal(got, tt.want) {
				t.Errorf("worldLayers(%v) = %v, want %v", tt.landMask, got, tt.want)
			}
		})
	}
}

func TestCaptureRingOnWhale(t *testing.T) {
	var snap session.Snapshot
	snap.Player.Pos = vmath.New(-100, 0)
	snap.Fish.Pos = vmath.New(200, 50)
	snap.CaptureDistance = 150

	if _, _, ok := captureRing(snap); ok {
		t.Error("ring shown without an attached harpoon")
	}

	snap.Harpoon.Active = true
	snap.Harpoon.Attached = true
	center, radius, ok := captureRing(snap)
	if !ok {
		t.Fatal("ring hidden while attached")
	}
	if center != snap.Fish.Pos {
		t.Errorf("center = %v, want the whale at %v", center, snap.Fish.Pos)
	}
	if radius != 150 {
		t.Errorf("radius = %v, want 150", radius)
	}
}
