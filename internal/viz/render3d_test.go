package viz

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

const sw, sh = 160, 96

var (
	platePoint = dynamo.Vec3{Y: 0.216}
	release    = dynamo.Vec3{X: -0.6, Y: 16, Z: 1.8}
	mound      = dynamo.Vec3{Y: 18.44}
)

func mustPreset(t *testing.T, name string) Camera {
	t.Helper()
	c, err := CameraPreset(name)
	if err != nil {
		t.Fatalf("CameraPreset(%q): %v", name, err)
	}
	return c
}

func TestCameraPresets(t *testing.T) {
	if got := CameraPresets(); !slices.Equal(got, []string{"catcher", "overhead", "pitcher"}) {
		t.Errorf("CameraPresets = %v", got)
	}
	if _, err := CameraPreset("dugout"); !errors.Is(err, dynamo.ErrUnknownPreset) {
		t.Errorf("unknown preset err = %v", err)
	}
}

func TestCameraPresets_SeeThePlate(t *testing.T) {
	for _, name := range CameraPresets() {
		t.Run(name, func(t *testing.T) {
			cam := mustPreset(t, name)
			for _, p := range []dynamo.Vec3{platePoint, release} {
				if _, _, _, ok := cam.Project(p, sw, sh); !ok {
					t.Errorf("%v not on screen", p)
				}
			}
		})
	}
}

func TestCamera_Catcher(t *testing.T) {
	cam := mustPreset(t, "catcher")

	// Rotation happens before translation, so the origin lands on the offset.
	if got := cam.View(dynamo.Vec3{}); got != (dynamo.Vec3{Y: -0.6, Z: -1.5}) {
		t.Errorf("View(origin) = %v", got)
	}

	_, plateY, plateD, _ := cam.Project(platePoint, sw, sh)
	_, relY, relD, _ := cam.Project(release, sw, sh)
	if relY >= plateY {
		t.Errorf("release drawn below the plate: %d >= %d", relY, plateY)
	}
	if relD <= plateD {
		t.Errorf("release not farther than the plate: %v <= %v", relD, plateD)
	}
}

func TestCamera_Pitcher(t *testing.T) {
	cam := mustPreset(t, "pitcher")
	_, _, moundD, _ := cam.Project(mound, sw, sh)
	_, _, plateD, _ := cam.Project(platePoint, sw, sh)
	if moundD >= plateD {
		t.Errorf("mound not nearer than the plate: %v >= %v", moundD, plateD)
	}
}

func TestCamera_BehindIsHidden(t *testing.T) {
	cam := mustPreset(t, "catcher")
	// Well behind the plate and below the field.
	if _, _, _, ok := cam.Project(dynamo.Vec3{Y: -30, Z: -5}, sw, sh); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestCamera_Zoom(t *testing.T) {
	cam := mustPreset(t, "overhead")
	x0, _, _, _ := cam.Project(dynamo.Vec3{X: 2, Y: 10}, sw, sh)
	cam.ZoomIn()
	x1, _, _, _ := cam.Project(dynamo.Vec3{X: 2, Y: 10}, sw, sh)
	if math.Abs(float64(x1-sw/2)) <= math.Abs(float64(x0-sw/2)) {
		t.Errorf("zoom in did not spread points: %d -> %d", x0, x1)
	}
	for range 50 {
		cam.ZoomIn()
	}
	if cam.Zoom != 10 {
		t.Errorf("Zoom = %v, want clamp at 10", cam.Zoom)
	}
}

func TestClipNear(t *testing.T) {
	a := dynamo.Vec3{Z: 1}
	b := dynamo.Vec3{X: 2, Z: -3}
	ca, cb, ok := clipNear(a, b, 0.1)
	if !ok {
		t.Fatal("segment crossing the near plane dropped")
	}
	if math.Abs(ca.Z+0.1) > 1e-12 || cb != b {
		t.Errorf("clipNear = %v, %v", ca, cb)
	}
	if _, _, ok := clipNear(dynamo.Vec3{Z: 1}, dynamo.Vec3{Z: 2}, 0.1); ok {
		t.Error("segment behind the camera kept")
	}
}

func TestClipRect(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		ok             bool
	}{
		{"inside", 1, 1, 5, 5, true},
		{"crossing", -10, 5, 20, 5, true},
		{"outside", -10, -10, -1, -5, false},
		{"parallel outside", 20, 1, 30, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x1, y1, x2, y2, ok := clipRect(tt.x1, tt.y1, tt.x2, tt.y2, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			for _, v := range []float64{x1, y1, x2, y2} {
				if v < 0 || v >= 10 {
					t.Errorf("clipped coordinate %v outside the screen", v)
				}
			}
		})
	}
}

func TestRender3D(t *testing.T) {
	cam := mustPreset(t, "overhead")
	c := NewCanvas(sw/2, sh/4)

	w := NewWireframe()
	w.AddEdge(dynamo.Vec3{X: -3, Y: 10}, dynamo.Vec3{X: 3, Y: 10}, "#ffffff")
	w.AddEdge(dynamo.Vec3{Y: -100, Z: 50}, dynamo.Vec3{Y: -90, Z: 50}, "#ff0000")
	Render3D(c, w, cam)

	var lit, red int
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != blank {
				lit++
			}
			if c.Ink[i][j] == "#ff0000" {
				red++
			}
		}
	}
	if lit == 0 {
		t.Error("visible edge not drawn")
	}
	if red != 0 {
		t.Error("edge behind the camera drawn")
	}

	Render3D(nil, w, cam)
	Render3D(c, nil, cam)
}
