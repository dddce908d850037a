package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/scene"
	"github.com/san-kum/pfx3d/internal/sim"
	"github.com/san-kum/pfx3d/internal/telemetry"
	"github.com/san-kum/pfx3d/internal/viz"
)

func samplePitches(t *testing.T) []telemetry.Pitch {
	t.Helper()
	pitches, _, err := telemetry.Sample()
	if err != nil {
		t.Fatal(err)
	}
	return pitches
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 2, "#ffffff") != "" {
		t.Error("nil canvas should render nothing")
	}

	c := viz.NewCanvas(4, 2)
	c.SetPen("#ff0000")
	c.Set(0, 0)
	c.SetPen("")
	c.Set(7, 7)

	svg := CanvasToSVG(c, 2, "#00ff00")
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#00ff00"`) {
		t.Error("dots should carry ink or the fallback color")
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Errorf("unexpected size in %q", svg[:120])
	}
}

func TestPathsSVG(t *testing.T) {
	if PathsSVG(nil, 400, 300) != "" {
		t.Error("no paths should render nothing")
	}

	paths := []Path{
		{Label: "1 <fastball>", Color: "#ff0000", Points: []dynamo.Vec3{{X: 0, Y: 16, Z: 1.8}, {X: 0.1, Y: 8, Z: 1.4}, {X: 0.2, Y: 0.4, Z: 0.8}}},
		{Label: "lone", Color: "#0000ff", Points: []dynamo.Vec3{{X: 0, Y: 1, Z: 1}}},
	}
	svg := PathsSVG(paths, 400, 300)

	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("paths = %d, want one per view", got)
	}
	if !strings.Contains(svg, "1 &lt;fastball&gt;") {
		t.Error("labels should be escaped")
	}
	if got := strings.Count(svg, `<g id="view-`); got != 2 {
		t.Errorf("views = %d, want side and top", got)
	}
}

func TestFromRuns(t *testing.T) {
	pitches := samplePitches(t)
	runs, err := sim.SampleAll(context.Background(), pitches, "rk4", 0.01, 1)
	if err != nil {
		t.Fatal(err)
	}
	runs[0] = nil

	paths := FromRuns(runs)
	if len(paths) != len(pitches)-1 {
		t.Fatalf("paths = %d", len(paths))
	}
	for i, p := range paths {
		r := runs[i+1]
		want, err := scene.BallColor(r.Pitch.Outcome, true)
		if err != nil {
			want = scene.Neutral
		}
		if p.Color != want.Brighten().Hex() {
			t.Errorf("path %d color %s, want %s", i, p.Color, want.Brighten().Hex())
		}
		if len(p.Points) != len(r.Result.States) {
			t.Errorf("path %d has %d points", i, len(p.Points))
		}
	}
}

func TestSnapshot(t *testing.T) {
	cam, err := viz.CameraPreset("catcher")
	if err != nil {
		t.Fatal(err)
	}

	c, err := Snapshot(samplePitches(t), cam, viz.SceneOptions{}, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28ff }) {
		t.Error("snapshot drew nothing")
	}

	_, err = Snapshot(nil, cam, viz.SceneOptions{}, 80, 24)
	if !errors.Is(err, dynamo.ErrEmptySequence) {
		t.Errorf("err = %v, want ErrEmptySequence", err)
	}
}
