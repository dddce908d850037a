package viz

import (
	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/playback"
	"github.com/san-kum/pfx3d/internal/scene"
)

// directional is the light added to a ball's base color.
const directional = 0.5

// ballSegments is per great circle.
const ballSegments = 12

// SceneOptions controls what BuildWireframe includes.
type SceneOptions struct {
	Outfield   bool
	Background scene.Color
}

// BuildWireframe lays out the field, the strike zones and the visible
// balls of a frame. onColorErr is called for each ball whose color could
// not be resolved; it may be nil.
func BuildWireframe(f playback.Frame, opts SceneOptions, onColorErr func(playback.PitchView, error)) *Wireframe {
	w := NewWireframe()
	for _, p := range scene.FieldPolygons(opts.Outfield) {
		addPolygon(w, p, opts.Background)
	}
	for _, v := range f.Pitches {
		if v.ShowStrikeZone {
			addPolygon(w, scene.StrikeZone(v.SzBot, v.SzTop), opts.Background)
		}
	}
	for _, v := range f.Visible() {
		c, err := scene.BallColor(v.Outcome, v.PathDone)
		if err != nil && onColorErr != nil {
			onColorErr(v, err)
		}
		ink := lit(c).Hex()
		for _, ring := range scene.Ball(v.Position, v.Spin, ballSegments, c) {
			ring.Edges(func(a, b dynamo.Vec3, _ scene.Color) { w.AddEdge(a, b, ink) })
		}
		w.AddPoint(v.Position, ink, 1)
	}
	return w
}

func addPolygon(w *Wireframe, p scene.Polygon, bg scene.Color) {
	p.Edges(func(a, b dynamo.Vec3, c scene.Color) {
		if c.A < 1 {
			c = c.Over(bg)
		} else {
			c = c.Brighten()
		}
		w.AddEdge(a, b, c.Hex())
	})
}

func lit(c scene.Color) scene.Color {
	return scene.Color{R: c.R + directional, G: c.G + directional, B: c.B + directional, A: 1}.Over(scene.Color{A: 1})
}
