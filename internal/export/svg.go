// Package export renders pitch paths and live frames to SVG.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/scene"
	"github.com/san-kum/pfx3d/internal/sim"
	"github.com/san-kum/pfx3d/internal/viz"
)

const background = "#0a0a0a"

// CanvasToSVG draws every lit braille dot of canvas as a circle in its
// cell's ink. Cells without ink use fg.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fg string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	dotRadius := scale * 0.4
	pw, ph := canvas.Pixels()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			ink := canvas.Ink[y/4][x/2]
			if ink == "" {
				ink = fg
			}
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, ink)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// Path is one pitch track to plot.
type Path struct {
	Label  string
	Color  string
	Points []dynamo.Vec3
}

// FromRuns turns sampled runs into paths colored by outcome. Nil runs are
// skipped.
func FromRuns(runs []*sim.PitchRun) []Path {
	paths := make([]Path, 0, len(runs))
	for _, r := range runs {
		if r == nil {
			continue
		}
		c, err := scene.BallColor(r.Pitch.Outcome, true)
		if err != nil {
			c = scene.Neutral
		}
		paths = append(paths, Path{
			Label:  fmt.Sprintf("%d %s", r.Index+1, r.Pitch.Description),
			Color:  c.Brighten().Hex(),
			Points: r.Positions(),
		})
	}
	return paths
}

type bounds struct{ minH, maxH, minV, maxV float64 }

func (b *bounds) pad() {
	rh, rv := b.maxH-b.minH, b.maxV-b.minV
	if rh == 0 {
		rh = 1
	}
	if rv == 0 {
		rv = 1
	}
	b.minH -= rh * 0.05
	b.maxH += rh * 0.05
	b.minV -= rv * 0.1
	b.maxV += rv * 0.1
}

type view struct {
	title string
	h, v  func(dynamo.Vec3) float64
}

var views = []view{
	{"side (height)", func(p dynamo.Vec3) float64 { return -p.Y }, func(p dynamo.Vec3) float64 { return p.Z }},
	{"top (lateral)", func(p dynamo.Vec3) float64 { return -p.Y }, func(p dynamo.Vec3) float64 { return p.X }},
}

// PathsSVG plots paths twice, side view above top view. The release end is
// on the left and the plate on the right.
func PathsSVG(paths []Path, width, height int) string {
	if len(paths) == 0 {
		return ""
	}

	panelH := float64(height) / float64(len(views))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	for vi, v := range views {
		b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
		for _, p := range paths {
			for _, pt := range p.Points {
				b.minH, b.maxH = math.Min(b.minH, v.h(pt)), math.Max(b.maxH, v.h(pt))
				b.minV, b.maxV = math.Min(b.minV, v.v(pt)), math.Max(b.maxV, v.v(pt))
			}
		}
		if math.IsInf(b.minH, 0) {
			continue
		}
		b.pad()

		top := float64(vi) * panelH
		fmt.Fprintf(&sb, `<g id="view-%d">
<text x="4" y="%.1f" fill="#888888" font-size="12">%s</text>
`, vi, top+14, v.title)

		for _, p := range paths {
			if len(p.Points) < 2 {
				continue
			}
			fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, p.Color)
			for i, pt := range p.Points {
				x := (v.h(pt) - b.minH) / (b.maxH - b.minH) * float64(width)
				y := top + panelH - (v.v(pt)-b.minV)/(b.maxV-b.minV)*panelH
				if i == 0 {
					fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
				} else {
					fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
				}
			}
			fmt.Fprintf(&sb, `"><title>%s</title></path>
`, escape(p.Label))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
