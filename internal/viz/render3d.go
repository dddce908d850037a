package viz

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

// Camera maps field space to eye space by rotating about Axis and then
// translating, and projects with a perspective looking down -Z.
type Camera struct {
	Translate dynamo.Vec3
	Axis      dynamo.Vec3
	Angle     float64 // radians
	FOV       float64 // vertical, radians
	Near, Far float64
	Zoom      float64
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

var cameraPresets = map[string]Camera{
	"catcher": {
		Translate: dynamo.Vec3{Y: -0.6, Z: -1.5},
		Axis:      dynamo.Vec3{X: 1},
		Angle:     degToRad(-82),
	},
	"pitcher": {
		Translate: dynamo.Vec3{Y: -1, Z: -21},
		Axis:      dynamo.Vec3{Y: 1, Z: 1},
		Angle:     degToRad(180),
	},
	"overhead": {
		Translate: dynamo.Vec3{Y: -7.4, Z: -18},
		Axis:      dynamo.Vec3{X: 1},
		Angle:     degToRad(-20),
	},
}

// CameraPreset returns a named camera with the default lens.
func CameraPreset(name string) (Camera, error) {
	c, ok := cameraPresets[name]
	if !ok {
		return Camera{}, fmt.Errorf("camera %q: %w", name, dynamo.ErrUnknownPreset)
	}
	c.FOV = degToRad(45)
	c.Near = 0.1
	c.Far = 500
	c.Zoom = 1
	return c, nil
}

// CameraPresets lists the preset names in order.
func CameraPresets() []string {
	names := lo.Keys(cameraPresets)
	sort.Strings(names)
	return names
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// View transforms a field-space point into eye space.
func (c Camera) View(p dynamo.Vec3) dynamo.Vec3 {
	return p.Rotate(c.Axis, c.Angle).Add(c.Translate)
}

// screen maps an eye-space point in front of the camera to sub-pixel
// coordinates.
func (c Camera) screen(e dynamo.Vec3, sw, sh int) (float64, float64) {
	f := c.Zoom / math.Tan(c.FOV/2)
	aspect := float64(sw) / float64(sh)
	nx := f / aspect * e.X / -e.Z
	ny := f * e.Y / -e.Z
	return (nx + 1) / 2 * float64(sw), (1 - ny) / 2 * float64(sh)
}

// Project converts a field-space point to screen coordinates.
// Returns x, y, distance, and visibility.
func (c Camera) Project(p dynamo.Vec3, sw, sh int) (int, int, float64, bool) {
	e := c.View(p)
	dist := -e.Z
	if dist < c.Near || dist > c.Far {
		return 0, 0, dist, false
	}
	fx, fy := c.screen(e, sw, sh)
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, dist, x >= 0 && x < sw && y >= 0 && y < sh
}

// Edge is a segment, or a dot of half-size Weight when Start == End.
type Edge struct {
	Start, End dynamo.Vec3
	Color      string
	Weight     int
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e dynamo.Vec3, c string) {
	w.Edges = append(w.Edges, Edge{Start: s, End: e, Color: c})
}
func (w *Wireframe) AddPoint(p dynamo.Vec3, c string, weight int) {
	w.Edges = append(w.Edges, Edge{Start: p, End: p, Color: c, Weight: weight})
}
func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          string
	Weight         int
}

// Render3D draws the wireframe to the canvas back to front. Segments are
// clipped to the near plane and to the screen.
func Render3D(c *Canvas, w *Wireframe, cam Camera) {
	if c == nil || w == nil {
		return
	}
	sw, sh := c.Pixels()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		if pe, ok := projectEdge(cam, e, sw, sh); ok {
			proj = append(proj, pe)
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth > proj[j].Depth })
	for _, e := range proj {
		c.SetPen(e.Color)
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Fill(e.X1, e.Y1, e.Weight)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
	c.SetPen("")
}

func projectEdge(cam Camera, e Edge, sw, sh int) (ProjectedEdge, bool) {
	a, b := cam.View(e.Start), cam.View(e.End)
	a, b, ok := clipNear(a, b, cam.Near)
	if !ok {
		return ProjectedEdge{}, false
	}
	depth := -(a.Z + b.Z) / 2
	if depth > cam.Far {
		return ProjectedEdge{}, false
	}
	x1, y1 := cam.screen(a, sw, sh)
	x2, y2 := cam.screen(b, sw, sh)
	x1, y1, x2, y2, ok = clipRect(x1, y1, x2, y2, float64(sw), float64(sh))
	if !ok {
		return ProjectedEdge{}, false
	}
	return ProjectedEdge{
		X1: int(math.Floor(x1)), Y1: int(math.Floor(y1)),
		X2: int(math.Floor(x2)), Y2: int(math.Floor(y2)),
		Depth:  depth,
		Color:  e.Color,
		Weight: e.Weight,
	}, true
}

// clipNear trims an eye-space segment to z <= -near.
func clipNear(a, b dynamo.Vec3, near float64) (dynamo.Vec3, dynamo.Vec3, bool) {
	za, zb := -a.Z, -b.Z
	switch {
	case za < near && zb < near:
		return a, b, false
	case za < near:
		a = a.Add(b.Sub(a).Scale((near - za) / (zb - za)))
	case zb < near:
		b = b.Add(a.Sub(b).Scale((near - zb) / (za - zb)))
	}
	return a, b, true
}

// clipRect is Liang-Barsky against [0,w) x [0,h).
func clipRect(x1, y1, x2, y2, w, h float64) (float64, float64, float64, float64, bool) {
	const eps = 1e-9
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	for _, pq := range [4][2]float64{
		{-dx, x1},
		{dx, w - eps - x1},
		{-dy, y1},
		{dy, h - eps - y1},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	cx := func(v float64) float64 { return math.Max(0, math.Min(w-eps, v)) }
	cy := func(v float64) float64 { return math.Max(0, math.Min(h-eps, v)) }
	return cx(x1 + t0*dx), cy(y1 + t0*dy), cx(x1 + t1*dx), cy(y1 + t1*dy), true
}
