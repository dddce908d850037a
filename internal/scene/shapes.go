// Package scene holds the static field geometry and strike-zone overlay
// in field space (meters, home plate at the origin, +Y toward the mound,
// +Z up).
package scene

import (
	"math"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

type ShapeKind int

const (
	Infield ShapeKind = iota
	Outfield
	HomePlate
	Base
	PitchingRubber
	Zone
	Sphere
)

func (k ShapeKind) String() string {
	switch k {
	case Infield:
		return "infield"
	case Outfield:
		return "outfield"
	case HomePlate:
		return "home plate"
	case Base:
		return "base"
	case PitchingRubber:
		return "pitching rubber"
	case Zone:
		return "strike zone"
	case Sphere:
		return "ball"
	}
	return "unknown"
}

// Shape is a flat outline in unit coordinates. Outline is closed
// implicitly; Colors has one entry per outline vertex.
type Shape struct {
	Outline []dynamo.Vec3
	Colors  []Color
	Height  float64
	Scale   float64
}

const (
	InfieldHeight        = 27.5
	OutfieldHeight       = 121.92
	HomePlateHeight      = 0.432
	BaseHeight           = 0.38
	PitchingRubberHeight = 0.152

	// RubberDistance is from the plate point to the front of the rubber.
	RubberDistance = 18.44

	// BallRadius is 1.43 in.
	BallRadius = 0.0363

	// ZoneHalfWidth is half the plate width; the zone sits at the back
	// of the plate.
	ZoneHalfWidth = 0.216
	ZoneDepth     = 0.432
)

// diagonal scales a unit diamond so that its side equals h.
func diagonal(h float64) float64 { return math.Sin(math.Pi/4) * h }

var unitDiamond = []dynamo.Vec3{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Shapes is the field's shape table.
var Shapes = map[ShapeKind]Shape{
	Infield: {
		Outline: unitDiamond,
		Colors:  []Color{InfieldDirt, InfieldLine, InfieldDirt, InfieldLine},
		Height:  InfieldHeight,
		Scale:   diagonal(InfieldHeight),
	},
	Outfield: {
		Outline: []dynamo.Vec3{
			{Y: -0.5}, {X: -0.575, Y: 0.075}, {X: -0.347, Y: 0.347},
			{Y: 0.5}, {X: 0.347, Y: 0.347}, {X: 0.575, Y: 0.075},
		},
		Colors: repeat(Grass, 6),
		Height: OutfieldHeight,
		Scale:  diagonal(OutfieldHeight),
	},
	HomePlate: {
		Outline: []dynamo.Vec3{
			{X: -0.216, Y: 0.216}, {X: 0.216, Y: 0.216}, {X: 0.216},
			{Y: -0.216}, {X: -0.216},
		},
		Colors: repeat(White, 5),
		Height: HomePlateHeight,
		Scale:  1,
	},
	Base: {
		Outline: unitDiamond,
		Colors:  repeat(White, 4),
		Height:  BaseHeight,
		Scale:   diagonal(BaseHeight),
	},
	PitchingRubber: {
		Outline: []dynamo.Vec3{
			{X: -0.305, Y: 0.076}, {X: 0.305, Y: 0.076},
			{X: 0.305, Y: -0.076}, {X: -0.305, Y: -0.076},
		},
		Colors: repeat(White, 4),
		Height: PitchingRubberHeight,
		Scale:  1,
	},
}

func repeat(c Color, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// Polygon is a closed outline in field space.
type Polygon struct {
	Kind   ShapeKind
	Points []dynamo.Vec3
	Colors []Color
}

// Edges calls fn for every side of the outline, colored by its first vertex.
func (p Polygon) Edges(fn func(a, b dynamo.Vec3, c Color)) {
	n := len(p.Points)
	if n < 2 {
		return
	}
	for i := range n {
		c := White
		if i < len(p.Colors) {
			c = p.Colors[i]
		}
		fn(p.Points[i], p.Points[(i+1)%n], c)
	}
}
