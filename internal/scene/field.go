package scene

import (
	"math"

	"github.com/samber/lo"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

// Placement positions one shape in field space.
type Placement struct {
	Kind   ShapeKind
	Offset dynamo.Vec3
}

// Polygon scales the shape's outline and moves it to the placement.
func (p Placement) Polygon() Polygon {
	s := Shapes[p.Kind]
	return Polygon{
		Kind: p.Kind,
		Points: lo.Map(s.Outline, func(v dynamo.Vec3, _ int) dynamo.Vec3 {
			return v.Scale(s.Scale).Add(p.Offset)
		}),
		Colors: append([]Color(nil), s.Colors...),
	}
}

// Field lists the field's shapes back to front. Each call builds new
// placements.
func Field(outfield bool) []Placement {
	infield := Shapes[Infield].Scale
	base := Shapes[Base].Scale

	var out []Placement
	if outfield {
		out = append(out, Placement{Outfield, dynamo.Vec3{Y: Shapes[Outfield].Scale / 2}})
	}
	return append(out,
		Placement{Infield, dynamo.Vec3{Y: infield}},
		Placement{HomePlate, dynamo.Vec3{Y: HomePlateHeight / 2}},
		Placement{Base, dynamo.Vec3{X: infield - base, Y: infield}},
		Placement{Base, dynamo.Vec3{Y: 2*infield - base}},
		Placement{Base, dynamo.Vec3{X: -(infield - base), Y: infield}},
		Placement{PitchingRubber, dynamo.Vec3{Y: RubberDistance - PitchingRubberHeight/2}},
	)
}

// FieldPolygons is Field with every placement resolved.
func FieldPolygons(outfield bool) []Polygon {
	return lo.Map(Field(outfield), func(p Placement, _ int) Polygon { return p.Polygon() })
}

// StrikeZone is the vertical overlay at the back of the plate between
// bottom and top (meters).
func StrikeZone(bottom, top float64) Polygon {
	x, y := ZoneHalfWidth, ZoneDepth
	return Polygon{
		Kind: Zone,
		Points: []dynamo.Vec3{
			{X: -x, Y: y, Z: top}, {X: x, Y: y, Z: top},
			{X: x, Y: y, Z: bottom}, {X: -x, Y: y, Z: bottom},
		},
		Colors: repeat(ZoneOverlay, 4),
	}
}

// SpinAxis is the axis the ball turns about while in flight.
var SpinAxis = dynamo.Vec3{X: 1, Y: 2, Z: 1}

// Ball is three great circles of a ball at center, turned spin degrees
// about SpinAxis. segments is per circle and at least 3.
func Ball(center dynamo.Vec3, spin float64, segments int, c Color) []Polygon {
	segments = max(segments, 3)
	rad := spin * math.Pi / 180
	rings := [3]func(a float64) dynamo.Vec3{
		func(a float64) dynamo.Vec3 { return dynamo.Vec3{X: math.Cos(a), Y: math.Sin(a)} },
		func(a float64) dynamo.Vec3 { return dynamo.Vec3{Y: math.Cos(a), Z: math.Sin(a)} },
		func(a float64) dynamo.Vec3 { return dynamo.Vec3{X: math.Cos(a), Z: math.Sin(a)} },
	}
	out := make([]Polygon, 0, len(rings))
	for _, ring := range rings {
		pts := make([]dynamo.Vec3, segments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(segments)
			pts[i] = ring(a).Scale(BallRadius).Rotate(SpinAxis, rad).Add(center)
		}
		out = append(out, Polygon{Kind: Sphere, Points: pts, Colors: repeat(c, segments)})
	}
	return out
}
