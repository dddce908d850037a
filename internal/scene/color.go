package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	White   = Color{1, 1, 1, 1}
	Neutral = Color{0.2, 0.2, 0.2, 1}

	InfieldDirt = Color{0, 0.5, 0, 1}
	InfieldLine = Color{0, 0.7, 0, 1}
	Grass       = Color{0, 0.3, 0, 1}
	ZoneOverlay = Color{1, 1, 1, 0.25}
)

// outcomeLevel is the channel intensity of a finished pitch.
const outcomeLevel = 0.5

// BallColor is the color of a ball in flight (Neutral) or, once its path
// is done, the color of its outcome. An unknown outcome yields Neutral
// and ErrUnknownOutcome.
func BallColor(o telemetry.Outcome, pathDone bool) (Color, error) {
	if !pathDone {
		return Neutral, nil
	}
	switch o {
	case telemetry.Ball:
		return Color{0, 0, outcomeLevel, 1}, nil
	case telemetry.Strike:
		return Color{outcomeLevel, 0, 0, 1}, nil
	case telemetry.InPlay:
		return Color{0, outcomeLevel, 0, 1}, nil
	}
	return Neutral, dynamo.ErrUnknownOutcome
}

// Over composites c additively onto bg, weighted by c's alpha.
func (c Color) Over(bg Color) Color {
	return Color{
		R: clamp01(bg.R + c.R*c.A),
		G: clamp01(bg.G + c.G*c.A),
		B: clamp01(bg.B + c.B*c.A),
		A: 1,
	}
}

// Brighten scales the color so its strongest channel is 1.
func (c Color) Brighten() Color {
	m := math.Max(c.R, math.Max(c.G, c.B))
	if m == 0 {
		return c
	}
	return Color{c.R / m, c.G / m, c.B / m, c.A}
}

// Hex formats the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ParseHex reads #rrggbb. Malformed input yields opaque black.
func ParseHex(s string) Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{A: 1}
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
