package integrators

import (
	"testing"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/physics"
)

func benchPitch(b *testing.B, integ dynamo.Integrator) {
	tr, err := physics.FromKinematics(
		dynamo.Vec3{X: -0.8, Y: 15.24, Z: 1.67},
		dynamo.Vec3{X: 1.79, Y: -40.92, Z: -2.08},
		dynamo.Vec3{X: -1.36, Y: 8.73, Z: -5.48},
	)
	if err != nil {
		b.Fatal(err)
	}
	dt := tr.FlightTime() / 100
	x := tr.InitialState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(tr, x, nil, 0, dt)
		if i%100 == 99 {
			x = tr.InitialState()
		}
	}
}

func BenchmarkEuler(b *testing.B)    { benchPitch(b, NewEuler()) }
func BenchmarkRK4(b *testing.B)      { benchPitch(b, NewRK4()) }
func BenchmarkVerlet(b *testing.B)   { benchPitch(b, NewVerlet()) }
func BenchmarkLeapfrog(b *testing.B) { benchPitch(b, NewLeapfrog()) }

func BenchmarkClosedForm(b *testing.B) {
	tr, err := physics.FromKinematics(
		dynamo.Vec3{X: -0.8, Y: 15.24, Z: 1.67},
		dynamo.Vec3{X: 1.79, Y: -40.92, Z: -2.08},
		dynamo.Vec3{X: -1.36, Y: 8.73, Z: -5.48},
	)
	if err != nil {
		b.Fatal(err)
	}
	var p dynamo.Vec3
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = tr.Position(float64(i%100) / 100 * tr.FlightTime())
	}
	_ = p
}
