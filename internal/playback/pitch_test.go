package playback

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/physics"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

var _ = Describe("Pitch", func() {
	var (
		tel telemetry.Pitch
		p   *Pitch
	)

	BeforeEach(func() {
		tel = samplePitches()[0]
		var err error
		p, err = NewPitch(tel, time.Second)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts at the release point", func() {
		Expect(p.Phase()).To(Equal(NotStarted))
		Expect(p.Position()).To(Equal(tel.P0))
		Expect(p.Elapsed()).To(BeZero())
		Expect(p.PathDone()).To(BeFalse())
		Expect(p.IsDone()).To(BeFalse())
		Expect(p.ShowStrikeZone).To(BeFalse())
	})

	It("follows the trajectory while in flight", func() {
		p.Advance(100 * time.Millisecond)
		Expect(p.Phase()).To(Equal(InFlight))
		Expect(p.Elapsed()).To(BeNumerically("~", 0.1, 1e-12))

		tr, err := physics.NewTrajectory(tel)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Position()).To(Equal(tr.Position(p.Elapsed())))
	})

	It("clamps at the plate front instead of overshooting", func() {
		p.Advance(800 * time.Millisecond)
		Expect(p.Phase()).To(Equal(PathDoneHolding))
		Expect(p.PathDone()).To(BeTrue())
		Expect(p.Elapsed()).To(Equal(p.FlightTime()))
		Expect(math.Abs(p.Position().Y - physics.PlateFront)).To(BeNumerically("<", 1e-9))
	})

	It("holds at the plate before finishing", func() {
		flight := time.Duration(p.FlightTime() * float64(time.Second))
		p.Advance(flight + 250*time.Millisecond)
		Expect(p.Phase()).To(Equal(PathDoneHolding))
		atPlate := p.Position()

		p.Advance(700 * time.Millisecond)
		Expect(p.Phase()).To(Equal(PathDoneHolding))
		Expect(p.Position()).To(Equal(atPlate))

		// the 250ms past the plate already counted toward the hold
		p.Advance(60 * time.Millisecond)
		Expect(p.Phase()).To(Equal(PhaseDone))
		Expect(p.IsDone()).To(BeTrue())
		Expect(p.Position()).To(Equal(atPlate))

		p.Advance(time.Second)
		Expect(p.Phase()).To(Equal(PhaseDone))
	})

	It("finishes in the same advance when the overshoot covers the hold", func() {
		p.Advance(5 * time.Second)
		Expect(p.Phase()).To(Equal(PhaseDone))
		Expect(p.Elapsed()).To(Equal(p.FlightTime()))
	})

	It("stops spinning once the path is done", func() {
		p.Advance(frame)
		Expect(p.Spin()).To(Equal(SpinDegPerFrame))
		p.Advance(5 * time.Second)
		spin := p.Spin()
		p.Advance(frame)
		Expect(p.Spin()).To(Equal(spin))
	})

	DescribeTable("restart returns to the release point from any phase",
		func(advance []time.Duration, showZone bool) {
			for _, d := range advance {
				p.Advance(d)
			}
			p.Restart(showZone)
			Expect(p.Phase()).To(Equal(NotStarted))
			Expect(p.Position()).To(Equal(tel.P0))
			Expect(p.Elapsed()).To(BeZero())
			Expect(p.ShowStrikeZone).To(Equal(showZone))
			Expect(p.Spin()).To(BeZero())
		},
		Entry("not started", []time.Duration{}, false),
		Entry("mid flight", []time.Duration{200 * time.Millisecond}, true),
		Entry("holding", []time.Duration{800 * time.Millisecond}, false),
		Entry("done", []time.Duration{5 * time.Second, 2 * time.Second}, true),
	)

	It("ignores negative deltas", func() {
		p.Advance(100 * time.Millisecond)
		before := p.Elapsed()
		p.Advance(-time.Second)
		Expect(p.Elapsed()).To(Equal(before))
	})

	It("rejects telemetry without along-track acceleration", func() {
		bad := tel
		bad.A = dynamo.Vec3{X: tel.A.X, Z: tel.A.Z}
		_, err := NewPitch(bad, time.Second)
		Expect(err).To(MatchError(dynamo.ErrZeroAcceleration))
	})

	It("plays back any path", func() {
		sp := newPitch(tel, straightPath{flight: 0.4}, 0)
		sp.Advance(200 * time.Millisecond)
		Expect(sp.Position().Y).To(BeNumerically("~", 10, 1e-9))
		Expect(sp.Phase()).To(Equal(InFlight))
		sp.Advance(time.Second)
		Expect(sp.Elapsed()).To(Equal(0.4))
		Expect(sp.Phase()).To(Equal(PhaseDone))
	})
})
