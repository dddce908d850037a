package playback

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

type countingDrawer struct {
	frames []Frame
}

func (d *countingDrawer) Draw(f Frame) { d.frames = append(d.frames, f) }

var _ = Describe("Sequence", func() {
	var (
		clock *fakeClock
		seq   *Sequence
	)

	newSeq := func(loop bool, pitches []telemetry.Pitch) *Sequence {
		s := NewSequence(WithClock(clock), WithLooping(loop), WithHold(time.Second))
		Expect(s.Load(pitches)).To(BeEmpty())
		return s
	}

	// ticksPerPitch covers flight plus hold with a margin.
	const ticksPerPitch = 120

	BeforeEach(func() {
		clock = newFakeClock()
	})

	Describe("Load", func() {
		It("rejects bad pitches without disturbing the rest", func() {
			pitches := samplePitches()
			pitches[1].A.Y = 0

			seq = NewSequence(WithClock(clock))
			errs := seq.Load(pitches)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(MatchError(dynamo.ErrZeroAcceleration))

			var pe *dynamo.PitchError
			Expect(errs[0]).To(BeAssignableToTypeOf(pe))
			Expect(errs[0].(*dynamo.PitchError).Index).To(Equal(1))

			Expect(seq.Len()).To(Equal(3))
			for i := 0; i < seq.Len(); i++ {
				Expect(seq.Pitch(i).Phase()).To(Equal(NotStarted))
			}
		})

		It("locates rejected pitches by their feed record", func() {
			// record 0 was dropped during parsing, record 2 cannot reach the plate
			feed := samplePitches()[1:]
			feed[1].A.Y = 0

			core, logs := observer.New(zap.WarnLevel)
			seq = NewSequence(WithClock(clock), WithLogger(zap.New(core)))
			errs := seq.Load(feed)
			Expect(errs).To(HaveLen(1))

			var pe *dynamo.PitchError
			Expect(errors.As(errs[0], &pe)).To(BeTrue())
			Expect(pe.Index).To(Equal(1))
			Expect(pe.Record).To(Equal(2))
			Expect(pe.ID).To(Equal(feed[1].ID))

			rejected := logs.FilterMessage("pitch rejected").All()
			Expect(rejected).To(HaveLen(1))
			Expect(rejected[0].ContextMap()).To(HaveKeyWithValue("record", int64(2)))
		})

		It("reports an empty sequence", func() {
			pitches := samplePitches()[:1]
			pitches[0].A.Y = 0

			seq = NewSequence(WithClock(clock))
			errs := seq.Load(pitches)
			Expect(errs).To(ContainElement(MatchError(dynamo.ErrEmptySequence)))
			Expect(seq.Len()).To(BeZero())
			Expect(seq.Current()).To(BeNil())

			tick(seq, clock)
			Expect(seq.Frame().Pitches).To(BeEmpty())
		})

		It("replaces a previous sequence", func() {
			seq = newSeq(true, samplePitches())
			for i := 0; i < 30; i++ {
				tick(seq, clock)
			}
			Expect(seq.Load(samplePitches()[:2])).To(BeEmpty())
			Expect(seq.Len()).To(Equal(2))
			Expect(seq.Index()).To(BeZero())
			Expect(seq.Current().Phase()).To(Equal(NotStarted))
		})
	})

	Describe("Tick", func() {
		It("uses no time on the first tick after a restart", func() {
			seq = newSeq(true, samplePitches())
			clock.Advance(time.Hour)
			seq.Tick()
			Expect(seq.Current().Phase()).To(Equal(InFlight))
			Expect(seq.Current().Elapsed()).To(BeZero())

			tick(seq, clock)
			Expect(seq.Current().Elapsed()).To(BeNumerically("~", frame.Seconds(), 1e-12))
		})

		It("shows the strike zone on the current pitch", func() {
			seq = newSeq(true, samplePitches())
			Expect(seq.Frame().ZoneCount()).To(BeZero())
			tick(seq, clock)
			Expect(seq.Pitch(0).ShowStrikeZone).To(BeTrue())
			Expect(seq.Frame().ZoneCount()).To(Equal(1))
		})

		It("moves on to the next pitch when one is done", func() {
			seq = newSeq(true, samplePitches())
			for seq.Index() == 0 {
				tick(seq, clock)
			}
			Expect(seq.Index()).To(Equal(1))
			Expect(seq.Pitch(0).IsDone()).To(BeTrue())
			Expect(seq.Pitch(0).ShowStrikeZone).To(BeFalse())
			Expect(seq.Pitch(1).ShowStrikeZone).To(BeTrue())
		})
	})

	Describe("pausing", func() {
		It("does not advance while paused but still draws", func() {
			seq = newSeq(true, samplePitches())
			tick(seq, clock)
			tick(seq, clock)
			elapsed := seq.Current().Elapsed()

			seq.Pause()
			Expect(seq.Paused()).To(BeTrue())
			d := &countingDrawer{}
			for i := 0; i < 10; i++ {
				clock.Advance(frame)
				seq.Step(d)
			}
			Expect(d.frames).To(HaveLen(10))
			Expect(d.frames[9].Paused).To(BeTrue())
			Expect(seq.Current().Elapsed()).To(Equal(elapsed))

			seq.Resume()
			tick(seq, clock)
			Expect(seq.Current().Elapsed()).To(BeNumerically("~", elapsed+frame.Seconds(), 1e-12))
		})

		It("toggles", func() {
			seq = newSeq(true, samplePitches())
			seq.TogglePause()
			Expect(seq.Paused()).To(BeTrue())
			seq.TogglePause()
			Expect(seq.Paused()).To(BeFalse())
		})
	})

	Describe("end of sequence", func() {
		It("loops back to the first pitch with every pitch reset", func() {
			seq = newSeq(true, samplePitches())
			start := seq.Restarts()
			for i := 0; i < 4*ticksPerPitch && seq.Restarts() == start; i++ {
				tick(seq, clock)
			}
			Expect(seq.Restarts()).To(Equal(start + 1))
			Expect(seq.Index()).To(BeZero())
			Expect(seq.Paused()).To(BeFalse())
			for i := 0; i < seq.Len(); i++ {
				Expect(seq.Pitch(i).Phase()).To(Equal(NotStarted))
				Expect(seq.Pitch(i).Position()).To(Equal(seq.Pitch(i).Telemetry.P0))
			}

			tick(seq, clock)
			Expect(seq.Current().Phase()).To(Equal(InFlight))
		})

		It("freezes on the last pitch when not looping", func() {
			seq = newSeq(false, samplePitches())
			for i := 0; i < 4*ticksPerPitch && !seq.Finished(); i++ {
				tick(seq, clock)
			}
			Expect(seq.Finished()).To(BeTrue())
			Expect(seq.Index()).To(Equal(seq.Len()))
			Expect(seq.Current()).To(BeNil())

			last := seq.Pitch(seq.Len() - 1)
			for i := 0; i < 500; i++ {
				tick(seq, clock)
				Expect(last.ShowStrikeZone).To(BeTrue())
				Expect(seq.Frame().ZoneCount()).To(Equal(1))
			}
			Expect(last.IsDone()).To(BeTrue())
		})

		It("starts looping again when looping is switched back on", func() {
			seq = newSeq(false, samplePitches()[:1])
			for i := 0; i < ticksPerPitch && !seq.Finished(); i++ {
				tick(seq, clock)
			}
			Expect(seq.Finished()).To(BeTrue())

			seq.SetLooping(true)
			tick(seq, clock)
			Expect(seq.Finished()).To(BeFalse())
			Expect(seq.Index()).To(BeZero())
		})
	})

	It("keeps the strike zone on exactly one pitch of two", func() {
		seq = newSeq(true, samplePitches()[:2])
		wraps := 0
		for i := 0; i < 6*ticksPerPitch; i++ {
			before := seq.Restarts()
			tick(seq, clock)
			n := seq.Frame().ZoneCount()
			if seq.Restarts() != before {
				// The wrap-around tick clears every flag.
				wraps++
				Expect(n).To(BeZero())
				continue
			}
			Expect(n).To(Equal(1), "tick %d", i)
		}
		Expect(wraps).To(BeNumerically(">=", 2))
	})

	It("shows the zone immediately for a single pitch", func() {
		seq = newSeq(true, samplePitches()[:1])
		Expect(seq.Pitch(0).ShowStrikeZone).To(BeTrue())
	})

	Describe("delayed restart", func() {
		BeforeEach(func() {
			seq = newSeq(true, samplePitches())
			for i := 0; i < 20; i++ {
				tick(seq, clock)
			}
		})

		It("rewinds at once and resumes after the delay", func() {
			seq.RestartAfter(500 * time.Millisecond)
			Expect(seq.Paused()).To(BeTrue())
			Expect(seq.Index()).To(BeZero())
			Expect(seq.Current().Phase()).To(Equal(NotStarted))

			for i := 0; i < 30; i++ {
				tick(seq, clock)
			}
			Expect(seq.Paused()).To(BeTrue())
			Expect(seq.Current().Phase()).To(Equal(NotStarted))

			for i := 0; i < 2; i++ {
				tick(seq, clock)
			}
			Expect(seq.Paused()).To(BeFalse())
			Expect(seq.Current().Phase()).To(Equal(InFlight))
		})

		It("never fires a superseded resume", func() {
			seq.RestartAfter(500 * time.Millisecond)
			clock.Advance(200 * time.Millisecond)
			seq.RestartAfter(time.Second)

			clock.Advance(400 * time.Millisecond)
			seq.Tick()
			Expect(seq.Paused()).To(BeTrue())

			clock.Advance(600 * time.Millisecond)
			seq.Tick()
			Expect(seq.Paused()).To(BeFalse())
		})

		It("is cancelled by an explicit pause", func() {
			seq.RestartAfter(100 * time.Millisecond)
			seq.Pause()
			clock.Advance(time.Second)
			seq.Tick()
			Expect(seq.Paused()).To(BeTrue())
		})

		It("resumes immediately without a delay", func() {
			seq.RestartAfter(0)
			Expect(seq.Paused()).To(BeFalse())
		})
	})

	Describe("Frame", func() {
		It("lists pitches that have left the hand plus the current one", func() {
			seq = newSeq(true, samplePitches())
			Expect(seq.Frame().Visible()).To(HaveLen(1))
			for seq.Index() < 2 {
				tick(seq, clock)
			}
			visible := seq.Frame().Visible()
			Expect(visible).To(HaveLen(3))
			Expect(visible[0].PathDone).To(BeTrue())
			Expect(visible[0].Outcome).To(Equal(telemetry.Strike))
			Expect(visible[2].Index).To(Equal(2))
		})

		It("draws through DrawerFunc", func() {
			seq = newSeq(true, samplePitches())
			var got Frame
			seq.Step(DrawerFunc(func(f Frame) { got = f }))
			Expect(got.Pitches).To(HaveLen(4))
			Expect(got.Looping).To(BeTrue())
		})
	})

	Describe("StepClock", func() {
		It("plays a sequence to the end without real time passing", func() {
			s := NewSequence(WithClock(NewStepClock(time.Second/60)), WithLooping(false))
			Expect(s.Load(samplePitches())).To(BeEmpty())
			for i := 0; i < 10000 && !s.Finished(); i++ {
				s.Tick()
			}
			Expect(s.Finished()).To(BeTrue())
			Expect(s.Frame().ZoneCount()).To(Equal(1))
		})
	})
})
