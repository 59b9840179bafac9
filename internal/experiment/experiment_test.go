package experiment_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/experiment"
	"github.com/san-kum/freefall/internal/metrics"
)

var _ = Describe("Falling ball", func() {
	var (
		registry *experiment.Registry
		ball     dynamo.ObjectProfile
		sim      dynamo.SimulationConfig
		ctx      context.Context
	)

	BeforeEach(func() {
		registry = experiment.NewRegistry()
		ball = dynamo.ObjectProfile{
			DragCoefficient: 0.47,
			Mass:            0.0577,
			Radius:          0.06661 / 2,
			FluidDensity:    1.22,
		}
		planet := dynamo.Earth()
		planet.SurfaceGravity = 9.81
		sim = dynamo.SimulationConfig{
			Planet:       planet,
			Position:     400,
			Velocity:     0,
			Dt:           0.01,
			SampleStride: 10,
		}
		ctx = context.Background()
	})

	runAll := func(models ...string) []*dynamo.Result {
		runners, err := registry.Build(models, ball, sim, nil)
		Expect(err).NotTo(HaveOccurred())
		results, err := dynamo.RunAll(ctx, runners)
		Expect(err).NotTo(HaveOccurred())
		return results
	}

	DescribeTable("terminal velocity",
		func(model string, height float64, reached bool) {
			sim.Position = height
			res := runAll(model)[0]

			zero := metrics.CountTerminal(res.Series, 0.01)
			if reached {
				Expect(zero).To(BeNumerically(">=", 6))
			} else {
				Expect(zero).To(BeZero())
			}
			Expect(res.Metrics["terminal_samples"]).To(BeNumerically("==", zero))
		},
		Entry("constant gravity from 400 m", "constant", 400.0, true),
		Entry("newton gravity from 400 m", "newton", 400.0, true),
		Entry("constant gravity from 40 m", "constant", 40.0, false),
		Entry("newton gravity from 40 m", "newton", 40.0, false),
	)

	It("dispatches every variant through the same call", func() {
		results := runAll("constant", "newton")
		Expect(results).To(HaveLen(2))
		Expect(results[0].Model).To(Equal("constant"))
		Expect(results[1].Model).To(Equal("newton"))
		for _, res := range results {
			Expect(res.Series.Len()).To(BeNumerically(">", 0))
			Expect(res.Terminated).To(Equal(dynamo.TerminatedGround))
		}
	})

	It("keeps the four sequences aligned and ordered", func() {
		res := runAll("newton")[0]
		s := res.Series
		Expect(s.Velocity).To(HaveLen(s.Len()))
		Expect(s.NetForce).To(HaveLen(s.Len()))
		Expect(s.Position).To(HaveLen(s.Len()))
		for i := 1; i < s.Len(); i++ {
			Expect(s.Time[i]).To(BeNumerically(">", s.Time[i-1]))
			Expect(s.Position[i]).To(BeNumerically("<=", s.Position[i-1]))
		}
	})

	It("never samples below ground", func() {
		sim.SampleStride = 1
		for _, res := range runAll("constant", "newton") {
			for _, x := range res.Series.Position {
				Expect(x).To(BeNumerically(">=", 0))
			}
		}
	})

	It("reports the first sample from rest", func() {
		res := runAll("constant")[0]
		first := res.Series.At(0)
		Expect(first.Time).To(BeNumerically("~", 0.005, 1e-9))
		Expect(first.Position).To(BeNumerically("~", 400-0.5*9.81*1e-4, 1e-9))
		Expect(first.Velocity).To(BeNumerically("~", -0.0981, 1e-12))
		Expect(first.NetForce).To(BeNumerically("~", 0.0577*9.81, 1e-12))
	})

	It("is deterministic across independent runs", func() {
		a := runAll("newton")[0]
		b := runAll("newton")[0]
		Expect(a.Series).To(Equal(b.Series))
		Expect(a.Steps).To(Equal(b.Steps))
	})

	It("does not alias the caller's config", func() {
		before := sim
		runAll("constant", "newton")
		Expect(sim).To(Equal(before))
	})

	It("stops at the finish time without emitting the crossing sample", func() {
		sim.FinishTime = 3
		res := runAll("constant")[0]
		Expect(res.Terminated).To(Equal(dynamo.TerminatedCutoff))
		Expect(res.Series.Time[res.Series.Len()-1]).To(BeNumerically("<=", 3))
		Expect(res.Metrics["last_sample_time"]).To(Equal(res.Series.Time[res.Series.Len()-1]))
	})

	It("falls without drag in vacuum", func() {
		ball.FluidDensity = 0
		res := runAll("constant")[0]
		last := res.Series.At(res.Series.Len() - 1)
		Expect(last.NetForce).To(BeNumerically("~", ball.Mass*9.81, 1e-12))
		Expect(math.Abs(last.Velocity)).To(BeNumerically(">", 80))
	})

	It("rejects a zero sample stride before running", func() {
		sim.SampleStride = 0
		_, err := registry.Build([]string{"constant"}, ball, sim, nil)
		Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
	})

	It("rejects unknown models", func() {
		_, err := registry.Build([]string{"mond"}, ball, sim, nil)
		Expect(err).To(MatchError(ContainSubstring("unknown model")))
	})

	It("lists the registered models", func() {
		Expect(registry.ListModels()).To(Equal([]string{"constant", "newton"}))
	})
})
