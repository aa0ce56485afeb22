package sched_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nxtools/m68kemit/insts"
	"github.com/nxtools/m68kemit/sched"
)

// completeModel builds and validates a shipped model.
func completeModel(name string) *sched.Model {
	m, err := sched.NewModel(name)
	Expect(err).ToNot(HaveOccurred())
	Expect(sched.Validate(m, insts.Templates())).To(Succeed())
	return m
}

var _ = Describe("Itineraries", func() {
	It("charges ALU then MEM for ALU_MEM on the 68040", func() {
		m := completeModel("68040")
		Expect(m.Params().LoadLatency).To(Equal(uint32(2)))
		Expect(m.ClassItinerary(sched.ClassALUMem)).To(Equal([]sched.Stage{
			{Unit: sched.UnitALU, Cycles: 1},
			{Unit: sched.UnitMem, Cycles: 2},
		}))
	})

	It("uses a single MEM stage for ALU_MEM on the generic model", func() {
		m := completeModel("generic")
		Expect(m.Params().LoadLatency).To(Equal(uint32(4)))
		Expect(m.ClassItinerary(sched.ClassALUMem)).To(Equal([]sched.Stage{
			{Unit: sched.UnitMem, Cycles: 4},
		}))
	})

	It("derives load and store stages from the model's load latency", func() {
		m := completeModel("68030")
		Expect(m.ClassItinerary(sched.ClassLoad)).To(Equal([]sched.Stage{
			{Unit: sched.UnitMem, Cycles: 3},
		}))
		Expect(m.ClassItinerary(sched.ClassStore)).To(Equal([]sched.Stage{
			{Unit: sched.UnitMem, Cycles: 3},
		}))
	})

	It("resolves a template's itinerary through its class", func() {
		m := completeModel("68040")
		Expect(m.Itinerary(template("ADD32dj"))).To(Equal(
			m.ClassItinerary(sched.ClassALUMem)))
	})

	It("gives every class positive stages on every model", func() {
		for _, name := range sched.ModelNames() {
			m := completeModel(name)
			for _, c := range sched.Classes() {
				stages := m.ClassItinerary(c)
				Expect(stages).ToNot(BeEmpty(), "%s has no stages for %s", name, c)
				for _, s := range stages {
					Expect(s.Cycles).To(BeNumerically(">", 0),
						"%s: %s stage %s", name, c, s)
				}
			}
		}
	})

	It("issues two instructions per cycle on the 68060", func() {
		m := completeModel("68060")
		Expect(m.Params().IssueWidth).To(Equal(uint32(2)))
	})

	It("respects overridden parameters", func() {
		p := sched.Params{IssueWidth: 1, LoadLatency: 7, MispredictPenalty: 4}
		m, err := sched.NewModelWithParams("generic", p)
		Expect(err).ToNot(HaveOccurred())
		Expect(sched.Validate(m, insts.Templates())).To(Succeed())
		Expect(m.ClassItinerary(sched.ClassLoad)).To(Equal([]sched.Stage{
			{Unit: sched.UnitMem, Cycles: 7},
		}))
	})
})
