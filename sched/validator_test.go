package sched_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nxtools/m68kemit/insts"
	"github.com/nxtools/m68kemit/sched"
)

var _ = Describe("Validator", func() {
	var model *sched.Model

	BeforeEach(func() {
		var err error
		model, err = sched.NewModel("generic")
		Expect(err).ToNot(HaveOccurred())
		Expect(model.State()).To(Equal(sched.StateUnvalidated))
	})

	It("completes over the shipped template table", func() {
		Expect(sched.Validate(model, insts.Templates())).To(Succeed())
		Expect(model.State()).To(Equal(sched.StateComplete))
		Expect(model.Ready()).To(BeTrue())
	})

	It("rejects a table with an unclassified template and names exactly it", func() {
		templates := append([]insts.Template{}, insts.Templates()...)
		templates = append(templates, insts.Template{Name: "PHANTOM32", Op: insts.OpUnknown})

		err := sched.Validate(model, templates)
		Expect(err).To(HaveOccurred())
		Expect(model.State()).To(Equal(sched.StateRejected))
		Expect(model.Ready()).To(BeFalse())

		var incomplete *sched.ModelIncompleteError
		Expect(errors.As(err, &incomplete)).To(BeTrue())
		Expect(incomplete.Model).To(Equal("generic"))
		Expect(incomplete.Missing).To(Equal([]string{"PHANTOM32"}))
		Expect(err.Error()).To(ContainSubstring("PHANTOM32"))
	})

	It("panics when an unvalidated model is asked for itineraries", func() {
		Expect(func() {
			model.Itinerary(insts.Templates()[0])
		}).To(Panic())
	})

	It("panics when a rejected model is asked for itineraries", func() {
		bogus := []insts.Template{{Name: "PHANTOM32", Op: insts.OpUnknown}}
		Expect(sched.Validate(model, bogus)).ToNot(Succeed())
		Expect(func() {
			model.ClassItinerary(sched.ClassALU)
		}).To(Panic())
	})

	It("panics on re-validation of a decided model", func() {
		Expect(sched.Validate(model, insts.Templates())).To(Succeed())
		Expect(func() {
			_ = sched.Validate(model, insts.Templates())
		}).To(Panic())
	})

	It("rejects unknown model names", func() {
		_, err := sched.NewModel("68000")
		Expect(err).To(HaveOccurred())
	})

	It("rejects unusable parameters at construction", func() {
		_, err := sched.NewModelWithParams("generic", sched.Params{})
		Expect(err).To(HaveOccurred())
	})
})
