package sched_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nxtools/m68kemit/sched"
)

var _ = Describe("Params", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("round-trips through JSON", func() {
		path := filepath.Join(dir, "params.json")
		p := sched.Params{IssueWidth: 2, LoadLatency: 5, MispredictPenalty: 9}
		Expect(p.SaveParams(path)).To(Succeed())

		var loaded sched.Params
		Expect(sched.LoadParams(path, &loaded)).To(Succeed())
		Expect(loaded).To(Equal(p))
	})

	It("keeps seeded values for fields absent from the file", func() {
		path := filepath.Join(dir, "partial.json")
		Expect(os.WriteFile(path, []byte(`{"load_latency": 9}`), 0644)).To(Succeed())

		base, err := sched.NewModel("generic")
		Expect(err).ToNot(HaveOccurred())
		p := base.Params().Clone()
		Expect(sched.LoadParams(path, &p)).To(Succeed())

		Expect(p.LoadLatency).To(Equal(uint32(9)))
		Expect(p.IssueWidth).To(Equal(uint32(1)))
		Expect(p.MispredictPenalty).To(Equal(uint32(4)))
	})

	It("fails loading a missing file", func() {
		var p sched.Params
		err := sched.LoadParams(filepath.Join(dir, "nope.json"), &p)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a zero issue width", func() {
		p := sched.Params{IssueWidth: 0, LoadLatency: 4}
		Expect(p.Validate()).ToNot(Succeed())
	})

	It("rejects a zero load latency", func() {
		p := sched.Params{IssueWidth: 1, LoadLatency: 0}
		Expect(p.Validate()).ToNot(Succeed())
	})
})
