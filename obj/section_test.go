package obj_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nxtools/m68kemit/obj"
)

var _ = Describe("Section", func() {
	var sec *obj.Section

	BeforeEach(func() {
		sec = obj.NewTextSection()
	})

	It("collects emitted bytes in order", func() {
		sec.AppendWord(0x4e71) // nop
		sec.AppendLong(0xdeadbeef)
		sec.Append([]byte{0x4e, 0x75}) // rts

		Expect(sec.Size()).To(Equal(uint32(8)))
		Expect(sec.Bytes()).To(Equal([]byte{
			0x4e, 0x71, 0xde, 0xad, 0xbe, 0xef, 0x4e, 0x75,
		}))
	})

	It("accepts fixups within the emitted bytes", func() {
		sec.AppendWord(0x2039) // move.l (xxx).l,d0
		sec.AppendLong(0)      // patched by the fixup
		Expect(sec.AddFixup(obj.Fixup{
			Offset: 2, Width: 4, Kind: obj.FixupAbsolute, Symbol1: "_x",
		})).To(Succeed())
		Expect(sec.Fixups()).To(HaveLen(1))
	})

	It("rejects fixups past the emitted bytes", func() {
		sec.AppendWord(0x4e71)
		err := sec.AddFixup(obj.Fixup{
			Offset: 2, Width: 4, Kind: obj.FixupAbsolute, Symbol1: "_x",
		})
		Expect(err).To(HaveOccurred())
	})

	It("rejects invalid fixup widths", func() {
		sec.AppendLong(0)
		sec.AppendLong(0)
		err := sec.AddFixup(obj.Fixup{
			Offset: 0, Width: 3, Kind: obj.FixupAbsolute, Symbol1: "_x",
		})
		Expect(err).To(HaveOccurred())
	})

	It("consumes each fixup exactly once", func() {
		st := obj.NewSymbolTable()
		st.AddUndefined("_x")
		tr := obj.NewTranslator(st)

		sec.AppendLong(0)
		Expect(sec.AddFixup(obj.Fixup{
			Offset: 0, Width: 4, Kind: obj.FixupAbsolute, Symbol1: "_x",
		})).To(Succeed())

		Expect(sec.Translate(tr)).To(Succeed())
		Expect(sec.Relocations()).To(HaveLen(1))
		Expect(sec.Translate(tr)).ToNot(Succeed())
	})
})
