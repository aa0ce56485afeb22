package obj_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nxtools/m68kemit/obj"
)

func u32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// buildUnit assembles a small compilation unit from scratch: a text
// section with a pc-relative call, an absolute data reference and a
// symbol-difference fixup, plus a data section.
func buildUnit() ([]*obj.Segment, *obj.SymbolTable) {
	st := obj.NewSymbolTable()

	text := obj.NewTextSection()
	text.AppendWord(0x4e71) // nop
	text.AppendWord(0x6100) // bsr.w
	text.AppendWord(0x0000)
	text.AppendWord(0x2039) // move.l (xxx).l,d0
	text.AppendLong(0)
	text.AppendLong(0) // patched with _tend - _tstart

	st.AddDefined("_tstart", 1, 0x0, true)
	st.AddDefined("_tend", 1, 0x10, false)
	st.AddDefined("_val", 2, 0x0, true)
	st.AddUndefined("_printf")

	Expect(text.AddFixup(obj.Fixup{
		Offset: 4, Width: 2, Kind: obj.FixupPCRel, Symbol1: "_printf",
	})).To(Succeed())
	Expect(text.AddFixup(obj.Fixup{
		Offset: 8, Width: 4, Kind: obj.FixupAbsolute, Symbol1: "_val",
	})).To(Succeed())
	Expect(text.AddFixup(obj.Fixup{
		Offset: 12, Width: 4, Kind: obj.FixupDifference,
		Symbol1: "_tend", Symbol2: "_tstart",
	})).To(Succeed())

	data := obj.NewDataSection()
	data.AppendLong(0x00000007)

	textSeg := obj.NewSegment("__TEXT")
	textSeg.AddSection(text)
	dataSeg := obj.NewSegment("__DATA")
	dataSeg.AddSection(data)

	return []*obj.Segment{textSeg, dataSeg}, st
}

var _ = Describe("Object Writer", func() {
	var w *obj.Writer

	BeforeEach(func() {
		w = obj.NewWriter(obj.CPUSubtypeM68kAll)
	})

	It("produces byte-identical output for identical input", func() {
		segsA, stA := buildUnit()
		segsB, stB := buildUnit()

		a, err := w.Write(segsA, stA)
		Expect(err).ToNot(HaveOccurred())
		b, err := w.Write(segsB, stB)
		Expect(err).ToNot(HaveOccurred())
		Expect(a).To(Equal(b))

		// A second write of the already-translated unit is also stable.
		a2, err := w.Write(segsA, stA)
		Expect(err).ToNot(HaveOccurred())
		Expect(a2).To(Equal(a))
	})

	It("writes the m68k object header", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		Expect(u32(out, 0)).To(Equal(uint32(0xfeedface)), "magic")
		Expect(u32(out, 4)).To(Equal(uint32(6)), "cputype MC680x0")
		Expect(u32(out, 8)).To(Equal(uint32(obj.CPUSubtypeM68kAll)))
		Expect(u32(out, 12)).To(Equal(uint32(0x1)), "MH_OBJECT")
		Expect(u32(out, 16)).To(Equal(uint32(3)), "two segments + symtab")
		// sizeofcmds: two segment commands with one section each, plus
		// the symtab command.
		Expect(u32(out, 20)).To(Equal(uint32(2*(56+68) + 24)))
	})

	It("lays section contents out at their recorded offsets", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		// First section header sits right after the first segment
		// command at 28+56.
		textHdr := 28 + 56
		textSize := u32(out, textHdr+36)
		textOff := u32(out, textHdr+40)
		Expect(textSize).To(Equal(uint32(16)))
		Expect(out[textOff:textOff+4]).To(Equal([]byte{0x4e, 0x71, 0x61, 0x00}))

		dataHdr := 28 + 2*56 + 68
		dataOff := u32(out, dataHdr+40)
		Expect(u32(out, int(dataOff))).To(Equal(uint32(0x7)))
		Expect(dataOff % 4).To(BeZero(), "data section alignment")
	})

	It("keeps the scattered pair adjacent in the serialized table", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		textHdr := 28 + 56
		relOff := int(u32(out, textHdr+48))
		nReloc := u32(out, textHdr+52)
		Expect(nReloc).To(Equal(uint32(4)), "two vanilla + one scattered pair")

		// Entries follow fixup order: pc-rel, absolute, then the pair.
		sectDiff := u32(out, relOff+2*8)
		pair := u32(out, relOff+3*8)

		Expect(sectDiff & 0x80000000).ToNot(BeZero(), "scattered bit")
		Expect((sectDiff >> 24) & 0xf).To(Equal(uint32(obj.RelocSectDiff)))
		Expect(sectDiff & 0xffffff).To(Equal(uint32(12)), "fixup offset")
		Expect(u32(out, relOff+2*8+4)).To(Equal(uint32(0x0)), "offset of _tstart")

		Expect(pair & 0x80000000).ToNot(BeZero())
		Expect((pair >> 24) & 0xf).To(Equal(uint32(obj.RelocPair)))
		Expect(u32(out, relOff+3*8+4)).To(Equal(uint32(0x10)), "offset of _tend")
	})

	It("encodes vanilla records with the symbol index and flag bits", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		textHdr := 28 + 56
		relOff := int(u32(out, textHdr+48))

		// First entry: pc-relative word reference to _printf (index 3).
		Expect(u32(out, relOff)).To(Equal(uint32(4)), "r_address")
		word1 := u32(out, relOff+4)
		Expect(word1 & 0xffffff).To(Equal(uint32(3)), "symbol index")
		Expect((word1 >> 24) & 1).To(Equal(uint32(1)), "pcrel")
		Expect((word1 >> 25) & 3).To(Equal(uint32(1)), "length: word")
		Expect((word1 >> 27) & 1).To(Equal(uint32(1)), "extern")
		Expect((word1 >> 28) & 0xf).To(Equal(uint32(obj.RelocVanilla)))
	})

	It("emits a valid zero-length entry for an empty section", func() {
		seg := obj.NewSegment("__DATA")
		seg.AddSection(obj.NewDataSection())
		st := obj.NewSymbolTable()

		out, err := w.Write([]*obj.Segment{seg}, st)
		Expect(err).ToNot(HaveOccurred())

		Expect(u32(out, 16)).To(Equal(uint32(2)), "one segment + symtab")
		hdr := 28 + 56
		Expect(u32(out, hdr+36)).To(BeZero(), "size")
		Expect(u32(out, hdr+48)).To(BeZero(), "reloff")
		Expect(u32(out, hdr+52)).To(BeZero(), "nreloc")
	})

	It("gives a zero-fill section vm space but no file bytes", func() {
		data := obj.NewDataSection()
		data.AppendLong(0x11223344)
		bss := obj.NewBSSSection()
		bss.Reserve(8)

		seg := obj.NewSegment("__DATA")
		seg.AddSection(data)
		seg.AddSection(bss)

		out, err := w.Write([]*obj.Segment{seg}, obj.NewSymbolTable())
		Expect(err).ToNot(HaveOccurred())

		bssHdr := 28 + 56 + 68
		Expect(u32(out, bssHdr+32)).To(Equal(uint32(4)), "addr follows data")
		Expect(u32(out, bssHdr+36)).To(Equal(uint32(8)), "vm size")
		Expect(u32(out, bssHdr+40)).To(BeZero(), "no file offset")
		Expect(u32(out, bssHdr+56)).To(Equal(uint32(0x1)), "S_ZEROFILL")

		// The segment's file size covers only the data section.
		segCmd := 28
		Expect(u32(out, segCmd+28)).To(Equal(uint32(12)), "vmsize")
		Expect(u32(out, segCmd+36)).To(Equal(uint32(4)), "filesize")
	})

	It("omits the relocation table for sections without relocations", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		dataHdr := 28 + 2*56 + 68
		Expect(u32(out, dataHdr+48)).To(BeZero(), "reloff")
		Expect(u32(out, dataHdr+52)).To(BeZero(), "nreloc")
	})

	It("serializes the symbol table and string table", func() {
		segs, st := buildUnit()
		out, err := w.Write(segs, st)
		Expect(err).ToNot(HaveOccurred())

		symCmd := 28 + 2*(56+68)
		Expect(u32(out, symCmd)).To(Equal(uint32(0x2)), "LC_SYMTAB")
		symOff := int(u32(out, symCmd+8))
		nSyms := u32(out, symCmd+12)
		strOff := int(u32(out, symCmd+16))
		strSize := int(u32(out, symCmd+20))
		Expect(nSyms).To(Equal(uint32(4)))
		Expect(symOff + 4*12).To(Equal(strOff), "string table follows nlists")
		Expect(symOff+4*12+strSize).To(Equal(len(out)), "string table ends the file")

		// _tend: second entry, local, defined in section 1 at 0x10.
		n := symOff + 12
		strx := int(u32(out, n))
		name := string(out[strOff+strx : strOff+strx+5])
		Expect(name).To(Equal("_tend"))
		Expect(out[n+4]).To(Equal(uint8(0x0e)), "n_type N_SECT, not external")
		Expect(out[n+5]).To(Equal(uint8(1)), "n_sect")
		Expect(u32(out, n+8)).To(Equal(uint32(0x10)), "n_value")

		// _printf: fourth entry, undefined external.
		n = symOff + 3*12
		Expect(out[n+4]).To(Equal(uint8(0x01)), "n_type N_UNDF|N_EXT")
		Expect(out[n+5]).To(Equal(uint8(0)), "NO_SECT")
		Expect(u32(out, n+8)).To(BeZero())
	})
})
