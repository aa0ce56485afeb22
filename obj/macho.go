package obj

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Mach-O constants for the m68k NeXTSTEP target. The linker depends on
// the exact values; everything serializes big-endian.
const (
	mhMagic  = 0xfeedface // 32-bit magic
	mhObject = 0x1        // relocatable object file

	cpuTypeM68k = 6

	// CPU subtypes
	CPUSubtypeM68kAll   = 1
	CPUSubtype68040     = 2
	CPUSubtype68030Only = 3

	lcSegment = 0x1
	lcSymtab  = 0x2

	vmProtDefault = 0x7 // rwx, conventional for MH_OBJECT

	// Section type/attribute flags
	sRegular              = 0x0
	sZerofill             = 0x1
	sAttrPureInstructions = 0x80000000
	sAttrSomeInstructions = 0x00000400

	// Symbol n_type fields
	nUndf = 0x0
	nSect = 0xe
	nExt  = 0x1

	headerSize     = 28
	segmentCmdSize = 56
	sectionHdrSize = 68
	symtabCmdSize  = 24
	nlistSize      = 12
	relocEntrySize = 8
)

// On-disk structures, serialized with binary.Write in big-endian order.

type machHeader struct {
	Magic      uint32
	CPUType    uint32
	CPUSubtype uint32
	FileType   uint32
	NCmds      uint32
	SizeOfCmds uint32
	Flags      uint32
}

type segmentCommand struct {
	Cmd      uint32
	CmdSize  uint32
	SegName  [16]byte
	VMAddr   uint32
	VMSize   uint32
	FileOff  uint32
	FileSize uint32
	MaxProt  uint32
	InitProt uint32
	NSects   uint32
	Flags    uint32
}

type sectionHeader struct {
	SectName  [16]byte
	SegName   [16]byte
	Addr      uint32
	Size      uint32
	Offset    uint32
	Align     uint32
	RelOff    uint32
	NReloc    uint32
	Flags     uint32
	Reserved1 uint32
	Reserved2 uint32
}

type symtabCommand struct {
	Cmd     uint32
	CmdSize uint32
	SymOff  uint32
	NSyms   uint32
	StrOff  uint32
	StrSize uint32
}

type nlist struct {
	Strx  uint32
	Type  uint8
	Sect  uint8
	Desc  uint16
	Value uint32
}

// sectionLayout is the computed placement of one section.
type sectionLayout struct {
	sec     *Section
	ordinal int    // 1-based across all segments
	addr    uint32 // vm address
	fileOff uint32 // 0 for zero-fill sections
	relOff  uint32 // 0 when the section has no relocations
	nReloc  uint32
}

// Writer serializes segments and a symbol table into a relocatable
// Mach-O byte stream. Output is deterministic: identical inputs produce
// byte-identical streams.
type Writer struct {
	cpuSubtype uint32
}

// NewWriter creates a writer for the given CPU subtype (one of the
// CPUSubtype constants).
func NewWriter(cpuSubtype uint32) *Writer {
	return &Writer{cpuSubtype: cpuSubtype}
}

// Write lays out the segments, translates any untranslated fixups against
// the symbol table, and serializes the object: header, one segment load
// command per segment, the symtab command, section contents in layout
// order, per-section relocation tables (scattered pairs adjacent), the
// symbol table, and the string table. On any error nothing is returned:
// an object is either fully valid or not emitted at all.
func (w *Writer) Write(segments []*Segment, st *SymbolTable) ([]byte, error) {
	tr := NewTranslator(st)
	for _, seg := range segments {
		for _, sec := range seg.Sections {
			if sec.translated {
				continue
			}
			if err := sec.Translate(tr); err != nil {
				return nil, err
			}
		}
	}

	layouts, segCmds, symCmd, strtab, err := w.layout(segments, st)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	hdr := machHeader{
		Magic:      mhMagic,
		CPUType:    cpuTypeM68k,
		CPUSubtype: w.cpuSubtype,
		FileType:   mhObject,
		NCmds:      uint32(len(segments)) + 1,
		SizeOfCmds: w.sizeOfCmds(segments),
	}
	mustWrite(&buf, hdr)

	li := 0
	for si, seg := range segments {
		mustWrite(&buf, segCmds[si])
		for range seg.Sections {
			mustWrite(&buf, makeSectionHeader(layouts[li]))
			li++
		}
	}
	mustWrite(&buf, symCmd)

	// Section contents in layout order, padded out to each computed
	// file offset so alignment holds regardless of predecessor sizes.
	for _, l := range layouts {
		if l.sec.ZeroFill || l.sec.Size() == 0 {
			continue
		}
		padTo(&buf, l.fileOff)
		buf.Write(l.sec.Bytes())
	}

	// Relocation tables.
	for _, l := range layouts {
		if l.nReloc == 0 {
			continue
		}
		padTo(&buf, l.relOff)
		for _, r := range l.sec.Relocations() {
			writeReloc(&buf, r)
		}
	}

	// Symbol table, then string table.
	padTo(&buf, symCmd.SymOff)
	strx := uint32(1) // strtab[0] is NUL: index 0 means "no name"
	for i := 0; i < st.Len(); i++ {
		sym := st.At(i)
		n := nlist{Strx: strx}
		if sym.Defined() {
			if sym.Section < 1 || sym.Section > len(layouts) {
				return nil, &UnresolvedSymbolError{Name: sym.Name}
			}
			n.Type = nSect
			if sym.External {
				n.Type |= nExt
			}
			n.Sect = uint8(sym.Section)
			n.Value = layouts[sym.Section-1].addr + sym.Offset
		} else {
			n.Type = nUndf | nExt
		}
		mustWrite(&buf, n)
		strx += uint32(len(sym.Name)) + 1
	}
	buf.Write(strtab)

	return buf.Bytes(), nil
}

// layout is the first pass: assign section ordinals, vm addresses and
// file offsets respecting alignment, then place relocation tables, the
// symbol table and the string table after the contents.
func (w *Writer) layout(segments []*Segment, st *SymbolTable) (
	[]sectionLayout, []segmentCommand, symtabCommand, []byte, error,
) {
	var layouts []sectionLayout
	segCmds := make([]segmentCommand, len(segments))

	contentStart := uint64(headerSize) + uint64(w.sizeOfCmds(segments))

	vmAddr := uint64(0)
	fileOff := contentStart
	ordinal := 0

	for si, seg := range segments {
		segVMStart := vmAddr
		segFileStart := fileOff
		segFileSize := uint64(0)
		segAlign := uint64(1)

		for _, sec := range seg.Sections {
			ordinal++
			if ordinal > math.MaxUint8 {
				return nil, nil, symtabCommand{}, nil, &LayoutOverflowError{
					What: "section ordinal", Value: uint64(ordinal), Limit: math.MaxUint8,
				}
			}

			align := uint64(1) << sec.Align
			if align > segAlign {
				segAlign = align
			}

			vmAddr = alignUp(vmAddr, align)
			l := sectionLayout{
				sec:     sec,
				ordinal: ordinal,
				addr:    uint32(vmAddr),
				nReloc:  uint32(len(sec.relocs)),
			}
			vmAddr += uint64(sec.Size())

			if !sec.ZeroFill && sec.Size() > 0 {
				fileOff = alignUp(fileOff, align)
				l.fileOff = uint32(fileOff)
				fileOff += uint64(sec.Size())
				segFileSize = fileOff - segFileStart
			}
			layouts = append(layouts, l)
		}

		vmAddr = alignUp(vmAddr, segAlign)
		if vmAddr > math.MaxUint32 {
			return nil, nil, symtabCommand{}, nil, &LayoutOverflowError{
				What: "segment vm size", Value: vmAddr, Limit: math.MaxUint32,
			}
		}

		segCmds[si] = segmentCommand{
			Cmd:      lcSegment,
			CmdSize:  segmentCmdSize + sectionHdrSize*uint32(len(seg.Sections)),
			SegName:  name16(seg.Name),
			VMAddr:   uint32(segVMStart),
			VMSize:   uint32(vmAddr - segVMStart),
			FileOff:  uint32(segFileStart),
			FileSize: uint32(segFileSize),
			MaxProt:  vmProtDefault,
			InitProt: vmProtDefault,
			NSects:   uint32(len(seg.Sections)),
		}
	}

	// Relocation tables follow all section contents, 4-byte aligned.
	for i := range layouts {
		if layouts[i].nReloc == 0 {
			continue
		}
		fileOff = alignUp(fileOff, 4)
		layouts[i].relOff = uint32(fileOff)
		fileOff += uint64(layouts[i].nReloc) * relocEntrySize
	}

	// Symbol table, then string table.
	fileOff = alignUp(fileOff, 4)
	symOff := fileOff
	fileOff += uint64(st.Len()) * nlistSize

	strtab := []byte{0}
	for i := 0; i < st.Len(); i++ {
		strtab = append(strtab, st.At(i).Name...)
		strtab = append(strtab, 0)
	}
	strOff := fileOff
	fileOff += uint64(len(strtab))

	if fileOff > math.MaxUint32 {
		return nil, nil, symtabCommand{}, nil, &LayoutOverflowError{
			What: "object file size", Value: fileOff, Limit: math.MaxUint32,
		}
	}

	symCmd := symtabCommand{
		Cmd:     lcSymtab,
		CmdSize: symtabCmdSize,
		SymOff:  uint32(symOff),
		NSyms:   uint32(st.Len()),
		StrOff:  uint32(strOff),
		StrSize: uint32(len(strtab)),
	}
	return layouts, segCmds, symCmd, strtab, nil
}

func (w *Writer) sizeOfCmds(segments []*Segment) uint32 {
	size := uint32(symtabCmdSize)
	for _, seg := range segments {
		size += segmentCmdSize + sectionHdrSize*uint32(len(seg.Sections))
	}
	return size
}

func makeSectionHeader(l sectionLayout) sectionHeader {
	return sectionHeader{
		SectName: name16(l.sec.Name),
		SegName:  name16(l.sec.Segment),
		Addr:     l.addr,
		Size:     l.sec.Size(),
		Offset:   l.fileOff,
		Align:    l.sec.Align,
		RelOff:   l.relOff,
		NReloc:   l.nReloc,
		Flags:    l.sec.Flags,
	}
}

// writeReloc serializes one 8-byte relocation entry. Vanilla records pack
// the symbol index with the pcrel/length/extern/type bits; scattered
// records set the high bit of the first word and carry the resolved
// offset in the second.
func writeReloc(buf *bytes.Buffer, r Relocation) {
	var word0, word1 uint32
	if r.Scattered {
		word0 = rScattered |
			uint32(r.Type)<<24 |
			uint32(r.Length)<<28 |
			r.Address&(scatteredAddrLimit-1)
		if r.PCRel {
			word0 |= 1 << 30
		}
		word1 = r.Value
	} else {
		word0 = r.Address
		word1 = r.SymbolIndex & 0xffffff
		if r.PCRel {
			word1 |= 1 << 24
		}
		word1 |= uint32(r.Length) << 25
		if r.Extern {
			word1 |= 1 << 27
		}
		word1 |= uint32(r.Type) << 28
	}
	var b [relocEntrySize]byte
	binary.BigEndian.PutUint32(b[0:4], word0)
	binary.BigEndian.PutUint32(b[4:8], word1)
	buf.Write(b[:])
}

func mustWrite(buf *bytes.Buffer, v any) {
	// bytes.Buffer writes cannot fail and every struct here is fixed
	// size, so an error is a bug in the struct definitions.
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		panic(err)
	}
}

func padTo(buf *bytes.Buffer, off uint32) {
	for uint32(buf.Len()) < off {
		buf.WriteByte(0)
	}
}

func alignUp(v, align uint64) uint64 {
	return (v + align - 1) &^ (align - 1)
}

func name16(s string) [16]byte {
	var b [16]byte
	copy(b[:], s)
	return b
}
