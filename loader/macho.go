// Package loader parses the m68k relocatable Mach-O objects this backend
// emits. It exists for round-trip verification and object inspection; it
// is a reader for the writer in package obj, not a general Mach-O parser.
package loader

import (
	"encoding/binary"
	"fmt"
)

// File format constants the parser validates against.
const (
	magic       = 0xfeedface
	cpuTypeM68k = 6
	mhObject    = 0x1

	lcSegment = 0x1
	lcSymtab  = 0x2

	headerSize     = 28
	segmentCmdSize = 56
	sectionHdrSize = 68
	nlistSize      = 12
	relocEntrySize = 8

	rScattered = 0x80000000
)

// Relocation is one parsed relocation entry.
type Relocation struct {
	Scattered   bool
	Type        uint8
	Address     uint32
	Value       uint32 // scattered only
	SymbolIndex uint32 // vanilla only
	PCRel       bool
	Length      uint8
	Extern      bool
}

// Section is one parsed section with its contents and relocations.
type Section struct {
	Segment     string
	Name        string
	Addr        uint32
	Size        uint32
	Offset      uint32
	Align       uint32
	Flags       uint32
	Data        []byte
	Relocations []Relocation
}

// Segment is one parsed segment.
type Segment struct {
	Name     string
	VMAddr   uint32
	VMSize   uint32
	FileOff  uint32
	FileSize uint32
	Sections []Section
}

// Symbol is one parsed symbol-table entry.
type Symbol struct {
	Name     string
	Type     uint8
	Section  uint8
	Value    uint32
	External bool
}

// Object is a parsed relocatable object.
type Object struct {
	CPUSubtype uint32
	Segments   []Segment
	Symbols    []Symbol
}

// Parse reads a relocatable m68k Mach-O object from memory.
func Parse(b []byte) (*Object, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("object truncated: %d bytes", len(b))
	}
	if u32(b, 0) != magic {
		return nil, fmt.Errorf("bad magic 0x%08x", u32(b, 0))
	}
	if u32(b, 4) != cpuTypeM68k {
		return nil, fmt.Errorf("not an m68k object (cputype %d)", u32(b, 4))
	}
	if u32(b, 12) != mhObject {
		return nil, fmt.Errorf("not a relocatable object (filetype %d)", u32(b, 12))
	}

	obj := &Object{CPUSubtype: u32(b, 8)}
	nCmds := u32(b, 16)
	sizeOfCmds := u32(b, 20)
	if uint64(headerSize)+uint64(sizeOfCmds) > uint64(len(b)) {
		return nil, fmt.Errorf("load commands truncated")
	}

	off := headerSize
	for i := uint32(0); i < nCmds; i++ {
		cmd := u32(b, off)
		cmdSize := u32(b, off+4)
		if cmdSize < 8 || off+int(cmdSize) > headerSize+int(sizeOfCmds) {
			return nil, fmt.Errorf("load command %d overruns command area", i)
		}

		switch cmd {
		case lcSegment:
			seg, err := parseSegment(b, off, cmdSize)
			if err != nil {
				return nil, err
			}
			obj.Segments = append(obj.Segments, seg)
		case lcSymtab:
			syms, err := parseSymtab(b, off)
			if err != nil {
				return nil, err
			}
			obj.Symbols = syms
		default:
			return nil, fmt.Errorf("unexpected load command 0x%x", cmd)
		}
		off += int(cmdSize)
	}

	return obj, nil
}

// Section finds a parsed section by segment and section name.
func (o *Object) Section(segment, name string) *Section {
	for si := range o.Segments {
		for ti := range o.Segments[si].Sections {
			s := &o.Segments[si].Sections[ti]
			if s.Segment == segment && s.Name == name {
				return s
			}
		}
	}
	return nil
}

func parseSegment(b []byte, off int, cmdSize uint32) (Segment, error) {
	nSects := u32(b, off+48)
	if uint64(segmentCmdSize)+uint64(nSects)*sectionHdrSize != uint64(cmdSize) {
		return Segment{}, fmt.Errorf("segment command size %d does not match %d sections",
			cmdSize, nSects)
	}

	seg := Segment{
		Name:     cstr(b[off+8 : off+24]),
		VMAddr:   u32(b, off+24),
		VMSize:   u32(b, off+28),
		FileOff:  u32(b, off+32),
		FileSize: u32(b, off+36),
	}

	so := off + segmentCmdSize
	for i := uint32(0); i < nSects; i++ {
		sec, err := parseSection(b, so)
		if err != nil {
			return Segment{}, err
		}
		seg.Sections = append(seg.Sections, sec)
		so += sectionHdrSize
	}
	return seg, nil
}

func parseSection(b []byte, off int) (Section, error) {
	sec := Section{
		Name:    cstr(b[off : off+16]),
		Segment: cstr(b[off+16 : off+32]),
		Addr:    u32(b, off+32),
		Size:    u32(b, off+36),
		Offset:  u32(b, off+40),
		Align:   u32(b, off+44),
		Flags:   u32(b, off+56),
	}

	if sec.Offset != 0 && sec.Size > 0 {
		end := uint64(sec.Offset) + uint64(sec.Size)
		if end > uint64(len(b)) {
			return Section{}, fmt.Errorf("section %s,%s contents truncated", sec.Segment, sec.Name)
		}
		sec.Data = b[sec.Offset:end]
	}

	relOff := u32(b, off+48)
	nReloc := u32(b, off+52)
	if nReloc > 0 {
		end := uint64(relOff) + uint64(nReloc)*relocEntrySize
		if end > uint64(len(b)) {
			return Section{}, fmt.Errorf("section %s,%s relocations truncated", sec.Segment, sec.Name)
		}
		for i := uint32(0); i < nReloc; i++ {
			sec.Relocations = append(sec.Relocations,
				parseReloc(b, int(relOff)+int(i)*relocEntrySize))
		}
	}
	return sec, nil
}

func parseReloc(b []byte, off int) Relocation {
	word0 := u32(b, off)
	word1 := u32(b, off+4)

	if word0&rScattered != 0 {
		return Relocation{
			Scattered: true,
			Type:      uint8((word0 >> 24) & 0xf),
			Length:    uint8((word0 >> 28) & 0x3),
			PCRel:     word0>>30&1 == 1,
			Address:   word0 & 0xffffff,
			Value:     word1,
		}
	}
	return Relocation{
		Address:     word0,
		SymbolIndex: word1 & 0xffffff,
		PCRel:       word1>>24&1 == 1,
		Length:      uint8((word1 >> 25) & 0x3),
		Extern:      word1>>27&1 == 1,
		Type:        uint8((word1 >> 28) & 0xf),
	}
}

func parseSymtab(b []byte, off int) ([]Symbol, error) {
	symOff := u32(b, off+8)
	nSyms := u32(b, off+12)
	strOff := u32(b, off+16)
	strSize := u32(b, off+20)

	if uint64(symOff)+uint64(nSyms)*nlistSize > uint64(len(b)) {
		return nil, fmt.Errorf("symbol table truncated")
	}
	if uint64(strOff)+uint64(strSize) > uint64(len(b)) {
		return nil, fmt.Errorf("string table truncated")
	}
	strtab := b[strOff : strOff+strSize]

	syms := make([]Symbol, 0, nSyms)
	for i := uint32(0); i < nSyms; i++ {
		no := int(symOff) + int(i)*nlistSize
		strx := u32(b, no)
		if uint64(strx) >= uint64(len(strtab)) {
			return nil, fmt.Errorf("symbol %d name index out of range", i)
		}
		typ := b[no+4]
		syms = append(syms, Symbol{
			Name:     cstr(strtab[strx:]),
			Type:     typ,
			Section:  b[no+5],
			Value:    u32(b, no+8),
			External: typ&0x1 != 0,
		})
	}
	return syms, nil
}

func u32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
