// Package main provides the entry point for objdump.
// objdump prints the layout of an m68k relocatable Mach-O object emitted
// by this backend: segments, sections, relocation records and symbols.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nxtools/m68kemit/loader"
)

var relocs = flag.Bool("r", false, "Print relocation records")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: objdump [options] <object.o>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "objdump: %v\n", err)
		os.Exit(1)
	}

	o, err := loader.Parse(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "objdump: %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	fmt.Printf("%s: m68k relocatable object (cpu subtype %d)\n",
		flag.Arg(0), o.CPUSubtype)

	for _, seg := range o.Segments {
		fmt.Printf("segment %-8s vmaddr 0x%08x vmsize 0x%08x fileoff 0x%x\n",
			seg.Name, seg.VMAddr, seg.VMSize, seg.FileOff)
		for _, sec := range seg.Sections {
			fmt.Printf("  section %s,%s addr 0x%08x size 0x%x align 2^%d nreloc %d\n",
				sec.Segment, sec.Name, sec.Addr, sec.Size, sec.Align,
				len(sec.Relocations))
			if *relocs {
				for _, r := range sec.Relocations {
					printReloc(o, r)
				}
			}
		}
	}

	fmt.Printf("symbol table (%d entries):\n", len(o.Symbols))
	for _, sym := range o.Symbols {
		where := "undefined"
		if sym.Section != 0 {
			where = fmt.Sprintf("section %d", sym.Section)
		}
		ext := " "
		if sym.External {
			ext = "X"
		}
		fmt.Printf("  %s 0x%08x %-10s %s\n", ext, sym.Value, where, sym.Name)
	}
}

func printReloc(o *loader.Object, r loader.Relocation) {
	width := 1 << r.Length
	if r.Scattered {
		fmt.Printf("    0x%06x scattered type %d len %d value 0x%08x\n",
			r.Address, r.Type, width, r.Value)
		return
	}
	target := fmt.Sprintf("symbol %d", r.SymbolIndex)
	if r.Extern && int(r.SymbolIndex) < len(o.Symbols) {
		target = o.Symbols[r.SymbolIndex].Name
	}
	pcRel := ""
	if r.PCRel {
		pcRel = " pcrel"
	}
	fmt.Printf("    0x%08x type %d len %d%s -> %s\n",
		r.Address, r.Type, width, pcRel, target)
}
