// Package main provides the entry point for modelcheck.
// modelcheck proves the m68k scheduling model total before the rest of
// the toolchain builds: it validates every processor model against the
// full instruction-template table and lists each unclassified template.
// The build system runs it as a gate and halts on a non-zero exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/nxtools/m68kemit/insts"
	"github.com/nxtools/m68kemit/sched"
)

var (
	cpu         = flag.String("cpu", env.Str("M68K_CPU", "all"), "Processor model to check (generic, 68030, 68040, 68060, or all)")
	paramsPath  = flag.String("params", "", "Path to scheduling params JSON overriding the model defaults")
	itineraries = flag.Bool("itineraries", false, "Dump per-class itineraries after validation")
)

func main() {
	flag.Parse()

	names := sched.ModelNames()
	if *cpu != "all" {
		names = []string{*cpu}
	}

	templates := insts.Templates()
	failed := false

	for _, name := range names {
		model, err := buildModel(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "modelcheck: %v\n", err)
			os.Exit(1)
		}

		if err := sched.Validate(model, templates); err != nil {
			fmt.Fprintf(os.Stderr, "modelcheck: %v\n", err)
			failed = true
			continue
		}

		fmt.Printf("%s: Complete (%d templates, issue width %d, load latency %d)\n",
			name, len(templates), model.Params().IssueWidth, model.Params().LoadLatency)

		if *itineraries {
			dumpItineraries(model)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func buildModel(name string) (*sched.Model, error) {
	if *paramsPath == "" {
		return sched.NewModel(name)
	}

	base, err := sched.NewModel(name)
	if err != nil {
		return nil, err
	}
	params := base.Params().Clone()
	if err := sched.LoadParams(*paramsPath, &params); err != nil {
		return nil, err
	}
	return sched.NewModelWithParams(name, params)
}

func dumpItineraries(model *sched.Model) {
	for _, c := range sched.Classes() {
		fmt.Printf("  %-9s", c)
		for _, s := range model.ClassItinerary(c) {
			fmt.Printf(" %s", s)
		}
		fmt.Println()
	}
}
