package sched

import (
	"encoding/json"
	"fmt"
	"os"
)

// Params holds the tunable scheduling parameters of one processor
// variant. Build configurations can override the shipped defaults from a
// JSON file without rebuilding the toolchain.
type Params struct {
	// IssueWidth is the number of instructions the variant can issue
	// per cycle. Default: 1 (2 on the 68060).
	IssueWidth uint32 `json:"issue_width"`

	// LoadLatency is the cycle count charged to the memory stage of
	// LOAD, STORE and ALU_MEM itineraries.
	LoadLatency uint32 `json:"load_latency"`

	// MispredictPenalty is the cycle cost of a mispredicted branch.
	// It is a model-global parameter, not an itinerary stage.
	MispredictPenalty uint32 `json:"mispredict_penalty"`
}

// LoadParams reads variant parameters from a JSON file. Fields absent
// from the file keep the values already in p, so callers seed it with a
// variant's defaults before loading overrides.
func LoadParams(path string, p *Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scheduling params file: %w", err)
	}

	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to parse scheduling params: %w", err)
	}

	return nil
}

// SaveParams writes the parameters to a JSON file.
func (p Params) SaveParams(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize scheduling params: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scheduling params file: %w", err)
	}

	return nil
}

// Validate checks that the parameters describe a usable variant.
func (p Params) Validate() error {
	if p.IssueWidth == 0 {
		return fmt.Errorf("issue_width must be > 0")
	}
	if p.LoadLatency == 0 {
		return fmt.Errorf("load_latency must be > 0")
	}
	return nil
}

// Clone returns a copy of the parameters.
func (p Params) Clone() Params {
	return p
}
