package scoring

import (
	"fmt"
	"strings"
)

// PenaltyMode selects where a critical miss is penalised. Exactly one mode
// applies per Scorer; raw and star are never combined.
type PenaltyMode string

const (
	// PenaltyRaw adds a fixed number of raw points per critical miss before
	// normalization.
	PenaltyRaw PenaltyMode = "raw"
	// PenaltyStar leaves raw scores alone and deducts one star (at most)
	// from any device with a critical miss.
	PenaltyStar PenaltyMode = "star"
	// PenaltyNone ranks on the weighted sum only.
	PenaltyNone PenaltyMode = "none"
)

// DefaultCriticalMissPenalty is the raw-score penalty per critical miss. It
// has to outweigh ordinary weighted differences between devices.
const DefaultCriticalMissPenalty = 50.0

// Policy configures critical-miss handling.
type Policy struct {
	Mode    PenaltyMode `json:"mode"`
	Penalty float64     `json:"penalty"`
}

// DefaultPolicy returns the raw-score penalty policy with the standard penalty.
func DefaultPolicy() Policy {
	return Policy{Mode: PenaltyRaw, Penalty: DefaultCriticalMissPenalty}
}

// ParsePenaltyMode accepts raw, star or none (case-insensitive).
func ParsePenaltyMode(s string) (PenaltyMode, error) {
	switch m := PenaltyMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PenaltyRaw, PenaltyStar, PenaltyNone:
		return m, nil
	default:
		return "", fmt.Errorf("unknown penalty policy %q (want raw, star or none)", s)
	}
}

// Validate checks the mode is known and the penalty non-negative.
func (p Policy) Validate() error {
	if _, err := ParsePenaltyMode(string(p.Mode)); err != nil {
		return err
	}
	if p.Penalty < 0 {
		return fmt.Errorf("negative critical miss penalty: %f", p.Penalty)
	}
	return nil
}

// rawPenalty is the per-miss raw penalty in effect for this policy.
func (p Policy) rawPenalty() float64 {
	if p.Mode != PenaltyRaw {
		return 0
	}
	return p.Penalty
}
