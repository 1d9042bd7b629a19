package scoring

import (
	"fmt"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
)

// FeatureContribution captures one feature's share of a device's raw score.
type FeatureContribution struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Importance   int    `json:"importance"`
	Multiplier   int    `json:"multiplier"`
	Contribution int    `json:"contribution"`
	CriticalMiss bool   `json:"critical_miss"`
}

// Explanation breaks a device's raw score down by feature.
type Explanation struct {
	Device         string                `json:"device"`
	Features       []FeatureContribution `json:"features"`
	Weighted       float64               `json:"weighted"`
	Penalty        float64               `json:"penalty"`
	Raw            float64               `json:"raw_score"`
	CriticalMisses int                   `json:"critical_misses"`
	Policy         PenaltyMode           `json:"policy"`
}

// Explain returns the per-feature breakdown for one device in cat.
func (s *Scorer) Explain(cat *catalog.Catalog, device string, weights []int) (*Explanation, error) {
	d, ok := cat.Lookup(device)
	if !ok {
		return nil, fmt.Errorf("unknown device %q", device)
	}
	if len(d.Ratings) != len(weights) || len(cat.Features) != len(weights) {
		return nil, fmt.Errorf("device %q: %w", device, ErrLengthMismatch)
	}

	exp := &Explanation{
		Device:   d.Name,
		Features: make([]FeatureContribution, len(d.Ratings)),
		Policy:   s.policy.Mode,
	}
	for i, r := range d.Ratings {
		m := Multiplier(weights[i])
		fc := FeatureContribution{
			Key:          cat.Features[i].Key,
			Name:         cat.Features[i].Name,
			Rating:       r,
			Importance:   weights[i],
			Multiplier:   m,
			Contribution: r * m,
			CriticalMiss: IsCriticalMiss(r, weights[i]),
		}
		if fc.CriticalMiss {
			exp.CriticalMisses++
		}
		exp.Weighted += float64(fc.Contribution)
		exp.Features[i] = fc
	}

	exp.Penalty = float64(exp.CriticalMisses) * s.policy.rawPenalty()
	exp.Raw = exp.Weighted + exp.Penalty
	return exp, nil
}
