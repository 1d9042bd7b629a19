package scoring

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
)

// RankedDevice is one row of a ranking.
type RankedDevice struct {
	Rank           int     `json:"rank"`
	Name           string  `json:"name"`
	Raw            float64 `json:"raw_score"`
	Normalized     float64 `json:"normalized_score"`
	MatchQuality   float64 `json:"match_quality"`
	Stars          int     `json:"stars"`
	CriticalMisses int     `json:"critical_misses"`
}

// Ranking is the ordered output for one importance vector, best match first.
type Ranking struct {
	Policy  PenaltyMode    `json:"policy"`
	Entries []RankedDevice `json:"entries"`
	Winner  string         `json:"winner"`
}

// Scorer ranks a catalog against importance vectors under one penalty policy.
type Scorer struct {
	policy Policy
	logger *slog.Logger
}

// NewScorer creates a Scorer with the given policy.
func NewScorer(policy Policy, logger *slog.Logger) *Scorer {
	return &Scorer{
		policy: policy,
		logger: logger,
	}
}

// Policy returns the scorer's penalty policy.
func (s *Scorer) Policy() Policy {
	return s.policy
}

// Rank scores every device in cat, attaches star ratings and orders the
// result by normalized score. Ties keep catalog order.
func (s *Scorer) Rank(cat *catalog.Catalog, weights []int) (*Ranking, error) {
	if len(cat.Features) != len(weights) {
		return nil, fmt.Errorf("%d features, %d weights: %w", len(cat.Features), len(weights), ErrLengthMismatch)
	}

	result, err := Score(cat.Devices, weights, s.policy)
	if err != nil {
		return nil, err
	}

	entries := make([]RankedDevice, len(cat.Devices))
	for i, d := range cat.Devices {
		normalized := result.Normalized[i].Value
		entries[i] = RankedDevice{
			Name:           d.Name,
			Raw:            result.Raw[i].Value,
			Normalized:     normalized,
			MatchQuality:   MatchQuality(normalized),
			Stars:          StarRating(normalized, d.Ratings, weights, s.policy.Mode),
			CriticalMisses: CriticalMisses(d.Ratings, weights),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Normalized < entries[j].Normalized
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	ranking := &Ranking{
		Policy:  s.policy.Mode,
		Entries: entries,
		Winner:  entries[0].Name,
	}

	s.logger.Debug("ranked devices",
		"devices", len(entries),
		"policy", s.policy.Mode,
		"winner", ranking.Winner,
	)
	return ranking, nil
}
