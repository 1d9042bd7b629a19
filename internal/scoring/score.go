package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
)

const (
	// NeutralScore is assigned to every device when all raw scores are equal.
	NeutralScore = 5.5

	minNormalized = 1.0
	maxNormalized = 10.0

	// importanceCeiling turns importance 1..10 into multiplier 10..1.
	importanceCeiling = 11
	maxStars          = 5
)

var (
	ErrEmptyCatalog   = errors.New("no devices to score")
	ErrLengthMismatch = errors.New("ratings and importance weights differ in length")
)

// DeviceScore pairs a device name with a score.
type DeviceScore struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Result holds raw and normalized scores in input order.
type Result struct {
	Raw        []DeviceScore `json:"raw"`
	Normalized []DeviceScore `json:"normalized"`
}

// RawScore returns the raw score for name.
func (r Result) RawScore(name string) (float64, bool) {
	return find(r.Raw, name)
}

// NormalizedScore returns the normalized score for name.
func (r Result) NormalizedScore(name string) (float64, bool) {
	return find(r.Normalized, name)
}

func find(scores []DeviceScore, name string) (float64, bool) {
	for _, s := range scores {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// Score computes each device's weighted raw score and rescales the set to
// [1,10], 1 being the best match. Either every device is scored or an
// error is returned.
//
//	raw        = Σ rating[i] * (11 - weights[i])  (+ penalty per critical miss under PenaltyRaw)
//	normalized = 1 + 9 * (raw - min) / (max - min)
func Score(devices []catalog.Device, weights []int, policy Policy) (Result, error) {
	if len(devices) == 0 {
		return Result{}, ErrEmptyCatalog
	}

	raw := make([]DeviceScore, len(devices))
	for i, d := range devices {
		if len(d.Ratings) != len(weights) {
			return Result{}, fmt.Errorf("device %q: %w", d.Name, ErrLengthMismatch)
		}
		raw[i] = DeviceScore{Name: d.Name, Value: rawScore(d.Ratings, weights, policy)}
	}

	minScore, maxScore := raw[0].Value, raw[0].Value
	for _, s := range raw[1:] {
		minScore = math.Min(minScore, s.Value)
		maxScore = math.Max(maxScore, s.Value)
	}
	spread := maxScore - minScore

	normalized := make([]DeviceScore, len(raw))
	for i, s := range raw {
		v := NeutralScore
		if spread != 0 {
			v = minNormalized + (maxNormalized-minNormalized)*(s.Value-minScore)/spread
		}
		normalized[i] = DeviceScore{Name: s.Name, Value: v}
	}

	return Result{Raw: raw, Normalized: normalized}, nil
}

func rawScore(ratings, weights []int, policy Policy) float64 {
	var total int
	for i, r := range ratings {
		total += r * Multiplier(weights[i])
	}
	return float64(total) + float64(CriticalMisses(ratings, weights))*policy.rawPenalty()
}

// Multiplier converts an importance (1 = most important) into a weight.
func Multiplier(importance int) int {
	return importanceCeiling - importance
}

// IsCriticalMiss reports a feature the user marked essential that the
// device rates worst possible.
func IsCriticalMiss(rating, importance int) bool {
	return importance == catalog.MinRating && rating == catalog.MaxRating
}

// CriticalMisses counts the critical misses in a device's ratings.
func CriticalMisses(ratings, weights []int) int {
	var n int
	for i, r := range ratings {
		if i < len(weights) && IsCriticalMiss(r, weights[i]) {
			n++
		}
	}
	return n
}

// MatchQuality maps a normalized score onto 0–100%, 100 being a perfect match.
func MatchQuality(normalized float64) float64 {
	return clamp((maxNormalized+1-normalized)/(maxNormalized-minNormalized)*100, 0, 100)
}

// StarRating converts a normalized score into 0–5 stars. Under PenaltyStar a
// device with any critical miss loses exactly one star, never going below 0.
func StarRating(normalized float64, ratings, weights []int, mode PenaltyMode) int {
	stars := int(math.Round(MatchQuality(normalized) / (100.0 / maxStars)))

	if mode == PenaltyStar {
		for i, r := range ratings {
			if i < len(weights) && IsCriticalMiss(r, weights[i]) {
				stars--
				break
			}
		}
	}

	if stars < 0 {
		return 0
	}
	if stars > maxStars {
		return maxStars
	}
	return stars
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
