package hermes

import "time"

type RankedDeviceEvent struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Normalized float64 `json:"normalized_score"`
	Stars      int     `json:"stars"`
}

type RankingComputedEvent struct {
	RunID     string              `json:"run_id"`
	Preset    string              `json:"preset,omitempty"`
	Weights   []int               `json:"weights"`
	Policy    string              `json:"policy"`
	Winner    string              `json:"winner"`
	Ranking   []RankedDeviceEvent `json:"ranking"`
	Timestamp time.Time           `json:"timestamp"`
}
