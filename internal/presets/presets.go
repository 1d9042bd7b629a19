package presets

// Preset is a named importance vector, 1 = most important, 10 = least.
type Preset struct {
	Slug    string `json:"slug" yaml:"slug"`
	Name    string `json:"name" yaml:"name"`
	Weights []int  `json:"weights" yaml:"weights"`
}

// All returns the standard preset suite for the default catalog.
func All() []Preset {
	return []Preset{
		{
			Slug:    "balanced",
			Name:    "All features equally important (5)",
			Weights: []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
		},
		{
			Slug:    "speed-first",
			Name:    "Speed most important, cost least important",
			Weights: []int{1, 5, 5, 5, 5, 5, 5, 5, 5, 10},
		},
		{
			Slug:    "audio-critical",
			Name:    "Audio quality critical (passthrough=1, full audio=1)",
			Weights: []int{5, 1, 1, 5, 5, 5, 5, 5, 5, 5},
		},
		{
			Slug:    "video-critical",
			Name:    "Video features critical (codec support=1, LLDV conversion=1)",
			Weights: []int{5, 5, 5, 1, 1, 5, 5, 5, 5, 5},
		},
		{
			Slug:    "all-critical",
			Name:    "All features most important",
			Weights: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			Slug:    "cost-only",
			Name:    "Only cost matters (cost=1, everything else=10)",
			Weights: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 1},
		},
	}
}

// Find returns the preset with the given slug.
func Find(slug string) (Preset, bool) {
	for _, p := range All() {
		if p.Slug == slug {
			return p, true
		}
	}
	return Preset{}, false
}
