package catalog

// Default returns the built-in streaming box catalog. Each call returns a
// fresh copy so callers can't mutate shared state.
func Default() *Catalog {
	return &Catalog{
		Features: []Feature{
			{Key: "speed", Name: "Speed"},
			{Key: "audio_qual", Name: "Full quality audio (may be PCM decode on box)"},
			{Key: "audio_pass", Name: "Passthrough audio"},
			{Key: "video_codec", Name: "Modern video codec support"},
			{Key: "video_convert", Name: "Conversions of all formats to LLDV/DV"},
			{Key: "box_single", Name: "Single box for streaming and local media"},
			{Key: "robust", Name: "Robustness"},
			{Key: "os_control", Name: "OS/Software Control"},
			{Key: "vendor", Name: "Vendor support"},
			{Key: "cost", Name: "Cost"},
		},
		Devices: []Device{
			{Name: "Shield", Ratings: []int{1, 1, 1, 10, 10, 1, 1, 1, 8, 8}},
			{Name: "Fire Cube 3", Ratings: []int{8, 4, 4, 1, 1, 1, 1, 8, 1, 5}},
			{Name: "Homatics Box R 4K Plus", Ratings: []int{5, 1, 1, 1, 1, 1, 4, 2, 8, 6}},
			{Name: "Apple TV", Ratings: []int{2, 1, 10, 1, 1, 4, 1, 10, 1, 5}},
			{Name: "Onn", Ratings: []int{5, 7, 10, 1, 1, 1, 1, 1, 3, 1}},
			{Name: "Google Streamer", Ratings: []int{5, 7, 10, 1, 1, 1, 1, 1, 3, 2}},
			{Name: "Two box solutions", Ratings: []int{3, 1, 1, 1, 1, 10, 1, 1, 1, 10}},
		},
	}
}
