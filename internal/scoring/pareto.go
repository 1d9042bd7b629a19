package scoring

import "github.com/MikeSquared-Agency/boxrank/internal/catalog"

// Frontier returns the devices no other device dominates, in input order.
// A device is dominated if another is rated <= on every feature and
// strictly lower on at least one (lower ratings are better).
// O(n^2) dominance check, fine for catalog sizes.
func Frontier(devices []catalog.Device) []catalog.Device {
	if len(devices) <= 1 {
		return devices
	}

	var frontier []catalog.Device
	for i := range devices {
		dominated := false
		for j := range devices {
			if i == j {
				continue
			}
			if dominates(devices[j], devices[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, devices[i])
		}
	}
	return frontier
}

// dominates returns true if a dominates b.
func dominates(a, b catalog.Device) bool {
	if len(a.Ratings) != len(b.Ratings) {
		return false
	}
	better := false
	for i := range a.Ratings {
		if a.Ratings[i] > b.Ratings[i] {
			return false
		}
		if a.Ratings[i] < b.Ratings[i] {
			better = true
		}
	}
	return better
}
