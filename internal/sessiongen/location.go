package sessiongen

import "strings"

// homeLocations canonical training grounds accepted by session creation.
var homeLocations = []string{"Brescia", "Ospitaletto", "Gussago"}

// HomeLocations returns the canonical home grounds.
func HomeLocations() []string {
	out := make([]string, len(homeLocations))
	copy(out, homeLocations)
	return out
}

// NormalizeLocation maps a free-text slot location onto a canonical home
// ground ("campo gussago" -> "Gussago"). Anything else is returned
// unchanged and is treated downstream as an away/other location.
func NormalizeLocation(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return raw
	}
	for _, home := range homeLocations {
		if strings.Contains(key, strings.ToLower(home)) {
			return home
		}
	}
	return raw
}

// IsHomeLocation reports whether loc is one of the canonical grounds.
func IsHomeLocation(loc string) bool {
	for _, home := range homeLocations {
		if loc == home {
			return true
		}
	}
	return false
}
