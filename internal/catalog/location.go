package catalog

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var spaceRun = regexp.MustCompile(`\s+`)

// maxLocationDistance bounds how loose a typo-tolerant match may be.
const maxLocationDistance = 3

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(spaceRun.ReplaceAllString(s, " ")))
}

// NearestLocation suggests the pickup location a free-text origin most likely
// refers to. Contains-matches win over edit distance.
func NearestLocation(query string, locations []string) (string, bool) {
	q := normalizeLocation(query)
	if q == "" {
		return "", false
	}
	for _, loc := range locations {
		if strings.Contains(normalizeLocation(loc), q) {
			return loc, true
		}
	}
	best, bestDist := "", maxLocationDistance+1
	for _, loc := range locations {
		d := levenshtein.ComputeDistance(q, normalizeLocation(loc))
		if d < bestDist {
			best, bestDist = loc, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
