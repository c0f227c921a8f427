package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/wanderlist/internal/destination"
)

// closestByName returns the index of the destination whose name is the
// smallest edit distance from query, ignoring case. A name containing the
// query wins outright. Ties go to the earlier card; -1 means no items or an
// empty query.
func closestByName(items []destination.Destination, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(items) == 0 {
		return -1
	}
	best, bestDist := -1, 0
	for i, d := range items {
		name := strings.ToLower(d.Name)
		dist := levenshtein.ComputeDistance(q, name)
		if strings.Contains(name, q) {
			dist = 0
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
