package geo

import (
	"strings"
	"unicode"
)

const (
	overlapWeight     = 2.0
	settlementBonus   = 0.5
	maxImportanceTerm = 1.0
)

var settlementTypes = map[string]struct{}{
	"city":    {},
	"town":    {},
	"village": {},
}

// bestCandidate picks the highest scoring valid candidate for query. Ties keep
// the earlier candidate so the choice is stable for a given provider response.
func bestCandidate(query string, candidates []Candidate) (Candidate, bool) {
	qTokens := tokenSet(query)

	var (
		best      Candidate
		bestScore float64
		found     bool
	)
	for _, c := range candidates {
		if !IsValidCoordinate(c.Coordinate) {
			continue
		}
		s := score(qTokens, c)
		if !found || s > bestScore {
			best, bestScore, found = c, s, true
		}
	}
	return best, found
}

// score combines token overlap between the query and the candidate's display
// name, a bonus for settlement place types, and the provider's importance.
func score(qTokens map[string]struct{}, c Candidate) float64 {
	var s float64
	if len(qTokens) > 0 {
		dTokens := tokenSet(c.DisplayName)
		shared := 0
		for t := range qTokens {
			if _, ok := dTokens[t]; ok {
				shared++
			}
		}
		s += overlapWeight * float64(shared) / float64(len(qTokens))
	}
	if _, ok := settlementTypes[strings.ToLower(c.PlaceType)]; ok {
		s += settlementBonus
	}
	imp := c.Importance
	if imp < 0 {
		imp = 0
	}
	if imp > maxImportanceTerm {
		imp = maxImportanceTerm
	}
	return s + imp
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
