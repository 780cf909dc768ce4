// Package classify groups record keys into heuristic field categories. The
// rules are deliberately loose string matching; they point a human at likely
// candidates, nothing more.
package classify

import "strings"

// Categories lists the category names in report order.
var Categories = []string{"date", "score", "course", "tournament"}

type rule struct {
	substrings []string
	exact      []string
}

var rules = map[string]rule{
	"date":       {substrings: []string{"date", "time"}},
	"score":      {substrings: []string{"score", "strokes"}, exact: []string{"r1", "r2", "r3", "r4"}},
	"course":     {substrings: []string{"course", "club", "venue"}},
	"tournament": {substrings: []string{"tournament", "event"}},
}

func (r rule) matches(lowerKey string) bool {
	for _, s := range r.substrings {
		if strings.Contains(lowerKey, s) {
			return true
		}
	}
	for _, e := range r.exact {
		if lowerKey == e {
			return true
		}
	}
	return false
}

// Groups maps each category to the keys matching it, preserving the order of
// the input slice. Matching is case-insensitive; a key may land in several
// categories or in none. Every category is present in the result, possibly
// with no keys.
func Groups(keys []string) map[string][]string {
	out := make(map[string][]string, len(Categories))
	for _, c := range Categories {
		out[c] = []string{}
	}

	for _, k := range keys {
		lk := strings.ToLower(k)
		for _, c := range Categories {
			if rules[c].matches(lk) {
				out[c] = append(out[c], k)
			}
		}
	}
	return out
}

// LooksLikeDate reports whether a string resembles an ISO-style date, either
// a full timestamp ("2023-06-15T14:00:00") or a date prefix ("2023-06-15").
func LooksLikeDate(s string) bool {
	if strings.Contains(s, "-") && strings.Contains(s, "T") {
		return true
	}
	return len(s) >= 10 && s[4] == '-' && s[7] == '-'
}
