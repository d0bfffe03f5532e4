package dataset

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// Filter keeps records where any of keys contains query, ignoring case.
// Keys are dotted paths. A blank query returns records unchanged.
func Filter(records []table.Record, query string, keys ...string) []table.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	out := make([]table.Record, 0, len(records))
	for _, r := range records {
		for _, k := range keys {
			v, _ := table.Resolve(r, k)
			if strings.Contains(strings.ToLower(table.FormatValue(v)), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Where keeps records whose key formats exactly as value.
func Where(records []table.Record, key, value string) []table.Record {
	out := make([]table.Record, 0, len(records))
	for _, r := range records {
		v, _ := table.Resolve(r, key)
		if table.FormatValue(v) == value {
			out = append(out, r)
		}
	}
	return out
}

// Values collects the string form of key across records, skipping blanks.
func Values(records []table.Record, key string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		v, _ := table.Resolve(r, key)
		if s := table.FormatValue(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Suggest returns the candidate closest to query by edit distance, for a
// "did you mean" hint. Nothing is suggested when the best match is further
// than a third of the query length (minimum 2) or when query is blank.
func Suggest(query string, candidates []string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := max(len([]rune(q))/3, 2)
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
