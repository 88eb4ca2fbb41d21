// Package query applies the browse-view predicates over unified question
// lists: free-text search, exact filters, tag multi-select, sorts and
// pagination.
package query

import (
	"sort"
	"strings"

	"interview-insights-go/internal/tags"
	"interview-insights-go/internal/types"
)

// Filters are ANDed together; zero values mean "no constraint".
type Filters struct {
	Search  string
	Company string
	Role    string
	Tags    []string
}

// Apply returns the questions matching every filter. Search is a
// case-insensitive substring match over question text, company and role.
// The tag filter requires the question's normalized tag set to contain every
// selected tag.
func Apply(qs []types.Question, f Filters) []types.Question {
	out := make([]types.Question, 0, len(qs))
	for _, q := range qs {
		if !matchesSearch(q, f.Search) {
			continue
		}
		if f.Company != "" && q.CompanyName != f.Company {
			continue
		}
		if f.Role != "" && (q.JobRole == nil || *q.JobRole != f.Role) {
			continue
		}
		if !matchesTags(q, f.Tags) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SortByFrequencyDesc orders by frequency descending; questions without a
// frequency always sort after those with one. The input is not mutated.
func SortByFrequencyDesc(qs []types.Question) []types.Question {
	out := append([]types.Question{}, qs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Frequency, out[j].Frequency
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
	return out
}

// SortByRecency orders by the time field, dir "latest" or "oldest".
// Questions without a time always sort last in either direction. Times are
// ISO-date strings, so lexical comparison orders them. The input is not
// mutated.
func SortByRecency(qs []types.Question, dir string) []types.Question {
	out := append([]types.Question{}, qs...)
	newestFirst := dir != "oldest"
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Time, out[j].Time
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if newestFirst {
			return *a > *b
		}
		return *a < *b
	})
	return out
}

// Paginate slices out 1-based page number page. An out-of-range page clamps
// into the valid range; total pages is never below 1.
func Paginate(qs []types.Question, page, pageSize int) ([]types.Question, int) {
	if pageSize <= 0 {
		pageSize = 20
	}
	totalPages := (len(qs) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(qs) {
		return []types.Question{}, totalPages
	}
	end := start + pageSize
	if end > len(qs) {
		end = len(qs)
	}
	return qs[start:end], totalPages
}

func matchesSearch(q types.Question, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if q.Question != nil && strings.Contains(strings.ToLower(*q.Question), term) {
		return true
	}
	if strings.Contains(strings.ToLower(q.CompanyName), term) {
		return true
	}
	if q.JobRole != nil && strings.Contains(strings.ToLower(*q.JobRole), term) {
		return true
	}
	return false
}

func matchesTags(q types.Question, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	normalized := tags.Normalize(q.Tags)
	if len(normalized) == 0 {
		return false
	}
	have := map[string]bool{}
	for _, t := range normalized {
		have[t] = true
	}
	for _, want := range selected {
		if !have[want] {
			return false
		}
	}
	return true
}
