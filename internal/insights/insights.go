// Package insights is the single shared aggregation engine. The server report
// endpoint, the export renderers and any dashboard view all consume it, so the
// numbers cannot drift between call sites.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"interview-insights-go/internal/tags"
	"interview-insights-go/internal/types"
)

// Questions asked more often than this count as hot.
const hotFrequencyThreshold = 2

// Options parameterizes the caps so the full report (10/10) and the compact
// insight-card variant (3 hot, 5 topics) share one implementation.
type Options struct {
	HotLimit      int
	TopTopicLimit int
}

func (o Options) withDefaults() Options {
	if o.HotLimit <= 0 {
		o.HotLimit = 10
	}
	if o.TopTopicLimit <= 0 {
		o.TopTopicLimit = 10
	}
	return o
}

// Analyze computes the full analysis for an already-scoped question list.
// Empty input is not an error: it yields a zero-value analysis with a
// descriptive summary and non-nil empty sub-collections.
func Analyze(qs []types.Question, company, role string, opts Options) types.Analysis {
	opts = opts.withDefaults()

	if len(qs) == 0 {
		summary := fmt.Sprintf("No questions found for %s", company)
		if role != "" {
			summary = fmt.Sprintf("No questions found for %s in %s role", company, role)
		}
		return types.Analysis{
			Summary:            summary,
			TopTopics:          []types.TopicStat{},
			RoleDistribution:   []types.RoleStat{},
			FrequencyAnalysis:  types.FrequencyAnalysis{HotQuestions: []types.Question{}},
			TimeAnalysis:       []types.YearCount{},
			SourceDistribution: map[string]int{},
		}
	}

	summary := fmt.Sprintf("Analysis for %s: %d total questions", company, len(qs))
	if role != "" {
		summary = fmt.Sprintf("Analysis for %s - %s role: %d total questions", company, role, len(qs))
	}

	return types.Analysis{
		Summary:            summary,
		TopTopics:          TopTopics(qs, opts.TopTopicLimit),
		RoleDistribution:   RoleDistribution(qs),
		FrequencyAnalysis:  FrequencyStats(qs, opts.HotLimit),
		TimeAnalysis:       YearDistribution(qs),
		SourceDistribution: SourceDistribution(qs),
	}
}

// TopTopics counts tag occurrences across all questions (a question with k
// tags contributes k occurrences), sorts descending by count with first-seen
// order as the tie-break, and caps the list. Percentages are against the
// total occurrence count, one decimal.
func TopTopics(qs []types.Question, limit int) []types.TopicStat {
	counts := map[string]int{}
	order := []string{}
	total := 0
	for _, q := range qs {
		for _, tag := range tags.Normalize(q.Tags) {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
			total++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := []types.TopicStat{}
	for _, tag := range order {
		if len(out) == limit {
			break
		}
		out = append(out, types.TopicStat{
			Tag:        tag,
			Count:      counts[tag],
			Percentage: round1(float64(counts[tag]) / float64(total) * 100),
		})
	}
	return out
}

// RoleDistribution counts roles among questions that carry one; percentages
// are against the total question count, role-less questions included in the
// denominator.
func RoleDistribution(qs []types.Question) []types.RoleStat {
	counts := map[string]int{}
	order := []string{}
	for _, q := range qs {
		if q.JobRole == nil || *q.JobRole == "" {
			continue
		}
		if _, seen := counts[*q.JobRole]; !seen {
			order = append(order, *q.JobRole)
		}
		counts[*q.JobRole]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := []types.RoleStat{}
	for _, role := range order {
		out = append(out, types.RoleStat{
			Role:       role,
			Count:      counts[role],
			Percentage: round1(float64(counts[role]) / float64(len(qs)) * 100),
		})
	}
	return out
}

// FrequencyStats averages over questions whose frequency is present. A
// present 0 counts in the denominator; an absent frequency is excluded
// entirely, never treated as 0. Hot questions exceed the threshold, sorted
// descending, capped at hotLimit.
func FrequencyStats(qs []types.Question, hotLimit int) types.FrequencyAnalysis {
	present := []float64{}
	hot := []types.Question{}
	for _, q := range qs {
		if q.Frequency == nil {
			continue
		}
		present = append(present, *q.Frequency)
		if *q.Frequency > hotFrequencyThreshold {
			hot = append(hot, q)
		}
	}

	fa := types.FrequencyAnalysis{
		TotalWithFrequency: len(present),
		HotQuestions:       []types.Question{},
	}
	if len(present) > 0 {
		if mean, err := stats.Mean(present); err == nil {
			fa.AverageFrequency = round1(mean)
		}
	}

	sort.SliceStable(hot, func(i, j int) bool {
		return *hot[i].Frequency > *hot[j].Frequency
	})
	if len(hot) > hotLimit {
		hot = hot[:hotLimit]
	}
	fa.HotQuestions = append(fa.HotQuestions, hot...)
	return fa
}

// YearDistribution buckets questions by the year of their time field,
// descending by year. Unparseable dates are skipped per record.
func YearDistribution(qs []types.Question) []types.YearCount {
	counts := map[int]int{}
	for _, q := range qs {
		if q.Time == nil {
			continue
		}
		d, ok := parseDate(*q.Time)
		if !ok {
			continue
		}
		counts[d.Year()]++
	}

	out := []types.YearCount{}
	for year, count := range counts {
		out = append(out, types.YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

// MonthlyTrend buckets questions by year-month ascending, keeping the most
// recent 12 buckets. This is the trend-chart view; YearDistribution is the
// report view. They are deliberately distinct operations.
func MonthlyTrend(qs []types.Question) []types.MonthCount {
	counts := map[string]int{}
	for _, q := range qs {
		if q.Time == nil {
			continue
		}
		d, ok := parseDate(*q.Time)
		if !ok {
			continue
		}
		counts[fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > 12 {
		months = months[len(months)-12:]
	}

	out := []types.MonthCount{}
	for _, m := range months {
		out = append(out, types.MonthCount{Month: m, Count: counts[m]})
	}
	return out
}

// SourceDistribution counts questions per provenance tag.
func SourceDistribution(qs []types.Question) map[string]int {
	out := map[string]int{}
	for _, q := range qs {
		source := q.Source
		if source == "" {
			source = "unknown"
		}
		out[source]++
	}
	return out
}

// FilterByRole keeps questions whose role matches the filter or whose role is
// absent/blank. Role-less records (the whole leetcode collection) have no
// role to exclude on; a naive exact match would silently drop them all.
func FilterByRole(qs []types.Question, role string) []types.Question {
	if role == "" {
		return qs
	}
	out := make([]types.Question, 0, len(qs))
	for _, q := range qs {
		if q.JobRole == nil || *q.JobRole == "" || *q.JobRole == role {
			out = append(out, q)
		}
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
