// Package export renders a computed Report into downloadable documents. It
// only formats what the insights engine already produced.
package export

import (
	"fmt"
	"strings"
	"time"

	"interview-insights-go/internal/tags"
	"interview-insights-go/internal/types"
)

// Text renders the plain-text report document: title, executive summary,
// top topics, role distribution, hot questions, questions by year, source
// breakdown, then the full question list.
func Text(rep types.Report, now time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("Interview Questions Report - %s", rep.Company)
	filter := "All roles"
	if rep.Role != nil {
		filter = fmt.Sprintf("%s role", *rep.Role)
	}

	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Generated on: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Filter: %s\n", filter)
	fmt.Fprintf(&b, "Total Questions: %d\n", rep.TotalQuestions)

	a := rep.Analysis

	section(&b, "EXECUTIVE SUMMARY")
	fmt.Fprintf(&b, "- Total Questions Analyzed: %d\n", rep.TotalQuestions)
	fmt.Fprintf(&b, "- Questions with Frequency Data: %d\n", a.FrequencyAnalysis.TotalWithFrequency)
	fmt.Fprintf(&b, "- Average Question Frequency: %.1f\n", a.FrequencyAnalysis.AverageFrequency)
	fmt.Fprintf(&b, "- Hot Questions Identified: %d\n", len(a.FrequencyAnalysis.HotQuestions))
	fmt.Fprintf(&b, "- Unique Job Roles: %d\n", len(a.RoleDistribution))
	fmt.Fprintf(&b, "- Data Sources: %s\n", strings.Join(sourceNames(a.SourceDistribution), ", "))

	if len(a.TopTopics) > 0 {
		section(&b, "TOP INTERVIEW TOPICS")
		for i, topic := range a.TopTopics {
			fmt.Fprintf(&b, "%d. %s - %d questions (%.1f%%)\n", i+1, topic.Tag, topic.Count, topic.Percentage)
		}
	}

	if len(a.RoleDistribution) > 0 {
		section(&b, "ROLE DISTRIBUTION")
		for i, role := range a.RoleDistribution {
			fmt.Fprintf(&b, "%d. %s - %d questions (%.1f%%)\n", i+1, role.Role, role.Count, role.Percentage)
		}
	}

	if len(a.FrequencyAnalysis.HotQuestions) > 0 {
		section(&b, "MOST FREQUENTLY ASKED QUESTIONS")
		for i, q := range a.FrequencyAnalysis.HotQuestions {
			fmt.Fprintf(&b, "%d. [Frequency: %s] %s\n", i+1, formatFrequency(q.Frequency), text(q.Question))
			if q.JobRole != nil {
				fmt.Fprintf(&b, "   Role: %s\n", *q.JobRole)
			}
			if q.Link != nil {
				fmt.Fprintf(&b, "   Link: %s\n", *q.Link)
			}
			if normalized := tags.Normalize(q.Tags); len(normalized) > 0 {
				fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(normalized, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(a.TimeAnalysis) > 0 {
		section(&b, "QUESTIONS BY YEAR")
		for _, yc := range a.TimeAnalysis {
			fmt.Fprintf(&b, "%d: %d questions\n", yc.Year, yc.Count)
		}
	}

	if len(a.SourceDistribution) > 0 {
		section(&b, "DATA SOURCE BREAKDOWN")
		for _, source := range sourceNames(a.SourceDistribution) {
			fmt.Fprintf(&b, "%s: %d questions\n", source, a.SourceDistribution[source])
		}
	}

	section(&b, "ALL QUESTIONS DETAILED LIST")
	for i, q := range rep.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, text(q.Question))
		fmt.Fprintf(&b, "   Company: %s\n", q.CompanyName)
		if q.JobRole != nil {
			fmt.Fprintf(&b, "   Role: %s\n", *q.JobRole)
		}
		if q.Frequency != nil {
			fmt.Fprintf(&b, "   Frequency: %s\n", formatFrequency(q.Frequency))
		}
		if q.Time != nil {
			fmt.Fprintf(&b, "   Date: %s\n", *q.Time)
		}
		if q.Link != nil {
			fmt.Fprintf(&b, "   Link: %s\n", *q.Link)
		}
		if normalized := tags.Normalize(q.Tags); len(normalized) > 0 {
			fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(normalized, ", "))
		}
		fmt.Fprintf(&b, "   Source: %s\n\n", q.Source)
	}

	section(&b, "REPORT END")
	return b.String()
}

func section(b *strings.Builder, name string) {
	fmt.Fprintf(b, "\n%s\n%s\n\n", name, strings.Repeat("=", len(name)))
}

func sourceNames(dist map[string]int) []string {
	names := make([]string, 0, len(dist))
	for _, s := range []string{types.SourceInterview, types.SourceLeetcode} {
		if _, ok := dist[s]; ok {
			names = append(names, s)
		}
	}
	for s := range dist {
		if s != types.SourceInterview && s != types.SourceLeetcode {
			names = append(names, s)
		}
	}
	return names
}

func text(s *string) string {
	if s == nil {
		return "No question text"
	}
	return *s
}

func formatFrequency(f *float64) string {
	if f == nil {
		return "-"
	}
	if *f == float64(int64(*f)) {
		return fmt.Sprintf("%d", int64(*f))
	}
	return fmt.Sprintf("%.1f", *f)
}
