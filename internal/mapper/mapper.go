// Package mapper converts raw source records into the unified Question shape.
// Downstream code never sees the raw collection shapes again.
package mapper

import "interview-insights-go/internal/types"

// FromInterview maps an interview_questions document. Frequency is carried
// over on a nil check rather than a truthiness check, so a recorded 0 stays
// present instead of collapsing to absent.
func FromInterview(r types.InterviewRecord) types.Question {
	return types.Question{
		ID:          r.ID,
		Question:    optional(r.Question),
		Link:        optional(r.Link),
		Time:        optional(r.Time),
		Frequency:   r.Frequency,
		Tags:        append([]string{}, r.Topics...),
		CompanyName: r.CompanyName,
		JobRole:     optional(r.JobRole),
		Source:      types.SourceInterview,
	}
}

// FromLeetcode maps a leetcode_questions document. The collection carries no
// role, no time and no tags.
func FromLeetcode(r types.LeetcodeRecord) types.Question {
	return types.Question{
		ID:          r.ID,
		Question:    optional(r.Title),
		Link:        optional(r.QuestionLink),
		Time:        nil,
		Frequency:   r.Frequency,
		Tags:        []string{},
		CompanyName: r.CompanyName,
		JobRole:     nil,
		Source:      types.SourceLeetcode,
	}
}

// Interviews maps a whole listing.
func Interviews(recs []types.InterviewRecord) []types.Question {
	out := make([]types.Question, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromInterview(r))
	}
	return out
}

// Leetcodes maps a whole listing.
func Leetcodes(recs []types.LeetcodeRecord) []types.Question {
	out := make([]types.Question, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromLeetcode(r))
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
