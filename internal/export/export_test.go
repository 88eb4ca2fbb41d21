package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/insights"
	"interview-insights-go/internal/types"
)

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }

func sampleReport() types.Report {
	role := "SWE"
	qs := []types.Question{
		{ID: "1", Question: sptr("Design a rate limiter"), CompanyName: "Acme", JobRole: &role,
			Tags: []string{"System Design;Scaling"}, Frequency: fptr(6), Time: sptr("2024-02-01"),
			Link: sptr("https://example.com/q1"), Source: types.SourceInterview},
		{ID: "2", Question: sptr("Two Sum"), CompanyName: "Acme",
			Tags: []string{}, Frequency: fptr(3), Source: types.SourceLeetcode},
	}
	return types.Report{
		Company:        "Acme",
		Role:           &role,
		TotalQuestions: len(qs),
		Questions:      qs,
		Analysis:       insights.Analyze(qs, "Acme", role, insights.Options{}),
	}
}

func TestTextSectionsAndOrder(t *testing.T) {
	doc := Text(sampleReport(), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	sections := []string{
		"Interview Questions Report - Acme",
		"Generated on: 2024-06-01",
		"EXECUTIVE SUMMARY",
		"TOP INTERVIEW TOPICS",
		"ROLE DISTRIBUTION",
		"MOST FREQUENTLY ASKED QUESTIONS",
		"QUESTIONS BY YEAR",
		"DATA SOURCE BREAKDOWN",
		"ALL QUESTIONS DETAILED LIST",
		"REPORT END",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(doc, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, doc, "1. System Design - 1 questions (50.0%)")
	assert.Contains(t, doc, "[Frequency: 6] Design a rate limiter")
	assert.Contains(t, doc, "Tags: System Design, Scaling")
	assert.Contains(t, doc, "2024: 1 questions")
}

func TestTextEmptyReport(t *testing.T) {
	rep := types.Report{
		Company:   "Nowhere",
		Questions: []types.Question{},
		Analysis:  insights.Analyze(nil, "Nowhere", "", insights.Options{}),
	}
	doc := Text(rep, time.Now())

	assert.Contains(t, doc, "No questions found for Nowhere")
	assert.NotContains(t, doc, "TOP INTERVIEW TOPICS")
	assert.Contains(t, doc, "REPORT END")
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Summary", "Top Topics", "Roles", "Hot Questions", "Questions"},
		f.GetSheetList())

	company, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company)

	firstQuestion, err := f.GetCellValue("Questions", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Design a rate limiter", firstQuestion)
}
