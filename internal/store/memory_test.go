package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/types"
)

func seedInterviews() []types.InterviewRecord {
	return []types.InterviewRecord{
		{ID: "1", Question: "Q1", CompanyName: "Acme", JobRole: "SWE", Time: "2024-06-01"},
		{ID: "2", Question: "Q2", CompanyName: "Acme", JobRole: "SRE", Time: "2024-01-01"},
		{ID: "3", Question: "Q3", CompanyName: "Globex", JobRole: "SWE"},
		{ID: "4", Question: "Q4", CompanyName: "Acme", JobRole: "SWE", Time: "2023-01-01"},
	}
}

func TestListFilters(t *testing.T) {
	s := NewMemoryInterviewStore(seedInterviews())
	ctx := context.Background()

	recs, err := s.List(ctx, InterviewFilter{Company: "Acme", Role: "SWE"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "4", recs[1].ID)
}

func TestListRecencyLexicalCutoff(t *testing.T) {
	s := NewMemoryInterviewStore(seedInterviews())
	s.now = func() time.Time { return time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) }

	recs, err := s.List(context.Background(), InterviewFilter{RecencyDays: 30})
	require.NoError(t, err)
	// only the 2024-06-01 record is within 30 days; timeless records never match
	require.Len(t, recs, 1)
	assert.Equal(t, "1", recs[0].ID)
}

func TestListSkipLimit(t *testing.T) {
	s := NewMemoryInterviewStore(seedInterviews())

	recs, err := s.List(context.Background(), InterviewFilter{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2", recs[0].ID)
	assert.Equal(t, "3", recs[1].ID)
}

func TestInsertAssignsID(t *testing.T) {
	s := NewMemoryInterviewStore(nil)
	ctx := context.Background()

	id, err := s.Insert(ctx, types.InterviewRecord{Question: "new", CompanyName: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	recs, err := s.List(ctx, InterviewFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].ID)
}

func TestDistinctCompaniesAndCounts(t *testing.T) {
	s := NewMemoryInterviewStore(seedInterviews())
	ctx := context.Background()

	companies, err := s.DistinctCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, companies)

	n, err := s.CountByCompany(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLeetcodeStore(t *testing.T) {
	s := NewMemoryLeetcodeStore([]types.LeetcodeRecord{
		{ID: "a", Title: "Two Sum", CompanyName: "Acme"},
		{ID: "b", Title: "LRU Cache", CompanyName: "Globex"},
		{ID: "c", Title: "Word Break", CompanyName: "Acme"},
	})
	ctx := context.Background()

	recs, err := s.List(ctx, "Acme")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	companies, err := s.DistinctCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, companies)

	n, err := s.CountByCompany(ctx, "Globex")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
