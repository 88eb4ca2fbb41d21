package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// MemoryInterviewStore holds the interview_questions collection in memory.
type MemoryInterviewStore struct {
	mu      sync.RWMutex
	records []types.InterviewRecord
	now     func() time.Time
}

func NewMemoryInterviewStore(seed []types.InterviewRecord) *MemoryInterviewStore {
	return &MemoryInterviewStore{
		records: append([]types.InterviewRecord{}, seed...),
		now:     time.Now,
	}
}

func (s *MemoryInterviewStore) List(ctx context.Context, f InterviewFilter) ([]types.InterviewRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := ""
	if f.RecencyDays > 0 {
		cutoff = s.now().AddDate(0, 0, -f.RecencyDays).Format("2006-01-02")
	}

	out := []types.InterviewRecord{}
	skipped := 0
	for _, rec := range s.records {
		if f.Company != "" && rec.CompanyName != f.Company {
			continue
		}
		if f.Role != "" && rec.JobRole != f.Role {
			continue
		}
		if cutoff != "" && (rec.Time == "" || rec.Time < cutoff) {
			continue
		}
		if skipped < f.Skip {
			skipped++
			continue
		}
		out = append(out, rec)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryInterviewStore) Insert(ctx context.Context, rec types.InterviewRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	s.records = append(s.records, rec)
	return rec.ID, nil
}

func (s *MemoryInterviewStore) DistinctCompanies(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	out := []string{}
	for _, rec := range s.records {
		if rec.CompanyName == "" || seen[rec.CompanyName] {
			continue
		}
		seen[rec.CompanyName] = true
		out = append(out, rec.CompanyName)
	}
	return out, nil
}

func (s *MemoryInterviewStore) CountByCompany(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if rec.CompanyName == name {
			count++
		}
	}
	return count, nil
}

// MemoryLeetcodeStore holds the leetcode_questions collection in memory.
type MemoryLeetcodeStore struct {
	mu      sync.RWMutex
	records []types.LeetcodeRecord
}

func NewMemoryLeetcodeStore(seed []types.LeetcodeRecord) *MemoryLeetcodeStore {
	return &MemoryLeetcodeStore{records: append([]types.LeetcodeRecord{}, seed...)}
}

func (s *MemoryLeetcodeStore) List(ctx context.Context, company string) ([]types.LeetcodeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.LeetcodeRecord{}
	for _, rec := range s.records {
		if company != "" && rec.CompanyName != company {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryLeetcodeStore) DistinctCompanies(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	out := []string{}
	for _, rec := range s.records {
		if rec.CompanyName == "" || seen[rec.CompanyName] {
			continue
		}
		seen[rec.CompanyName] = true
		out = append(out, rec.CompanyName)
	}
	return out, nil
}

func (s *MemoryLeetcodeStore) CountByCompany(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if rec.CompanyName == name {
			count++
		}
	}
	return count, nil
}
