// Package store is the document-store collaborator: two schema-less
// collections of raw question records. The core reads denormalized listings
// from it and owns no persistence concerns beyond these interfaces.
package store

import (
	"context"

	"interview-insights-go/internal/types"
)

// InterviewFilter narrows an interview_questions listing. RecencyDays keeps
// records whose ISO-date time is on or after now minus that many days,
// compared lexically; records without a time never match a recency filter.
type InterviewFilter struct {
	Company     string
	Role        string
	RecencyDays int
	Limit       int
	Skip        int
}

type InterviewStore interface {
	List(ctx context.Context, f InterviewFilter) ([]types.InterviewRecord, error)
	Insert(ctx context.Context, rec types.InterviewRecord) (string, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	CountByCompany(ctx context.Context, name string) (int, error)
}

type LeetcodeStore interface {
	List(ctx context.Context, company string) ([]types.LeetcodeRecord, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	CountByCompany(ctx context.Context, name string) (int, error)
}
