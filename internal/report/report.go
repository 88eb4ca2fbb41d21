// Package report assembles per-company reports and cross-source company
// rankings from the two question collections.
package report

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"interview-insights-go/internal/insights"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/mapper"
	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

type Assembler struct {
	interviews store.InterviewStore
	leetcode   store.LeetcodeStore
	log        *logger.Logger
}

func NewAssembler(interviews store.InterviewStore, leetcode store.LeetcodeStore, log *logger.Logger) *Assembler {
	return &Assembler{
		interviews: interviews,
		leetcode:   leetcode,
		log:        log.WithComponent("report"),
	}
}

// CompanyReport fetches both collections concurrently, unifies them, applies
// the inclusive role filter and runs the analysis. A failure on either fetch
// fails the whole report; per-company reports do not degrade to a partial
// view (unlike CompanyRankings).
func (a *Assembler) CompanyReport(ctx context.Context, company, role string, opts insights.Options) (types.Report, error) {
	var irecs []types.InterviewRecord
	var lrecs []types.LeetcodeRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// company scope only; the role filter is applied after unification so
		// role-less records stay in (see insights.FilterByRole)
		recs, err := a.interviews.List(gctx, store.InterviewFilter{Company: company})
		if err != nil {
			return fmt.Errorf("interview questions: %w", err)
		}
		irecs = recs
		return nil
	})
	g.Go(func() error {
		recs, err := a.leetcode.List(gctx, company)
		if err != nil {
			return fmt.Errorf("leetcode questions: %w", err)
		}
		lrecs = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.Report{}, err
	}

	questions := append(mapper.Interviews(irecs), mapper.Leetcodes(lrecs)...)
	filtered := insights.FilterByRole(questions, role)
	analysis := insights.Analyze(filtered, company, role, opts)

	var rolePtr *string
	if role != "" {
		rolePtr = &role
	}
	return types.Report{
		Company:        company,
		Role:           rolePtr,
		TotalQuestions: len(filtered),
		Questions:      filtered,
		Analysis:       analysis,
	}, nil
}

// AllQuestions fetches and unifies the full feed from both collections.
// Like CompanyReport, a failure on either fetch fails the whole operation.
func (a *Assembler) AllQuestions(ctx context.Context) ([]types.Question, error) {
	var irecs []types.InterviewRecord
	var lrecs []types.LeetcodeRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := a.interviews.List(gctx, store.InterviewFilter{})
		if err != nil {
			return fmt.Errorf("interview questions: %w", err)
		}
		irecs = recs
		return nil
	})
	g.Go(func() error {
		recs, err := a.leetcode.List(gctx, "")
		if err != nil {
			return fmt.Errorf("leetcode questions: %w", err)
		}
		lrecs = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(mapper.Interviews(irecs), mapper.Leetcodes(lrecs)...), nil
}

// CompanyRankings lists every company across both collections with
// per-source counts, descending by total. A failed leetcode listing degrades
// to an empty secondary source instead of failing the ranking.
func (a *Assembler) CompanyRankings(ctx context.Context) ([]types.CompanyCount, error) {
	inames, err := a.interviews.DistinctCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("interview companies: %w", err)
	}

	lnames, err := a.leetcode.DistinctCompanies(ctx)
	if err != nil {
		a.log.WithError(err).Warn("leetcode company listing failed, continuing without secondary source")
		lnames = nil
	}

	seen := map[string]bool{}
	names := []string{}
	for _, n := range append(append([]string{}, inames...), lnames...) {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}

	out := make([]types.CompanyCount, 0, len(names))
	for _, name := range names {
		ic, err := a.interviews.CountByCompany(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("interview count for %s: %w", name, err)
		}
		lc, err := a.leetcode.CountByCompany(ctx, name)
		if err != nil {
			a.log.WithError(err).WithField("company", name).Warn("leetcode count failed, treating as zero")
			lc = 0
		}
		out = append(out, types.CompanyCount{
			Name:               name,
			InterviewQuestions: ic,
			LeetcodeQuestions:  lc,
			TotalQuestions:     ic + lc,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalQuestions > out[j].TotalQuestions
	})
	return out, nil
}
