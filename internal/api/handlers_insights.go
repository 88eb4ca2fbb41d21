package api

import (
	"net/http"
	"strings"

	"interview-insights-go/internal/insights"
	"interview-insights-go/internal/query"
	"interview-insights-go/internal/types"
)

const defaultPageSize = 20

// handleGlobalInsights serves the cross-company dashboard: browse filters
// over the merged feed, a paginated question page, and the trend/topic stats
// computed over everything that matched.
func (s *Server) handleGlobalInsights(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	questions, err := s.reports.AllQuestions(r.Context())
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("global insights failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	params := r.URL.Query()
	filters := query.Filters{
		Search:  params.Get("search"),
		Company: params.Get("company"),
		Role:    params.Get("role"),
	}
	if raw := params.Get("tags"); raw != "" {
		filters.Tags = strings.Split(raw, ",")
	}
	filtered := query.Apply(questions, filters)

	switch params.Get("sort") {
	case "frequency":
		filtered = query.SortByFrequencyDesc(filtered)
	case "latest", "oldest":
		filtered = query.SortByRecency(filtered, params.Get("sort"))
	}

	page := intParam(r, "page")
	if page == 0 {
		page = 1
	}
	pageSize := intParam(r, "pageSize")
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	pageQuestions, totalPages := query.Paginate(filtered, page, pageSize)

	out := types.GlobalInsights{
		TotalQuestions: len(filtered),
		TotalCompanies: len(distinctCompanies(filtered)),
		TotalRoles:     len(distinctRoles(filtered)),
		AvgFrequency:   insights.FrequencyStats(filtered, 1).AverageFrequency,
		TopTopics:      insights.TopTopics(filtered, 10),
		MonthlyTrend:   insights.MonthlyTrend(filtered),
		Questions:      pageQuestions,
		Page:           page,
		TotalPages:     totalPages,
	}
	s.writeJSON(w, http.StatusOK, out)
}

func distinctCompanies(qs []types.Question) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, q := range qs {
		if q.CompanyName == "" || seen[q.CompanyName] {
			continue
		}
		seen[q.CompanyName] = true
		out = append(out, q.CompanyName)
	}
	return out
}

func distinctRoles(qs []types.Question) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, q := range qs {
		if q.JobRole == nil || *q.JobRole == "" || seen[*q.JobRole] {
			continue
		}
		seen[*q.JobRole] = true
		out = append(out, *q.JobRole)
	}
	return out
}
