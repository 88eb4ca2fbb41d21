package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

func fptr(f float64) *float64 { return &f }

func newTestServer() *Server {
	interviews := store.NewMemoryInterviewStore([]types.InterviewRecord{
		{ID: "1", Question: "Design a cache", CompanyName: "Acme", JobRole: "SWE",
			Topics: []string{"System Design;Caching"}, Frequency: fptr(5), Time: "2024-02-01"},
		{ID: "2", Question: "Explain SLIs", CompanyName: "Acme", JobRole: "SRE"},
		{ID: "3", Question: "Reverse a list", CompanyName: "Globex", JobRole: "SWE"},
	})
	leetcode := store.NewMemoryLeetcodeStore([]types.LeetcodeRecord{
		{ID: "a", Title: "Two Sum", CompanyName: "Acme", Frequency: fptr(7)},
		{ID: "b", Title: "LRU Cache", CompanyName: "Initech"},
	})
	return NewServer(interviews, leetcode, logger.New())
}

func doRequest(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListQuestionsFiltered(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/questions?company=Acme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
	// raw records, not the unified shape
	assert.NotContains(t, out[0], "source")
	assert.Contains(t, out[0], "topics")
}

func TestCreateQuestionValidation(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/questions", `{"question":"","company_name":"Acme"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Errors, 2)
	fields := []string{out.Errors[0].Field, out.Errors[1].Field}
	assert.ElementsMatch(t, []string{"question", "job_role"}, fields)
}

func TestCreateQuestionKeepsExtraFields(t *testing.T) {
	srv := newTestServer()

	body := `{"question":"New Q","company_name":"Acme","job_role":"SWE","difficulty":"hard"}`
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created["insertedId"])

	// the arbitrary extra field is stored as-is and comes back on listing
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions?company=Acme", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	found := false
	for _, doc := range listed {
		if doc["question"] == "New Q" {
			found = true
			assert.Equal(t, "hard", doc["difficulty"])
		}
	}
	assert.True(t, found)
}

func TestGlobalInsightsEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/insights?sort=frequency", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out types.GlobalInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, 5, out.TotalQuestions)
	assert.Equal(t, 3, out.TotalCompanies)
	assert.Equal(t, 2, out.TotalRoles)
	require.Len(t, out.MonthlyTrend, 1)
	assert.Equal(t, "2024-02", out.MonthlyTrend[0].Month)

	// frequency sort: the leetcode 7 leads, absent frequencies last
	require.NotEmpty(t, out.Questions)
	require.NotNil(t, out.Questions[0].Frequency)
	assert.Equal(t, 7.0, *out.Questions[0].Frequency)
	assert.Nil(t, out.Questions[len(out.Questions)-1].Frequency)
}

func TestGlobalInsightsTagFilter(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/insights?tags=System+Design,Caching", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out types.GlobalInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.TotalQuestions)
	require.Len(t, out.Questions, 1)
	assert.Equal(t, "1", out.Questions[0].ID)
}

func TestCompanies(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"Acme", "Globex"}, out)
}

func TestLeetcodeQuestionsByCompany(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/leetcode-questions?company=Acme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Two Sum", out[0]["title"])
	assert.Contains(t, out[0], "question link")
}

func TestCompanyReportEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/reports/company/Acme?role=SWE", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rep types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))

	assert.Equal(t, "Acme", rep.Company)
	require.NotNil(t, rep.Role)
	assert.Equal(t, "SWE", *rep.Role)
	// the SWE question plus the role-less leetcode question
	assert.Equal(t, 2, rep.TotalQuestions)
	assert.Equal(t, 2, rep.Analysis.SourceDistribution[types.SourceInterview]+
		rep.Analysis.SourceDistribution[types.SourceLeetcode])
	assert.Len(t, rep.Analysis.FrequencyAnalysis.HotQuestions, 2)
}

func TestCompanyRankingsEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/reports/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ranks []types.CompanyCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranks))
	require.Len(t, ranks, 3)
	assert.Equal(t, "Acme", ranks[0].Name)
	assert.Equal(t, 3, ranks[0].TotalQuestions)
}

func TestReportExportText(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/reports/company/Acme/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Interview Questions Report - Acme")
	assert.Contains(t, rec.Body.String(), "REPORT END")
}

func TestReportExportUnsupportedFormat(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/reports/company/Acme/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
