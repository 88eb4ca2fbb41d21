package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"interview-insights-go/internal/export"
	"interview-insights-go/internal/insights"
	"interview-insights-go/internal/types"
)

func reportOptions(r *http.Request) insights.Options {
	if r.URL.Query().Get("compact") == "1" {
		// the insight-card variant: fewer topics, top 3 hot questions
		return insights.Options{HotLimit: 3, TopTopicLimit: 5}
	}
	return insights.Options{}
}

func (s *Server) handleCompanyReport(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	company := chi.URLParam(r, "company")
	role := r.URL.Query().Get("role")
	reqLog = reqLog.WithField("company", company)

	rep, err := s.reports.CompanyReport(r.Context(), company, role, reportOptions(r))
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("company report failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	reqLog.WithField("total_questions", rep.TotalQuestions).Info("company report served")
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleCompanyRankings(w http.ResponseWriter, r *http.Request) {
	ranks, err := s.reports.CompanyRankings(r.Context())
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("company rankings failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, ranks)
}

// handleReportExport renders the report as a downloadable document,
// format=text (default) or format=xlsx.
func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	company := chi.URLParam(r, "company")
	role := r.URL.Query().Get("role")

	rep, err := s.reports.CompanyReport(r.Context(), company, role, insights.Options{})
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("report export failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "xlsx":
		s.writeWorkbook(w, rep, company)
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", attachment(company, "txt"))
		fmt.Fprint(w, export.Text(rep, time.Now()))
	default:
		s.writeError(w, http.StatusBadRequest, "unsupported format")
	}
}

func (s *Server) writeWorkbook(w http.ResponseWriter, rep types.Report, company string) {
	f, err := export.Workbook(rep)
	if err != nil {
		s.log.WithError(err).Error("workbook rendering failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(company, "xlsx"))
	if err := f.Write(w); err != nil {
		s.log.WithError(err).Error("failed to stream workbook")
	}
}

func attachment(company, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-report.%s"`, company, ext)
}
