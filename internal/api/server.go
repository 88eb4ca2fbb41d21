// Package api exposes the question catalog and report endpoints over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/report"
	"interview-insights-go/internal/store"
)

type Server struct {
	router     *chi.Mux
	interviews store.InterviewStore
	leetcode   store.LeetcodeStore
	reports    *report.Assembler
	log        *logger.Logger
}

func NewServer(interviews store.InterviewStore, leetcode store.LeetcodeStore, log *logger.Logger) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		interviews: interviews,
		leetcode:   leetcode,
		reports:    report.NewAssembler(interviews, leetcode, log),
		log:        log.WithComponent("api"),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleListQuestions)
		r.Post("/questions", s.handleCreateQuestion)

		r.Get("/companies", s.handleCompanies)
		r.Get("/companies/{company}/questions", s.handleCompanyQuestions)

		r.Get("/leetcode-questions", s.handleLeetcodeQuestions)
		r.Get("/leetcode-questions/companies", s.handleLeetcodeCompanies)

		r.Get("/insights", s.handleGlobalInsights)

		r.Get("/reports/companies", s.handleCompanyRankings)
		r.Get("/reports/company/{company}", s.handleCompanyReport)
		r.Get("/reports/company/{company}/export", s.handleReportExport)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
