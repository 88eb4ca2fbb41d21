package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"interview-insights-go/internal/store"
	"interview-insights-go/internal/types"
)

// handleListQuestions serves the raw interview_questions listing with the
// optional company/role/recency/limit/skip filters. Records go out unmapped.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	filter := store.InterviewFilter{
		Company:     r.URL.Query().Get("company"),
		Role:        r.URL.Query().Get("role"),
		RecencyDays: intParam(r, "recency"),
		Limit:       intParam(r, "limit"),
		Skip:        intParam(r, "skip"),
	}

	recs, err := s.interviews.List(r.Context(), filter)
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("question listing failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

// handleCreateQuestion validates the conventional fields and stores the
// document as-is, arbitrary extra fields included.
func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	var rec types.InterviewRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		reqLog.Warn("malformed question payload")
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := validateQuestion(rec); len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
		return
	}

	id, err := s.interviews.Insert(r.Context(), rec)
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("question insert failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	reqLog.WithField("question_id", id).Info("question created")
	s.writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.interviews.DistinctCompanies(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, companies)
}

func (s *Server) handleCompanyQuestions(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	recs, err := s.interviews.List(r.Context(), store.InterviewFilter{Company: company})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleLeetcodeQuestions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.leetcode.List(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleLeetcodeCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.leetcode.DistinctCompanies(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, companies)
}

func intParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
