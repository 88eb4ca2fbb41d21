package api

import "interview-insights-go/internal/types"

// FieldError is one entry in the structured validation failure list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validateQuestion(rec types.InterviewRecord) []FieldError {
	errs := []FieldError{}
	if rec.Question == "" {
		errs = append(errs, FieldError{Field: "question", Message: "Question is required"})
	}
	if rec.CompanyName == "" {
		errs = append(errs, FieldError{Field: "company_name", Message: "Company name is required"})
	}
	if rec.JobRole == "" {
		errs = append(errs, FieldError{Field: "job_role", Message: "Job role is required"})
	}
	return errs
}
