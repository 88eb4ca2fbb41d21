package types

import (
	"encoding/json"
	"fmt"
)

// Source tags carried by every unified question.
const (
	SourceInterview = "interview_questions"
	SourceLeetcode  = "leetcode_questions"
)

// InterviewRecord is a raw document from the interview_questions collection.
// The collection is schema-less beyond the conventional fields below; anything
// else lives in Extra and survives JSON round-trips untouched.
type InterviewRecord struct {
	ID          string
	Question    string
	Link        string
	Time        string
	Frequency   *float64
	Topics      []string
	CompanyName string
	JobRole     string
	Extra       map[string]interface{}
}

// LeetcodeRecord is a raw document from the leetcode_questions collection.
// It has no role and no time, and its link field is literally "question link".
type LeetcodeRecord struct {
	ID           string
	Title        string
	QuestionLink string
	Frequency    *float64
	CompanyName  string
	Extra        map[string]interface{}
}

// Question is the unified in-memory shape both sources map into. Optional
// fields are pointers so that "absent" stays distinguishable from zero values
// (frequency 0 is a real signal, nil is no signal).
type Question struct {
	ID          string   `json:"id"`
	Question    *string  `json:"question"`
	Link        *string  `json:"link"`
	Time        *string  `json:"time"`
	Frequency   *float64 `json:"frequency"`
	Tags        []string `json:"tags"`
	CompanyName string   `json:"company_name"`
	JobRole     *string  `json:"job_role"`
	Source      string   `json:"source"`
}

func (r *InterviewRecord) UnmarshalJSON(data []byte) error {
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.ID = popString(m, "id")
	if r.ID == "" {
		r.ID = popString(m, "_id")
	}
	r.Question = popString(m, "question")
	r.Link = popString(m, "link")
	r.Time = popString(m, "time")
	r.Frequency = popNumber(m, "frequency")
	r.Topics = popStringList(m, "topics")
	r.CompanyName = popString(m, "company_name")
	r.JobRole = popString(m, "job_role")
	if len(m) > 0 {
		r.Extra = m
	} else {
		r.Extra = nil
	}
	return nil
}

func (r InterviewRecord) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{}
	for k, v := range r.Extra {
		m[k] = v
	}
	putString(m, "id", r.ID)
	putString(m, "question", r.Question)
	putString(m, "link", r.Link)
	putString(m, "time", r.Time)
	if r.Frequency != nil {
		m["frequency"] = *r.Frequency
	}
	if len(r.Topics) > 0 {
		m["topics"] = r.Topics
	}
	putString(m, "company_name", r.CompanyName)
	putString(m, "job_role", r.JobRole)
	return json.Marshal(m)
}

func (r *LeetcodeRecord) UnmarshalJSON(data []byte) error {
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.ID = popString(m, "id")
	if r.ID == "" {
		r.ID = popString(m, "_id")
	}
	r.Title = popString(m, "title")
	r.QuestionLink = popString(m, "question link")
	r.Frequency = popNumber(m, "frequency")
	r.CompanyName = popString(m, "company_name")
	if len(m) > 0 {
		r.Extra = m
	} else {
		r.Extra = nil
	}
	return nil
}

func (r LeetcodeRecord) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{}
	for k, v := range r.Extra {
		m[k] = v
	}
	putString(m, "id", r.ID)
	putString(m, "title", r.Title)
	putString(m, "question link", r.QuestionLink)
	if r.Frequency != nil {
		m["frequency"] = *r.Frequency
	}
	putString(m, "company_name", r.CompanyName)
	return json.Marshal(m)
}

func popString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	delete(m, key)
	return s
}

func popNumber(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	delete(m, key)
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

// popStringList accepts either a scalar string or a list; a scalar is wrapped
// into a single-element list before any downstream normalization.
func popStringList(m map[string]interface{}, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	delete(m, key)
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out
	}
	return nil
}

func putString(m map[string]interface{}, key, val string) {
	if val != "" {
		m[key] = val
	}
}
