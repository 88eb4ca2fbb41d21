package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewRecordRoundTrip(t *testing.T) {
	raw := `{"_id":"abc","question":"Design a cache","topics":["Arrays;DP","System Design"],"frequency":3,"company_name":"Acme","job_role":"SWE","technical_terms":["LRU"],"difficulty":"hard"}`

	var rec InterviewRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, "Design a cache", rec.Question)
	assert.Equal(t, []string{"Arrays;DP", "System Design"}, rec.Topics)
	require.NotNil(t, rec.Frequency)
	assert.Equal(t, 3.0, *rec.Frequency)
	assert.Equal(t, "Acme", rec.CompanyName)
	assert.Equal(t, "SWE", rec.JobRole)

	// unknown fields survive the round trip
	assert.Contains(t, rec.Extra, "technical_terms")
	assert.Equal(t, "hard", rec.Extra["difficulty"])

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "hard", m["difficulty"])
	assert.Equal(t, "Acme", m["company_name"])
}

func TestInterviewRecordScalarTopics(t *testing.T) {
	var rec InterviewRecord
	require.NoError(t, json.Unmarshal([]byte(`{"topics":"Graphs"}`), &rec))
	assert.Equal(t, []string{"Graphs"}, rec.Topics)
}

func TestInterviewRecordZeroFrequencyStaysPresent(t *testing.T) {
	var rec InterviewRecord
	require.NoError(t, json.Unmarshal([]byte(`{"frequency":0}`), &rec))
	require.NotNil(t, rec.Frequency)
	assert.Equal(t, 0.0, *rec.Frequency)
}

func TestLeetcodeRecordFields(t *testing.T) {
	raw := `{"id":"42","title":"Two Sum","question link":"https://leetcode.com/problems/two-sum","frequency":0,"company_name":"Acme"}`

	var rec LeetcodeRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "Two Sum", rec.Title)
	assert.Equal(t, "https://leetcode.com/problems/two-sum", rec.QuestionLink)
	require.NotNil(t, rec.Frequency)
	assert.Equal(t, 0.0, *rec.Frequency)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"question link"`)
}

func TestMissingFieldsStayAbsent(t *testing.T) {
	var rec InterviewRecord
	require.NoError(t, json.Unmarshal([]byte(`{"question":"Q"}`), &rec))
	assert.Nil(t, rec.Frequency)
	assert.Nil(t, rec.Topics)
	assert.Nil(t, rec.Extra)
}
