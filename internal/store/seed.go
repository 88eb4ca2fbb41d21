package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/xuri/excelize/v2"

	"interview-insights-go/internal/types"
)

// Workbook loaders seed the in-memory collections from xlsx dumps. Column
// positions are detected from header names so exports from different tools
// keep working.

func LoadInterviewWorkbook(path string) ([]types.InterviewRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	idIdx := -1
	questionIdx := -1
	linkIdx := -1
	timeIdx := -1
	freqIdx := -1
	topicsIdx := -1
	companyIdx := -1
	roleIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case topicsIdx == -1 && (strings.Contains(l, "topic") || strings.Contains(l, "tag")):
			topicsIdx = i
		case linkIdx == -1 && (strings.Contains(l, "link") || strings.Contains(l, "url")):
			linkIdx = i
		case questionIdx == -1 && strings.Contains(l, "question"):
			questionIdx = i
		case timeIdx == -1 && (strings.Contains(l, "time") || strings.Contains(l, "date")):
			timeIdx = i
		case freqIdx == -1 && strings.Contains(l, "freq"):
			freqIdx = i
		case companyIdx == -1 && strings.Contains(l, "company"):
			companyIdx = i
		case roleIdx == -1 && strings.Contains(l, "role"):
			roleIdx = i
		case idIdx == -1 && (l == "id" || l == "_id"):
			idIdx = i
		}
	}

	out := []types.InterviewRecord{}
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.InterviewRecord{
			ID:          cell(r, idIdx),
			Question:    cell(r, questionIdx),
			Link:        cell(r, linkIdx),
			Time:        cell(r, timeIdx),
			CompanyName: cell(r, companyIdx),
			JobRole:     cell(r, roleIdx),
		}
		if t := cell(r, topicsIdx); t != "" {
			rec.Topics = []string{t}
		}
		rec.Frequency = parseFrequency(cell(r, freqIdx))
		// rows without a company can never be reported on; skip quietly
		if rec.CompanyName == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func LoadLeetcodeWorkbook(path string) ([]types.LeetcodeRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	idIdx := -1
	titleIdx := -1
	linkIdx := -1
	freqIdx := -1
	companyIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case linkIdx == -1 && (strings.Contains(l, "link") || strings.Contains(l, "url")):
			linkIdx = i
		case titleIdx == -1 && (strings.Contains(l, "title") || strings.Contains(l, "question")):
			titleIdx = i
		case freqIdx == -1 && strings.Contains(l, "freq"):
			freqIdx = i
		case companyIdx == -1 && strings.Contains(l, "company"):
			companyIdx = i
		case idIdx == -1 && (l == "id" || l == "_id"):
			idIdx = i
		}
	}

	out := []types.LeetcodeRecord{}
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.LeetcodeRecord{
			ID:           cell(r, idIdx),
			Title:        cell(r, titleIdx),
			QuestionLink: cell(r, linkIdx),
			CompanyName:  cell(r, companyIdx),
		}
		rec.Frequency = parseFrequency(cell(r, freqIdx))
		if rec.CompanyName == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func readRows(path string) ([][]string, error) {
	var f *excelize.File
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 5 * time.Second
	op := func() error {
		var err error
		f, err = excelize.OpenFile(path)
		return err
	}
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFrequency(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
