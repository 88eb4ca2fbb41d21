package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"interview-insights-go/internal/tags"
	"interview-insights-go/internal/types"
)

// Workbook renders the report as an xlsx file with one sheet per section.
// The caller owns closing the returned file.
func Workbook(rep types.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := f.GetSheetName(0)
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	a := rep.Analysis
	role := "All roles"
	if rep.Role != nil {
		role = *rep.Role
	}
	summaryRows := [][]interface{}{
		{"Company", rep.Company},
		{"Role", role},
		{"Total Questions", rep.TotalQuestions},
		{"Questions with Frequency Data", a.FrequencyAnalysis.TotalWithFrequency},
		{"Average Question Frequency", a.FrequencyAnalysis.AverageFrequency},
		{"Hot Questions", len(a.FrequencyAnalysis.HotQuestions)},
		{"Summary", a.Summary},
	}
	if err := writeRows(f, "Summary", summaryRows); err != nil {
		return nil, err
	}

	topicRows := [][]interface{}{{"Tag", "Count", "Percentage"}}
	for _, t := range a.TopTopics {
		topicRows = append(topicRows, []interface{}{t.Tag, t.Count, t.Percentage})
	}
	if err := addSheet(f, "Top Topics", topicRows); err != nil {
		return nil, err
	}

	roleRows := [][]interface{}{{"Role", "Count", "Percentage"}}
	for _, r := range a.RoleDistribution {
		roleRows = append(roleRows, []interface{}{r.Role, r.Count, r.Percentage})
	}
	if err := addSheet(f, "Roles", roleRows); err != nil {
		return nil, err
	}

	hotRows := [][]interface{}{{"Question", "Frequency", "Role", "Link"}}
	for _, q := range a.FrequencyAnalysis.HotQuestions {
		hotRows = append(hotRows, questionRow(q)[:4])
	}
	if err := addSheet(f, "Hot Questions", hotRows); err != nil {
		return nil, err
	}

	questionRows := [][]interface{}{{"Question", "Frequency", "Role", "Link", "Company", "Date", "Tags", "Source"}}
	for _, q := range rep.Questions {
		questionRows = append(questionRows, questionRow(q))
	}
	if err := addSheet(f, "Questions", questionRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func questionRow(q types.Question) []interface{} {
	row := []interface{}{text(q.Question), "", "", "", q.CompanyName, "", strings.Join(tags.Normalize(q.Tags), ", "), q.Source}
	if q.Frequency != nil {
		row[1] = *q.Frequency
	}
	if q.JobRole != nil {
		row[2] = *q.JobRole
	}
	if q.Link != nil {
		row[3] = *q.Link
	}
	if q.Time != nil {
		row[5] = *q.Time
	}
	return row
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
