package services

import (
	"bytes"
	"fmt"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a wrapped snapshot as an Excel workbook for download
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook writes the wrapped stats into an in-memory .xlsx file with
// an overview sheet and a languages sheet.
func (s *ExportService) BuildWorkbook(wrapped *models.WrappedStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, fmt.Errorf("failed to rename overview sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Username", wrapped.User.Login},
		{"Name", wrapped.User.Name},
		{"Total Contributions", wrapped.TotalCommits},
		{"Longest Streak (days)", wrapped.LongestStreak},
		{"Current Streak (days)", wrapped.CurrentStreak},
		{"Commit Rank", wrapped.CommitRank},
		{"Most Active Weekday", wrapped.MostActiveWeekday.Weekday.String()},
		{"Most Active Month", wrapped.MostActiveMonth.Month.String()},
		{"Repositories", wrapped.Repositories.TotalRepositories},
		{"Stars Earned", wrapped.Repositories.TotalStars},
		{"Forks", wrapped.Repositories.TotalForks},
		{"Followers", wrapped.User.Followers},
		{"Following", wrapped.User.Following},
		{"Generated At", wrapped.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write overview row: %w", err)
		}
	}

	const languages = "Languages"
	if _, err := f.NewSheet(languages); err != nil {
		return nil, fmt.Errorf("failed to create languages sheet: %w", err)
	}
	header := []interface{}{"Language", "Repositories"}
	if err := f.SetSheetRow(languages, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write languages header: %w", err)
	}
	for i, lang := range wrapped.Repositories.TopLanguages {
		row := []interface{}{lang.Language, lang.Count}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(languages, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write language row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf, nil
}

// Filename returns the attachment name for a user's export
func (s *ExportService) Filename(username string) string {
	return fmt.Sprintf("git-wrapped-%s.xlsx", username)
}
