package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/xuri/excelize/v2"
)

// ReportExportService renders a session's scoring history as an Excel
// workbook teachers can download.
type ReportExportService interface {
	ExportSessionReport(ctx context.Context, sessionID string) ([]byte, error)
}

type reportExportService struct {
	store  *analysis.SessionStore
	logger *slog.Logger
}

func NewReportExportService(store *analysis.SessionStore, logger *slog.Logger) ReportExportService {
	return &reportExportService{
		store:  store,
		logger: logger,
	}
}

func (s *reportExportService) ExportSessionReport(ctx context.Context, sessionID string) ([]byte, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	history := s.store.History(sessionID)
	if len(history) == 0 {
		return nil, ErrSessionNotFound
	}
	progress := s.store.CalculateProgress(sessionID)

	f := excelize.NewFile()
	sheetName := "Progress"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Write headers
	headers := []string{
		"Entry", "Timestamp", "Structure", "Content", "Reasoning",
		"Evidence", "Critical Thinking", "Originality", "Total", "Feedback Items",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	// Write one row per scored submission
	for rowIndex, entry := range history {
		overall := entry.Analysis.Overall
		row := []interface{}{
			rowIndex + 1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			overall.Structure,
			overall.Content,
			overall.Reasoning,
			overall.Evidence,
			overall.CriticalThinking,
			overall.Originality,
			overall.Total,
			len(entry.Feedback),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	// Trend summary below the table
	summaryRow := len(history) + 3
	summary := [][2]interface{}{
		{"Session", sessionID},
		{"Trend", progress.Trend},
		{"Improvement", progress.Improvement},
		{"Current Score", progress.CurrentScore},
		{"Previous Score", progress.PreviousScore},
	}
	for i, pair := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+i), pair[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+i), pair[1])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported session report",
		"session_id", sessionID, "entries", len(history))

	return buf.Bytes(), nil
}
