package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"resumeiq/internal/domain"
)

var analysisHeader = []string{
	"ID", "Filename", "Kind", "Predicted Role", "ML Confidence",
	"Gemini Role", "Review Score", "Created At",
}

// AnalysesXLSX renders analysis records as an XLSX workbook with a header
// row followed by one row per record.
func AnalysesXLSX(records []domain.AnalysisRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Analyses"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range analysisHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for i, rec := range records {
		values := []any{
			rec.ID.String(),
			rec.Filename,
			string(rec.Kind),
			rec.PredictedRole,
			rec.MLConfidence,
			rec.GeminiRole,
			rec.ReviewScore,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
