package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-jobscout-automation/internal/models"
)

// Columns is the spreadsheet header, one column per output field.
var Columns = []string{
	"Title", "Company", "Experience", "Description", "Posted Date",
	"Location", "Salary", "Skills", "Job Tier", "Job Link",
}

// ToExcel renders the qualified-posting table as xlsx bytes,
// one row per posting.
func ToExcel(postings []models.QualifiedPosting) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &Columns); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, p := range postings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}
		row := []any{
			p.Title, p.Company, p.Experience, p.Description, p.PostedDate,
			p.Location, p.Salary, p.Skills, p.JobTier, p.CareerLink,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
