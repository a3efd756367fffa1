package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-jobscout-automation/internal/models"
)

func TestToExcel(t *testing.T) {
	postings := []models.QualifiedPosting{
		{
			Posting: models.Posting{
				Title:       "Data Scientist",
				Company:     "Acme Corp",
				Experience:  "2 years",
				Description: "models",
				PostedDate:  "Today",
				Location:    "Bengaluru",
				Salary:      "Not disclosed",
				Skills:      "Python, SQL",
			},
			JobTier:    "Mid",
			CareerLink: "https://acme.example/careers",
		},
	}

	data, err := ToExcel(postings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{
		"Data Scientist", "Acme Corp", "2 years", "models", "Today",
		"Bengaluru", "Not disclosed", "Python, SQL", "Mid", "https://acme.example/careers",
	}, rows[1])
}

func TestToExcel_EmptyTable(t *testing.T) {
	data, err := ToExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
