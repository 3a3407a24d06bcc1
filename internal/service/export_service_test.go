package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"surveyforge/internal/model"
)

func sampleReport() *model.ReportData {
	survey := &model.Survey{
		ID:          "s1",
		Title:       "Product Feedback",
		Description: "Quarterly survey",
		Questions:   sampleQuestions(),
		Responses:   sampleResponses(),
	}
	return BuildReport(survey)
}

func TestExportCSV(t *testing.T) {
	result, err := ExportReport(sampleReport(), FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", result.ContentType)
	require.Equal(t, "Product_Feedback_Report.csv", result.Filename)

	body := string(result.Data)
	require.Contains(t, body, "Survey Title,Product Feedback")
	require.Contains(t, body, "Total Responses,2")
	require.Contains(t, body, "Completion Rate,50.0%")
	require.Contains(t, body, "Question,Type,Stat,Value")
	require.Contains(t, body, "Favorite color?,multiple-choice,Red,2")
	require.Contains(t, body, "Rate us,rating,average,3.00")
	require.Contains(t, body, "Any comments?,text,answer,Great product")
}

func TestExportXLSX(t *testing.T) {
	result, err := ExportReport(sampleReport(), FormatXLSX)
	require.NoError(t, err)
	require.Equal(t, "Product_Feedback_Report.xlsx", result.Filename)
	require.NotEmpty(t, result.Data)
	// xlsx files are zip archives
	require.Equal(t, []byte{'P', 'K'}, result.Data[:2])
}

func TestExportPDF(t *testing.T) {
	result, err := ExportReport(sampleReport(), FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.ContentType)
	require.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := ExportReport(sampleReport(), "docx")
	requireCode(t, err, ErrorInvalid)
}

func TestExportErrorCarriesFormat(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExportError{Format: FormatPDF, Cause: cause}

	require.Equal(t, "export pdf: disk full", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestExportFilenameSanitized(t *testing.T) {
	report := sampleReport()
	report.Title = "Q3/Q4: Survey?"

	result, err := ExportReport(report, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "Q3Q4_Survey_Report.csv", result.Filename)
}
