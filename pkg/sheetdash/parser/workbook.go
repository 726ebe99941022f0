package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidFormat indicates the payload is not a decodable spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// Format is the payload format of a published export.
type Format string

const (
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatCSV is a single-sheet comma-separated export.
	FormatCSV Format = "csv"
)

// DetectFormat picks the payload format from the response content type and export URL.
// Google Sheets serves xlsx unless the export asks for output=csv.
func DetectFormat(contentType, exportURL string) Format {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "text/csv") || strings.Contains(ct, "text/comma-separated-values") {
		return FormatCSV
	}
	u := strings.ToLower(exportURL)
	if strings.Contains(u, "output=csv") || strings.Contains(u, "format=csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// DecodeError represents a failure to decode one workbook or worksheet.
type DecodeError struct {
	BookName  string
	SheetName string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("decode error in %q sheet %q: %v", e.BookName, e.SheetName, e.Err)
	}
	return fmt.Sprintf("decode error in %q: %v", e.BookName, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode decodes a payload of the given format into a workbook.
func Decode(bookName string, format Format, data []byte) (*models.WorkbookData, error) {
	switch format {
	case FormatCSV:
		return DecodeCSV(bookName, data)
	default:
		return DecodeXLSX(bookName, data)
	}
}

// DecodeXLSX decodes an xlsx payload, keeping every worksheet in tab order.
func DecodeXLSX(bookName string, data []byte) (*models.WorkbookData, error) {
	if len(data) == 0 {
		return nil, &DecodeError{BookName: bookName, Err: ErrInvalidFormat}
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{BookName: bookName, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &DecodeError{BookName: bookName, Err: fmt.Errorf("%w: no worksheets", ErrInvalidFormat)}
	}

	wb := &models.WorkbookData{BookName: bookName, Sheets: make([]models.SheetData, 0, len(sheetList))}
	for _, sheetName := range sheetList {
		sheet, err := ExtractCells(f, sheetName)
		if err != nil {
			return nil, &DecodeError{BookName: bookName, SheetName: sheetName, Err: err}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}
