package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// CSVSheetName names the single worksheet of a CSV export.
const CSVSheetName = "csv"

// DecodeCSV decodes a CSV export into a single-sheet workbook.
func DecodeCSV(bookName string, data []byte) (*models.WorkbookData, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if looksLikeHTML(data) {
		return nil, &DecodeError{BookName: bookName, Err: fmt.Errorf("%w: got HTML page", ErrInvalidFormat)}
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	sheet := models.SheetData{Name: CSVSheetName}
	for rowNum := 1; ; rowNum++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{BookName: bookName, SheetName: CSVSheetName, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
		}

		cellMap := make(map[int]models.Cell)
		for colIdx, v := range fields {
			if v == "" {
				continue
			}
			cellMap[colIdx+1] = parseValue(v)
		}
		if len(cellMap) > 0 {
			sheet.Rows = append(sheet.Rows, models.CellRow{R: rowNum, C: cellMap})
		}
	}

	return &models.WorkbookData{BookName: bookName, Sheets: []models.SheetData{sheet}}, nil
}

// looksLikeHTML detects the sign-in or error page served instead of an unpublished export.
func looksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	if len(head) > 64 {
		head = head[:64]
	}
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}
