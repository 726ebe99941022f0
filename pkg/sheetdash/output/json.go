// Package output serializes snapshots and decoded workbooks to JSON.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// ToJSON serializes a snapshot.
func ToJSON(snap *models.Snapshot, pretty bool) ([]byte, error) {
	return marshal(snap, pretty)
}

// WorkbookToJSON serializes a decoded workbook.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single worksheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
