package parser

import (
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

var ipcVocabulary = map[string]models.IPCStatus{
	"not submitted": models.IPCNotSubmitted,
	"submitted":     models.IPCSubmitted,
	"in process":    models.IPCInProcess,
	"released":      models.IPCReleased,
}

// ExtractIPC reads the six certificate cells at pos. Header names are not consulted.
// A nil sheet yields no records at all rather than six Unknown ones.
func ExtractIPC(sheet *models.SheetData, pos models.IPCRange) []models.IPCRecord {
	if sheet == nil {
		return nil
	}
	records := make([]models.IPCRecord, models.IPCCount)
	for i := range records {
		records[i] = models.IPCRecord{
			Certificate: models.IPCLabel(i + 1),
			Status:      ParseIPCStatus(sheet.Cell(pos.Row, pos.Col+i)),
		}
	}
	return records
}

// ParseIPCStatus maps a cell through the certificate status vocabulary.
func ParseIPCStatus(c models.Cell) models.IPCStatus {
	if status, ok := ipcVocabulary[strings.ToLower(strings.TrimSpace(c.Text()))]; ok {
		return status
	}
	return models.IPCUnknown
}
