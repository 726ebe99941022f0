package parser

import (
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// ParseNumber returns the numeric value of a cell, or nil when it has none.
// Text is trimmed and may carry a trailing % sign and thousands separators ("45%", "1,250").
func ParseNumber(c models.Cell) *float64 {
	switch c.Kind {
	case models.CellNumber:
		n := c.Num
		return &n
	case models.CellString:
		s := strings.TrimSpace(c.Str)
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if n, ok := parseFloat(s); ok {
			return &n
		}
	}
	return nil
}
