package parser

import (
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// NormalizeYesNo maps a raw cell to Yes, No or Unknown.
// Anything other than a case-insensitive "yes" or "no" is Unknown.
func NormalizeYesNo(c models.Cell) models.YesNo {
	return ParseYesNo(c.Text())
}

// ParseYesNo is NormalizeYesNo over plain text.
func ParseYesNo(s string) models.YesNo {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return models.Yes
	case "no":
		return models.No
	default:
		return models.Unknown
	}
}
