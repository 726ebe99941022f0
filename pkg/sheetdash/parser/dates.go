package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are the accepted text layouts, day before month.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2 January 2006",
	"2006-01-02",
}

// ParseDate returns the calendar date held by a cell, or nil.
// Numeric cells are Excel serial dates; text cells are read day-month-year.
func ParseDate(c models.Cell) *models.Date {
	switch c.Kind {
	case models.CellNumber:
		if c.Num <= 0 {
			return nil
		}
		t, err := excelize.ExcelDateToTime(c.Num, false)
		if err != nil {
			return nil
		}
		d := models.NewDate(t.Year(), t.Month(), t.Day())
		return &d
	case models.CellString:
		return parseDateText(c.Str)
	}
	return nil
}

func parseDateText(s string) *models.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := models.NewDate(t.Year(), t.Month(), t.Day())
			return &d
		}
	}
	return nil
}
