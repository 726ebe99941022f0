// Package models defines data structures for spreadsheet ingestion and the dashboard snapshot.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind identifies which payload a Cell carries.
type CellKind uint8

const (
	// CellAbsent marks a cell that is not present in the sheet.
	CellAbsent CellKind = iota
	// CellString is a text cell.
	CellString
	// CellNumber is a numeric cell (including Excel serial dates).
	CellNumber
	// CellBool is a boolean cell.
	CellBool
)

// Cell is a raw spreadsheet value. The zero value is an absent cell.
type Cell struct {
	Kind CellKind
	// Str is the text of a string cell, or the source token of a number parsed from text.
	Str  string
	Num  float64
	Bool bool
}

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: CellString, Str: s} }

// NumberCell returns a numeric cell.
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Num: n} }

// NumberText returns a numeric cell that remembers the text it was parsed from,
// so Text reproduces "1.10" or a 20-digit id exactly.
func NumberText(n float64, raw string) Cell { return Cell{Kind: CellNumber, Num: n, Str: raw} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// Present reports whether the cell exists in the sheet.
func (c Cell) Present() bool { return c.Kind != CellAbsent }

// Empty reports whether the cell is absent or holds only whitespace.
func (c Cell) Empty() bool {
	switch c.Kind {
	case CellAbsent:
		return true
	case CellString:
		return strings.TrimSpace(c.Str) == ""
	default:
		return false
	}
}

// Text returns the cell rendered as a string. Absent cells render as "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		if c.Str != "" {
			return c.Str
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// MarshalJSON renders the cell as its natural JSON value.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellString:
		return json.Marshal(c.Str)
	case CellNumber:
		return json.Marshal(c.Num)
	case CellBool:
		return json.Marshal(c.Bool)
	default:
		return []byte("null"), nil
	}
}

// CellRow represents a single sparse row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based) to cell value.
	C map[int]Cell `json:"c"`
}
