package models

import "sort"

// Record is one data row keyed by the verbatim header text of its column.
type Record map[string]Cell

// SheetData represents one worksheet as a sparse grid of cells.
type SheetData struct {
	// Name is the worksheet tab name.
	Name string `json:"name"`
	// Rows contains the non-empty rows in ascending row order.
	Rows []CellRow `json:"rows,omitempty"`
}

// Cell returns the cell at the given 1-based row and column, or an absent cell.
func (s *SheetData) Cell(row, col int) Cell {
	if s == nil {
		return Cell{}
	}
	for _, r := range s.Rows {
		if r.R == row {
			return r.C[col]
		}
		if r.R > row {
			break
		}
	}
	return Cell{}
}

// Headers returns the header row (the first non-empty row) mapped by column.
func (s *SheetData) Headers() map[int]string {
	if s == nil || len(s.Rows) == 0 {
		return nil
	}
	headers := make(map[int]string, len(s.Rows[0].C))
	for col, c := range s.Rows[0].C {
		if !c.Empty() {
			headers[col] = c.Text()
		}
	}
	return headers
}

// Records returns every row below the header row keyed by header text.
// Columns without a header are dropped. When two columns share a header, the leftmost wins.
func (s *SheetData) Records() []Record {
	headers := s.Headers()
	if headers == nil {
		return nil
	}
	cols := make([]int, 0, len(headers))
	for col := range headers {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	records := make([]Record, 0, len(s.Rows)-1)
	for _, row := range s.Rows[1:] {
		rec := make(Record, len(cols))
		for _, col := range cols {
			name := headers[col]
			if _, seen := rec[name]; seen {
				continue
			}
			rec[name] = row.C[col]
		}
		records = append(records, rec)
	}
	return records
}
