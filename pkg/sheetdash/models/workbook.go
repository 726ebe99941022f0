package models

// DefaultWorksheet is the conventional name of the data-entry tab.
const DefaultWorksheet = "Data_Entry"

// WorkbookData represents a decoded published export with its worksheets in tab order.
type WorkbookData struct {
	// BookName identifies the workbook (the package id of its source).
	BookName string `json:"book_name"`
	// Sheets holds the worksheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the worksheet with exactly the given name, or nil.
func (w *WorkbookData) Sheet(name string) *SheetData {
	if w == nil {
		return nil
	}
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}

// SelectSheet returns the preferred worksheet, falling back to the first one.
// It returns nil only when the workbook has no worksheets.
func (w *WorkbookData) SelectSheet(preferred string) *SheetData {
	if s := w.Sheet(preferred); s != nil {
		return s
	}
	if w == nil || len(w.Sheets) == 0 {
		return nil
	}
	return &w.Sheets[0]
}
