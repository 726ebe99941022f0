// Package parser decodes published spreadsheet exports and maps their cells to dashboard records.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// Cells are read raw (dates stay Excel serials) and typed from the cell's stored type.
func ExtractCells(f *excelize.File, sheetName string) (models.SheetData, error) {
	sheet := models.SheetData{Name: sheetName}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheet, err
	}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[int]models.Cell)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colNum := colIdx + 1

			cellName, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				continue
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				cellType = excelize.CellTypeUnset
			}
			cellMap[colNum] = typedValue(cellType, cellValue)
		}

		if len(cellMap) > 0 {
			sheet.Rows = append(sheet.Rows, models.CellRow{R: rowNum, C: cellMap})
		}
	}

	return sheet, nil
}

// typedValue converts a raw cell string according to its stored xlsx type.
func typedValue(cellType excelize.CellType, raw string) models.Cell {
	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if n, ok := parseFloat(raw); ok {
			return models.NumberCell(n)
		}
		return models.StringCell(raw)
	default:
		return models.StringCell(raw)
	}
}

// parseValue types an untyped text value (CSV exports).
// Numbers become numeric cells unless they carry a leading zero, TRUE/FALSE become booleans.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	if hasLeadingZero(s) {
		return models.StringCell(s)
	}
	if n, ok := parseFloat(s); ok {
		return models.NumberText(n, s)
	}
	switch strings.ToUpper(s) {
	case "TRUE":
		return models.BoolCell(true)
	case "FALSE":
		return models.BoolCell(false)
	}
	return models.StringCell(s)
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// hasLeadingZero reports identifiers such as "007" that must stay text.
func hasLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
