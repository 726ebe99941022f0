package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a cell range that cannot locate the certificate cells.
var ErrInvalidRange = errors.New("invalid cell range")

// ParseIPCRange parses a range like $B$2:$G$2 into the certificate cell positions.
// The range must cover exactly one row and models.IPCCount columns.
func ParseIPCRange(rangeStr string) (models.IPCRange, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.IPCRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.IPCRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.IPCRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if startRow != endRow {
		return models.IPCRange{}, fmt.Errorf("%w: %q spans more than one row", ErrInvalidRange, rangeStr)
	}
	if endCol-startCol+1 != models.IPCCount {
		return models.IPCRange{}, fmt.Errorf("%w: %q must span %d columns", ErrInvalidRange, rangeStr, models.IPCCount)
	}

	return models.IPCRange{Row: startRow, Col: startCol}, nil
}
