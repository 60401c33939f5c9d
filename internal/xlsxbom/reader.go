package xlsxbom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// Read loads line items back from a workbook produced by Write.
//
// The first sheet is read. Row 1 must carry Headers in order; empty rows
// are skipped.
func Read(path string) ([]types.LineItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	var items []types.LineItem
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		li, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+1, err)
		}
		items = append(items, li)
	}

	return items, nil
}

func checkHeader(row []string) error {
	if len(row) < len(Headers) {
		return fmt.Errorf("header row has %d columns, want %d", len(row), len(Headers))
	}
	for i, h := range Headers {
		if strings.TrimSpace(row[i]) != h {
			return fmt.Errorf("header column %d is %q, want %q", i+1, row[i], h)
		}
	}
	return nil
}

func parseRow(row []string) (types.LineItem, error) {
	getCell := func(index int) string {
		if index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}

	qty, err := strconv.Atoi(getCell(4))
	if err != nil {
		return types.LineItem{}, fmt.Errorf("invalid Qty %q: %w", getCell(4), err)
	}
	item, err := strconv.Atoi(getCell(5))
	if err != nil {
		return types.LineItem{}, fmt.Errorf("invalid item %q: %w", getCell(5), err)
	}

	var refs []string
	if s := getCell(0); s != "" {
		refs = strings.Split(s, RefDesSeparator)
	}

	return types.LineItem{
		RefDes:       refs,
		Value:        getCell(1),
		Manufacturer: getCell(2),
		PartNumber:   getCell(3),
		Quantity:     qty,
		Item:         item,
	}, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
