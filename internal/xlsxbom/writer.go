// =============================================================================
// XML to BOM Generator - XLSX BOM Writer
// =============================================================================
//
// This module renders grouped line items as a single-sheet workbook.
//
// OUTPUT STRUCTURE:
//
//   | A           | B     | C            | D                        | E   | F    |
//   |-------------|-------|--------------|--------------------------|-----|------|
//   | refdes_list | value | manufacturer | Manufacturer Part Number | Qty | item |
//   | R1, R2      | 10k   | Yageo        | RC0603FR-0710KL          | 2   | 0    |
//   | C1          | 100nF | Murata       | GRM188R71H104KA93D       | 1   | 1    |
//
// Row 1 holds the headers; every following row is one line item in creation
// order. An existing file at the output path is overwritten.
//
// =============================================================================

package xlsxbom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// Headers are the column names in their fixed order.
var Headers = []string{"refdes_list", "value", "manufacturer", "Manufacturer Part Number", "Qty", "item"}

// RefDesSeparator joins designators in the first column.
const RefDesSeparator = ", "

// WriteError reports a failure to produce the output workbook.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// =============================================================================
// WRITE OPTIONS
// =============================================================================

// WriteOptions contains options for workbook generation.
type WriteOptions struct {
	// SheetName is the name of the single worksheet.
	// Default: "Sheet"
	SheetName string

	// Source is the input file name recorded in the document properties.
	Source string

	// RunID is recorded as the document identifier.
	RunID string
}

// DefaultWriteOptions returns the default write options.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{SheetName: "Sheet"}
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Write renders items into a workbook saved at path.
func Write(path string, items []types.LineItem, opts WriteOptions) error {
	if opts.SheetName == "" {
		opts.SheetName = DefaultWriteOptions().SheetName
	}

	f, err := Build(items, opts)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// Build renders items into an in-memory workbook. The caller closes it.
func Build(items []types.LineItem, opts WriteOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(0)
	if opts.SheetName != "" && opts.SheetName != sheet {
		if err := f.SetSheetName(sheet, opts.SheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
		sheet = opts.SheetName
	}

	if err := writeHeader(f, sheet); err != nil {
		f.Close()
		return nil, err
	}

	for i, li := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{
			strings.Join(li.RefDes, RefDesSeparator),
			li.Value,
			li.Manufacturer,
			li.PartNumber,
			li.Quantity,
			li.Item,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetDocProps(docProps(opts)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	return f, nil
}

// writeHeader writes the bold header row and sizes the text columns.
func writeHeader(f *excelize.File, sheet string) error {
	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "D", 24)
}

func docProps(opts WriteOptions) *excelize.DocProperties {
	props := &excelize.DocProperties{
		Title:   "Bill of Materials",
		Creator: "bomgen",
	}
	if opts.Source != "" {
		props.Description = "Generated from " + filepath.Base(opts.Source)
	}
	if opts.RunID != "" {
		props.Identifier = opts.RunID
	}
	return props
}
