// =============================================================================
// XML to BOM Generator - Run Summary Utility
// =============================================================================
//
// This module provides small file utilities for the generator:
//   - Run identifiers (UUID) shared by the summary, the log file and the
//     workbook document properties
//   - Plain-text run summaries written to a configured directory
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRunID returns a random identifier for one pipeline run.
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// RunSummary contains summary information about one run.
type RunSummary struct {
	RunID      string
	StartTime  time.Time
	EndTime    time.Time
	InputFile  string
	OutputFile string

	// Components is the number of component records loaded.
	Components int

	// LineItems is the number of line items written.
	LineItems int

	// GenericParts lists designators accepted as generic parts.
	GenericParts []string
}

// SummaryFileName returns the file name used for a run summary.
func SummaryFileName(s RunSummary) string {
	id := s.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("bom_summary_%s_%s.txt", s.StartTime.Format("20060102_150405"), id)
}

// WriteSummaryLog writes a run summary into outputDir, creating the
// directory if needed, and returns the summary file path.
func WriteSummaryLog(s RunSummary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}

	summaryPath := filepath.Join(outputDir, SummaryFileName(s))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	generic := "none"
	if len(s.GenericParts) > 0 {
		generic = strings.Join(s.GenericParts, ", ")
	}

	fmt.Fprintf(writer, "XML to BOM Generator - Run Summary\n"+
		"================================================================================\n\n"+
		"  Run ID:         %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n"+
		"  Input File:     %s\n"+
		"  Output File:    %s\n"+
		"  Components:     %d\n"+
		"  Line Items:     %d\n"+
		"  Generic Parts:  %s\n\n"+
		"================================================================================\n"+
		"End of Summary\n",
		s.RunID,
		s.StartTime.Format("2006-01-02 15:04:05"),
		s.EndTime.Format("2006-01-02 15:04:05"),
		s.EndTime.Sub(s.StartTime).String(),
		s.InputFile,
		s.OutputFile,
		s.Components,
		s.LineItems,
		generic)

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}
