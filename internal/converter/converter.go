// =============================================================================
// XML to BOM Generator - Converter Module
// =============================================================================
//
// This module contains the pipeline that turns one XML component export into
// one BOM workbook.
//
// CONVERSION PIPELINE:
//   1. Load the component records from the XML export
//   2. Check every component for manufacturer identification
//      (abort before grouping if any component fails)
//   3. Group components into line items
//   4. Print the line item trace and summary count
//   5. Write the workbook
//   6. Write the optional run summary
//
// ERRORS:
//   Each stage returns its own error type so the caller can tell them apart:
//   *xmlparser.ParseError, *validation.ValidationFailure,
//   *GroupingIntegrityError, *xlsxbom.WriteError.
//
// =============================================================================

package converter

import (
	"time"

	"github.com/ginjaninja78/xml-to-bom/internal/config"
	"github.com/ginjaninja78/xml-to-bom/internal/identify"
	"github.com/ginjaninja78/xml-to-bom/internal/logging"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
	"github.com/ginjaninja78/xml-to-bom/internal/validation"
	"github.com/ginjaninja78/xml-to-bom/internal/xlsxbom"
	"github.com/ginjaninja78/xml-to-bom/internal/xmlparser"
	"github.com/ginjaninja78/xml-to-bom/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// InputFile is the XML export that was read.
	InputFile string

	// OutputFile is the workbook path. Empty if the run stopped early.
	OutputFile string

	// RunID identifies the run in the workbook, summary and log file.
	RunID string

	// Validation is the outcome of the identification check.
	Validation *validation.Result

	// LineItems are the grouped line items in creation order.
	LineItems []types.LineItem

	// SummaryFile is the path of the run summary, if one was written.
	SummaryFile string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// ComponentsLoaded is the number of comp elements read, duplicates included.
	ComponentsLoaded int

	// LineItemsCreated is the number of line items written.
	LineItemsCreated int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single XML export to a BOM workbook.
type Converter struct {
	inputPath  string
	outputPath string
	cfg        *config.Config
	runID      string
	logger     logging.Logger
}

// New creates a new Converter instance. A nil cfg means the defaults.
func New(inputPath, outputPath string, cfg *config.Config, runID string, logger logging.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	if runID == "" {
		runID = utils.NewRunID()
	}
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
		runID:      runID,
		logger:     logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTIONS
// =============================================================================

// Check runs the loader and the validator only.
func (c *Converter) Check() (*validation.Result, error) {
	records, err := c.load()
	if err != nil {
		return nil, err
	}

	result := validation.NewValidator(c.cfg, c.logger).Check(records)
	return result, result.Err()
}

// Run executes the full pipeline. The returned Result is never nil and holds
// whatever was produced before an error stopped the run.
func (c *Converter) Run() (*Result, error) {
	startTime := time.Now()
	result := &Result{
		InputFile: c.inputPath,
		RunID:     c.runID,
	}

	// =========================================================================
	// STEP 1: LOAD COMPONENTS
	// =========================================================================

	records, err := c.load()
	if err != nil {
		return result, err
	}
	result.Stats.ComponentsLoaded = len(records)
	c.logger.Debug("Loaded %d component(s)", len(records))

	// =========================================================================
	// STEP 2: CHECK IDENTIFICATION
	// =========================================================================

	result.Validation = validation.NewValidator(c.cfg, c.logger).Check(records)
	if err := result.Validation.Err(); err != nil {
		c.logger.Error("BOM Check Failed..")
		return result, err
	}
	c.logger.Info("BOM Check passes..")

	// =========================================================================
	// STEP 3: GROUP LINE ITEMS
	// =========================================================================

	grouper := NewGrouper(
		identify.NewResolver(c.cfg.Fields),
		identify.GrouperPolicy(c.cfg.Generic),
		c.logger,
	)
	items, err := grouper.Group(records)
	if err != nil {
		return result, err
	}
	result.LineItems = items
	result.Stats.LineItemsCreated = len(items)

	c.logger.Info("Line Items list:")
	for _, li := range items {
		c.logger.Info(" processing:  %s ", li)
	}
	c.logger.Info("Found %d line items from %d components in BOM database.", len(items), len(records))

	// =========================================================================
	// STEP 4: WRITE WORKBOOK
	// =========================================================================

	opts := xlsxbom.WriteOptions{
		SheetName: c.cfg.Output.SheetName,
		Source:    c.inputPath,
		RunID:     c.runID,
	}
	if err := xlsxbom.Write(c.outputPath, items, opts); err != nil {
		return result, err
	}
	result.OutputFile = c.outputPath
	c.logger.Info("Wrote output to %s", c.outputPath)

	// =========================================================================
	// STEP 5: RUN SUMMARY
	// =========================================================================

	result.Stats.ProcessingTime = time.Since(startTime)

	if dir := c.cfg.Output.SummaryDir; dir != "" {
		path, err := utils.WriteSummaryLog(utils.RunSummary{
			RunID:        c.runID,
			StartTime:    startTime,
			EndTime:      startTime.Add(result.Stats.ProcessingTime),
			InputFile:    c.inputPath,
			OutputFile:   c.outputPath,
			Components:   len(records),
			LineItems:    len(items),
			GenericParts: result.Validation.Generic,
		}, dir)
		if err != nil {
			// The workbook is already written; a missing summary does not fail the run.
			c.logger.Warn("Failed to write run summary: %v", err)
		} else {
			result.SummaryFile = path
			c.logger.Debug("Wrote run summary to %s", path)
		}
	}

	c.logger.Info("Done..")
	return result, nil
}

// load reads the component records from the input file.
func (c *Converter) load() ([]types.ComponentRecord, error) {
	c.logger.Info("Read xml source data file: %s", c.inputPath)
	return xmlparser.Parse(c.inputPath)
}
