// =============================================================================
// XML to BOM Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself runs the BOM pipeline, so the common invocation needs no flags:
//
//   bomgen input.xml output.xlsx
//
// COBRA CLI STRUCTURE:
//   rootCmd (bomgen <input.xml> <output.xlsx>)
//   ├── checkCmd   (bomgen check <input.xml>)
//   ├── showCmd    (bomgen show <bom.xlsx>)
//   └── versionCmd (bomgen version)
//
// EXIT CODES:
//   0  success
//   1  usage or configuration error
//   2  BOM check failed (components missing identification)
//   3  grouping integrity error
//   4  input could not be parsed
//   5  output could not be written
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/xml-to-bom/internal/config"
	"github.com/ginjaninja78/xml-to-bom/internal/converter"
	"github.com/ginjaninja78/xml-to-bom/internal/logging"
	"github.com/ginjaninja78/xml-to-bom/pkg/utils"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose enables debug diagnostics when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. Called with two arguments it converts
// an XML component export into a BOM workbook.
var rootCmd = &cobra.Command{
	Use:   "bomgen <input.xml> <output.xlsx>",
	Short: "Build a grouped Bill of Materials workbook from a schematic XML export",
	Long: `bomgen reads the component export of a schematic capture tool, checks that
every component carries a 'Manufacturer' and 'Manufacturer Part Number' field,
groups identical components into line items and writes them to an XLSX file.

Resistors, capacitors, diodes and connectors without identification are
accepted as generic parts and grouped by value.

Example Usage:
  bomgen ciderSDR.xml ciderSDR.xlsx                 # Build the BOM
  bomgen --config bomgen.yaml board.xml board.xlsx  # Use a custom configuration
  bomgen check board.xml                            # Only check identification

A first argument with no file extension that names neither a subcommand nor an
existing file is rejected as an unknown command.`,

	Args: cobra.MatchAll(cobra.ExactArgs(2), inputArg),

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0], args[1])
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with the code matching the error.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCode(err))
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug diagnostics",
	)
}

// =============================================================================
// HELPERS
// =============================================================================

// loadConfig loads the configuration and applies the --verbose override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, &usageError{err: err}
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// inputArg rejects a first argument that looks like a mistyped subcommand.
func inputArg(cmd *cobra.Command, args []string) error {
	input := args[0]
	if filepath.Ext(input) != "" {
		return nil
	}
	if _, err := os.Stat(input); err == nil {
		return nil
	}

	msg := fmt.Sprintf("unknown command %q for %q", input, cmd.CommandPath())
	if suggestions := cmd.SuggestionsFor(input); len(suggestions) > 0 {
		msg += "\n\nDid you mean this?\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &usageError{err: fmt.Errorf("%s", msg)}
}

// newLogger builds the diagnostic logger for one run.
func newLogger(cfg *config.Config, runID string) (*logging.ZapLogger, error) {
	log, err := logging.New(cfg.Logging, zap.String("run_id", runID))
	if err != nil {
		return nil, &usageError{err: err}
	}
	return log, nil
}

// runGenerate runs the full pipeline.
func runGenerate(input, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runID := utils.NewRunID()
	log, err := newLogger(cfg, runID)
	if err != nil {
		return err
	}
	defer log.Close()

	_, err = converter.New(input, output, cfg, runID, log).Run()
	return err
}
