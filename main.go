// =============================================================================
// XML to BOM Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the bomgen CLI application. It initializes
// the Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   bomgen <input.xml> <output.xlsx>  - Build the BOM workbook
//   bomgen check <input.xml>          - Check identification only
//   bomgen show <bom.xlsx>            - Print a written BOM
//   bomgen version                    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Pipeline stages (loader, validator, grouper, writer)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/xml-to-bom/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
