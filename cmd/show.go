// =============================================================================
// XML to BOM Generator - Show Command
// =============================================================================
//
// This file defines the 'show' command, which prints the line items of a
// BOM workbook previously written by bomgen.
//
// COMMAND USAGE:
//   bomgen show <bom.xlsx>
//
// OUTPUT:
//   item  qty  refdes          value  manufacturer  part number
//   0     2    R1, R2          10k    Yageo         RC0603FR-0710KL
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-to-bom/internal/types"
	"github.com/ginjaninja78/xml-to-bom/internal/xlsxbom"
)

// showCmd represents the 'show' command.
var showCmd = &cobra.Command{
	Use:   "show <bom.xlsx>",
	Short: "Print the line items of a BOM workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := xlsxbom.Read(args[0])
		if err != nil {
			return err
		}
		return printLineItems(cmd.OutOrStdout(), items)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// printLineItems writes items as an aligned table followed by a total.
func printLineItems(w io.Writer, items []types.LineItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "item\tqty\trefdes\tvalue\tmanufacturer\tpart number")

	total := 0
	for _, li := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			li.Item, li.Quantity, strings.Join(li.RefDes, xlsxbom.RefDesSeparator),
			li.Value, li.Manufacturer, li.PartNumber)
		total += li.Quantity
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d line items, %d components\n", len(items), total)
	return err
}
