package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/xml-to-bom/internal/converter"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
	"github.com/ginjaninja78/xml-to-bom/internal/validation"
	"github.com/ginjaninja78/xml-to-bom/internal/xlsxbom"
	"github.com/ginjaninja78/xml-to-bom/internal/xmlparser"
)

const boardXML = `<export><components>
  <comp ref="R1"><value>10k</value><fields>
    <field name="Manufacturer">Yageo</field>
    <field name="Manufacturer Part Number">RC0603FR-0710KL</field>
  </fields></comp>
  <comp ref="R7"><value>1k</value></comp>
</components></export>`

// execute runs the root command with args and resets the global flags.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile = ""
		verbose = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"validation", &validation.ValidationFailure{Designators: []string{"U3"}}, ExitValidation},
		{"grouping", &converter.GroupingIntegrityError{Ref: "U3"}, ExitGroupingFailure},
		{"parse", &xmlparser.ParseError{Err: errors.New("bad")}, ExitParse},
		{"write", &xlsxbom.WriteError{Path: "x", Err: errors.New("denied")}, ExitWrite},
		{"wrapped write", fmt.Errorf("run: %w", &xlsxbom.WriteError{Path: "x", Err: errors.New("denied")}), ExitWrite},
		{"usage", errors.New(`accepts 2 arg(s), received 1`), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}

	assert.NotEqual(t, ExitValidation, ExitGroupingFailure)
}

func TestRootGeneratesWorkbook(t *testing.T) {
	input := writeFile(t, "board.xml", boardXML)
	output := filepath.Join(t.TempDir(), "board.xlsx")

	_, err := execute(t, input, output)
	require.NoError(t, err)

	items, err := xlsxbom.Read(output)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Generic", items[1].Manufacturer)
}

func TestRootRequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "only-one.xml")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRootRejectsMistypedSubcommand(t *testing.T) {
	input := writeFile(t, "board.xml", boardXML)

	_, err := execute(t, "chek", input)
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, err.Error(), `unknown command "chek"`)
	assert.Contains(t, err.Error(), "check")
}

func TestRootAcceptsExtensionlessInputFile(t *testing.T) {
	input := writeFile(t, "board", boardXML)
	output := filepath.Join(t.TempDir(), "board.xlsx")

	_, err := execute(t, input, output)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestRootValidationFailure(t *testing.T) {
	input := writeFile(t, "board.xml", `<export><components><comp ref="U3"><value>MCU</value></comp></components></export>`)
	output := filepath.Join(t.TempDir(), "board.xlsx")

	_, err := execute(t, input, output)
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.NoFileExists(t, output)
}

func TestRootBadConfig(t *testing.T) {
	input := writeFile(t, "board.xml", boardXML)
	cfg := writeFile(t, "bomgen.yaml", "logging:\n  level: loud\n")

	_, err := execute(t, "--config", cfg, input, filepath.Join(t.TempDir(), "b.xlsx"))
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestCheckCommand(t *testing.T) {
	good := writeFile(t, "good.xml", boardXML)
	_, err := execute(t, "check", good)
	assert.NoError(t, err)

	bad := writeFile(t, "bad.xml", `<export><components><comp ref="J1"><value>Conn</value></comp></components></export>`)
	_, err = execute(t, "check", bad)
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.xlsx")
	require.NoError(t, xlsxbom.Write(path, []types.LineItem{
		{RefDes: []string{"R1", "R2"}, Value: "10k", Manufacturer: "Yageo", PartNumber: "RC0603FR-0710KL", Quantity: 2, Item: 0},
	}, xlsxbom.DefaultWriteOptions()))

	out, err := execute(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "R1, R2")
	assert.Contains(t, out, "RC0603FR-0710KL")
	assert.Contains(t, out, "1 line items, 2 components")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)
}
