package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Manufacturer", cfg.Fields.Manufacturer)
	assert.Equal(t, "Manufacturer Part Number", cfg.Fields.PartNumber)
	assert.Equal(t, "Generic", cfg.Generic.Manufacturer)
	assert.Equal(t, []string{"R", "C", "D"}, cfg.Generic.ValidatorPrefixes)
	assert.Equal(t, []string{"J"}, cfg.Generic.ValidatorExact)
	assert.Equal(t, []string{"R", "C", "D", "J"}, cfg.Generic.GrouperPrefixes)
	assert.Equal(t, "Sheet", cfg.Output.SheetName)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fields:
  part_number: MPN
generic:
  manufacturer: Any
  grouper_prefixes: [R, C]
output:
  sheet_name: BOM
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Manufacturer", cfg.Fields.Manufacturer)
	assert.Equal(t, "MPN", cfg.Fields.PartNumber)
	assert.Equal(t, "Any", cfg.Generic.Manufacturer)
	assert.Equal(t, []string{"R", "C"}, cfg.Generic.GrouperPrefixes)
	assert.Equal(t, []string{"R", "C", "D"}, cfg.Generic.ValidatorPrefixes)
	assert.Equal(t, "BOM", cfg.Output.SheetName)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "bad yaml", yaml: "fields: [", want: "failed to parse config file"},
		{name: "long sheet name", yaml: "output:\n  sheet_name: abcdefghijklmnopqrstuvwxyz0123456789\n", want: "exceeds 31 characters"},
		{name: "bad sheet char", yaml: "output:\n  sheet_name: a/b\n", want: "forbidden character"},
		{name: "multi-char prefix", yaml: "generic:\n  grouper_prefixes: [RN]\n", want: "single character"},
		{name: "bad level", yaml: "logging:\n  level: loud\n", want: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
