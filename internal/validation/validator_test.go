package validation

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/xml-to-bom/internal/config"
	"github.com/ginjaninja78/xml-to-bom/internal/logging"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

func identified(ref, value, mfr, pn string) types.ComponentRecord {
	return types.ComponentRecord{
		Ref:       ref,
		Value:     value,
		HasFields: true,
		Fields: []types.Field{
			{Name: "Manufacturer", Text: mfr},
			{Name: "Manufacturer Part Number", Text: pn},
		},
	}
}

func bare(ref, value string) types.ComponentRecord {
	return types.ComponentRecord{Ref: ref, Value: value}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		records     []types.ComponentRecord
		wantOK      bool
		wantFailed  []string
		wantGeneric []string
	}{
		{
			name: "all identified",
			records: []types.ComponentRecord{
				identified("R1", "10k", "Yageo", "RC0603FR-0710KL"),
				identified("C1", "100nF", "Murata", "GRM188R71H104KA93D"),
			},
			wantOK: true,
		},
		{
			name:        "generic resistor",
			records:     []types.ComponentRecord{bare("R7", "1k")},
			wantOK:      true,
			wantGeneric: []string{"R7"},
		},
		{
			name:       "non-generic without fields",
			records:    []types.ComponentRecord{identified("R1", "10k", "Yageo", "X"), bare("U3", "MCU")},
			wantOK:     false,
			wantFailed: []string{"U3"},
		},
		{
			name:        "exact J is generic",
			records:     []types.ComponentRecord{bare("J", "Conn")},
			wantOK:      true,
			wantGeneric: []string{"J"},
		},
		{
			name:       "J with number is not generic for the check",
			records:    []types.ComponentRecord{bare("J1", "Conn")},
			wantOK:     false,
			wantFailed: []string{"J1"},
		},
		{
			name: "all failures are collected",
			records: []types.ComponentRecord{
				bare("U1", "MCU"),
				bare("C4", "1uF"),
				bare("Q2", "NPN"),
			},
			wantOK:      false,
			wantFailed:  []string{"U1", "Q2"},
			wantGeneric: []string{"C4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(config.Default(), logging.Nop())
			result := v.Check(tt.records)

			assert.Equal(t, tt.wantOK, result.OK)
			assert.Equal(t, tt.wantFailed, result.Failed)
			assert.Equal(t, tt.wantGeneric, result.Generic)
			assert.Equal(t, len(tt.records), result.ComponentsChecked)
			assert.Len(t, result.Diagnostics, len(tt.wantFailed)+len(tt.wantGeneric))
		})
	}
}

func TestCheckErr(t *testing.T) {
	v := NewValidator(config.Default(), nil)

	ok := v.Check([]types.ComponentRecord{bare("R7", "1k")})
	assert.NoError(t, ok.Err())

	failed := v.Check([]types.ComponentRecord{bare("U3", "MCU")})
	err := failed.Err()
	require.Error(t, err)

	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.Equal(t, []string{"U3"}, vf.Designators)
	assert.Contains(t, err.Error(), "U3")
}

func TestCheckDiagnosticsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "info"})
	require.NoError(t, err)

	v := NewValidator(config.Default(), log)
	result := v.Check([]types.ComponentRecord{bare("R7", "1k"), bare("U3", "MCU")})

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, SeverityInfo, result.Diagnostics[0].Severity)
	assert.Equal(t, types.ReasonNoFieldsBlock, result.Diagnostics[0].Reason)
	assert.Equal(t, SeverityError, result.Diagnostics[1].Severity)

	out := buf.String()
	assert.Contains(t, out, "Component 'R7' is missing 'Manufacturer' and/or 'Manufacturer Part Number' entry.  Treating as generic R component..")
	assert.Contains(t, out, "Component 'U3' is missing 'Manufacturer' and/or 'Manufacturer Part Number' (missing-fields-block)")
}

func TestCheckPartialFields(t *testing.T) {
	rec := types.ComponentRecord{
		Ref:       "U5",
		Value:     "LDO",
		HasFields: true,
		Fields:    []types.Field{{Name: "Manufacturer", Text: "TI"}},
	}

	result := NewValidator(config.Default(), nil).Check([]types.ComponentRecord{rec})

	require.False(t, result.OK)
	assert.Equal(t, types.ReasonNoPartNumber, result.Diagnostics[0].Reason)
}

func TestCheckDiagnosticsUseConfiguredFieldNames(t *testing.T) {
	cfg := config.Default()
	cfg.Fields.Manufacturer = "MFR"
	cfg.Fields.PartNumber = "MPN"

	result := NewValidator(cfg, nil).Check([]types.ComponentRecord{bare("R7", "1k"), bare("U3", "MCU")})

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, "Component 'R7' is missing 'MFR' and/or 'MPN' entry.  Treating as generic R component..", result.Diagnostics[0].Message)
	assert.Equal(t, "Component 'U3' is missing 'MFR' and/or 'MPN' (missing-fields-block)", result.Diagnostics[1].Message)
}
