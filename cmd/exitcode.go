package cmd

import (
	"errors"

	"github.com/ginjaninja78/xml-to-bom/internal/converter"
	"github.com/ginjaninja78/xml-to-bom/internal/validation"
	"github.com/ginjaninja78/xml-to-bom/internal/xlsxbom"
	"github.com/ginjaninja78/xml-to-bom/internal/xmlparser"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitUsage           = 1
	ExitValidation      = 2
	ExitGroupingFailure = 3
	ExitParse           = 4
	ExitWrite           = 5
)

// usageError marks configuration and setup failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var (
		vf *validation.ValidationFailure
		ge *converter.GroupingIntegrityError
		pe *xmlparser.ParseError
		we *xlsxbom.WriteError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &vf):
		return ExitValidation
	case errors.As(err, &ge):
		return ExitGroupingFailure
	case errors.As(err, &pe):
		return ExitParse
	case errors.As(err, &we):
		return ExitWrite
	default:
		return ExitUsage
	}
}
