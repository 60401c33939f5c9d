// =============================================================================
// XML to BOM Generator - Netlist XML Parser Module
// =============================================================================
//
// This module is the loader stage of the pipeline. It reads the component
// export written by the schematic capture tool and materializes one
// ComponentRecord per <comp> element.
//
// EXPECTED STRUCTURE:
//   <export>
//     <components>
//       <comp ref="R1">
//         <value>10k</value>
//         <footprint>Resistor_SMD:R_0603</footprint>
//         <fields>
//           <field name="Manufacturer">Yageo</field>
//           <field name="Manufacturer Part Number">RC0603FR-0710KL</field>
//         </fields>
//       </comp>
//     </components>
//   </export>
//
// Elements the loader does not know about (libsource, sheetpath, nets, ...)
// are ignored. Text content is trimmed of surrounding whitespace.
//
// =============================================================================

package xmlparser

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNoComponents is returned when export.components holds no comp element.
var ErrNoComponents = errors.New("export.components.comp is absent")

// ParseError reports malformed or schema-mismatched input.
type ParseError struct {
	// Path is the input file, empty when parsing from a reader.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// XML DOCUMENT STRUCTURE
// =============================================================================

type xmlExport struct {
	XMLName    xml.Name       `xml:"export"`
	Components *xmlComponents `xml:"components"`
}

type xmlComponents struct {
	Comps []xmlComp `xml:"comp"`
}

type xmlComp struct {
	Ref       *string    `xml:"ref,attr"`
	Value     *string    `xml:"value"`
	Footprint string     `xml:"footprint"`
	Fields    *xmlFields `xml:"fields"`
}

type xmlFields struct {
	Fields []xmlField `xml:"field"`
}

type xmlField struct {
	Name string `xml:"name,attr"`
	Text string `xml:",chardata"`
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads an XML export file and returns its components in document order.
//
// RETURNS:
//   - The component records.
//   - A *ParseError if the file cannot be opened, is not well-formed, or does
//     not match export.components.comp.
func Parse(filePath string) ([]types.ComponentRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &ParseError{Path: filePath, Err: err}
	}
	defer file.Close()

	records, err := ParseReader(bufio.NewReader(file))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = filePath
		}
		return nil, err
	}

	return records, nil
}

// ParseReader decodes an XML export from r. Non UTF-8 encodings declared in
// the XML prolog are converted before decoding.
func ParseReader(r io.Reader) ([]types.ComponentRecord, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc xmlExport
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("failed to decode XML: %w", err)}
	}
	if err := checkTrailing(dec); err != nil {
		return nil, &ParseError{Err: err}
	}

	if doc.Components == nil || len(doc.Components.Comps) == 0 {
		return nil, &ParseError{Err: ErrNoComponents}
	}

	records := make([]types.ComponentRecord, 0, len(doc.Components.Comps))
	for i, comp := range doc.Components.Comps {
		record, err := toRecord(comp)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("comp #%d: %w", i+1, err)}
		}
		records = append(records, record)
	}

	return records, nil
}

// checkTrailing consumes the rest of the document after the root element.
// Only whitespace, comments and processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) != 0 {
				return fmt.Errorf("failed to decode XML: text after root element")
			}
		default:
			return fmt.Errorf("failed to decode XML: content after root element")
		}
	}
}

// toRecord converts one decoded <comp> element.
func toRecord(comp xmlComp) (types.ComponentRecord, error) {
	if comp.Ref == nil || strings.TrimSpace(*comp.Ref) == "" {
		return types.ComponentRecord{}, fmt.Errorf("missing ref attribute")
	}
	ref := strings.TrimSpace(*comp.Ref)

	if comp.Value == nil {
		return types.ComponentRecord{}, fmt.Errorf("component %s has no value element", ref)
	}

	record := types.ComponentRecord{
		Ref:       ref,
		Value:     strings.TrimSpace(*comp.Value),
		Footprint: strings.TrimSpace(comp.Footprint),
	}

	if comp.Fields != nil {
		record.HasFields = true
		record.Fields = make([]types.Field, 0, len(comp.Fields.Fields))
		for _, f := range comp.Fields.Fields {
			record.Fields = append(record.Fields, types.Field{
				Name: f.Name,
				Text: strings.TrimSpace(f.Text),
			})
		}
	}

	return record, nil
}
