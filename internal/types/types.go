// =============================================================================
// XML to BOM Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xmlparser  (produces ComponentRecord)
//   - identify   (produces Identification)
//   - validation (consumes ComponentRecord)
//   - converter  (produces LineItem)
//   - xlsxbom    (consumes LineItem)
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// COMPONENT TYPES
// =============================================================================

// Field is one named entry of a component's <fields> block.
type Field struct {
	// Name is the value of the field's name attribute.
	Name string

	// Text is the character data of the field element.
	Text string
}

// ComponentRecord represents one electrical component instance from the
// schematic export. Records are created by the loader and never mutated.
type ComponentRecord struct {
	// Ref is the reference designator (e.g. "R1", "U3").
	Ref string

	// Value is the component value (e.g. "10k", "100nF").
	Value string

	// Footprint is the optional PCB footprint name. It is carried for
	// diagnostics only and never participates in grouping.
	Footprint string

	// HasFields is true when the export contained a <fields> block for this
	// component, even if the block was empty.
	HasFields bool

	// Fields contains the named fields in document order.
	Fields []Field
}

// FieldText returns the text of the first field with the given name.
// The name comparison is case-sensitive.
func (c ComponentRecord) FieldText(name string) (string, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Text, true
		}
	}
	return "", false
}

// =============================================================================
// IDENTIFICATION TYPES
// =============================================================================

// Identification is the (manufacturer, part number) pair of a component.
type Identification struct {
	Manufacturer string
	PartNumber   string

	// Generic is true when the identification was synthesized from the
	// component value instead of read from its fields.
	Generic bool
}

// MissingReason explains why an identification could not be read from a
// component's fields.
type MissingReason int

const (
	// ReasonNone means the identification resolved.
	ReasonNone MissingReason = iota

	// ReasonNoFieldsBlock means the component has no <fields> block at all.
	ReasonNoFieldsBlock

	// ReasonNoManufacturer means the manufacturer field is absent or empty.
	ReasonNoManufacturer

	// ReasonNoPartNumber means the part number field is absent or empty.
	ReasonNoPartNumber

	// ReasonNoManufacturerOrPartNumber means both fields are absent or empty.
	ReasonNoManufacturerOrPartNumber
)

// String implements fmt.Stringer.
func (r MissingReason) String() string {
	switch r {
	case ReasonNone:
		return "resolved"
	case ReasonNoFieldsBlock:
		return "missing-fields-block"
	case ReasonNoManufacturer:
		return "missing-manufacturer"
	case ReasonNoPartNumber:
		return "missing-part-number"
	case ReasonNoManufacturerOrPartNumber:
		return "missing-manufacturer-and-part-number"
	default:
		return fmt.Sprintf("MissingReason(%d)", int(r))
	}
}

// =============================================================================
// LINE ITEM TYPES
// =============================================================================

// LineItem represents one row of the BOM: every component sharing the same
// value, manufacturer and part number.
type LineItem struct {
	// RefDes lists the reference designators in first-seen order.
	RefDes []string

	// Value is the shared component value.
	Value string

	// Manufacturer is the shared manufacturer name.
	Manufacturer string

	// PartNumber is the shared manufacturer part number.
	PartNumber string

	// Quantity is len(RefDes), set once grouping completes.
	Quantity int

	// Item is the zero-based sequence index in creation order.
	Item int
}

// String renders the line item the way the processing trace prints it.
func (li LineItem) String() string {
	return fmt.Sprintf("{refdes_list: %v, value: %q, manufacturer: %q, part_number: %q, qty: %d, item: %d}",
		li.RefDes, li.Value, li.Manufacturer, li.PartNumber, li.Quantity, li.Item)
}
