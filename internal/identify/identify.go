// Package identify resolves a component's manufacturer identification and
// decides which reference designators may fall back to a generic part.
package identify

import (
	"github.com/ginjaninja78/xml-to-bom/internal/config"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// Resolver reads identification fields by exact name.
type Resolver struct {
	ManufacturerField string
	PartNumberField   string
}

// NewResolver builds a Resolver from the configured field names.
func NewResolver(names config.FieldNames) Resolver {
	return Resolver{
		ManufacturerField: names.Manufacturer,
		PartNumberField:   names.PartNumber,
	}
}

// Resolve returns the component's identification, or the reason it could not
// be read. A field with empty text counts as missing.
func (r Resolver) Resolve(c types.ComponentRecord) (types.Identification, types.MissingReason) {
	if !c.HasFields {
		return types.Identification{}, types.ReasonNoFieldsBlock
	}

	mfr, _ := c.FieldText(r.ManufacturerField)
	pn, _ := c.FieldText(r.PartNumberField)

	switch {
	case mfr == "" && pn == "":
		return types.Identification{}, types.ReasonNoManufacturerOrPartNumber
	case mfr == "":
		return types.Identification{}, types.ReasonNoManufacturer
	case pn == "":
		return types.Identification{}, types.ReasonNoPartNumber
	}

	return types.Identification{Manufacturer: mfr, PartNumber: pn}, types.ReasonNone
}

// GenericPolicy decides whether a designator may be treated as a generic part.
type GenericPolicy struct {
	// Prefixes are accepted first characters.
	Prefixes []string

	// Exact are accepted whole designators.
	Exact []string

	// Manufacturer is the manufacturer given to synthesized identifications.
	Manufacturer string
}

// ValidatorPolicy returns the generic rules the validator applies.
func ValidatorPolicy(g config.GenericConfig) GenericPolicy {
	return GenericPolicy{
		Prefixes:     g.ValidatorPrefixes,
		Exact:        g.ValidatorExact,
		Manufacturer: g.Manufacturer,
	}
}

// GrouperPolicy returns the generic rules the grouper applies.
func GrouperPolicy(g config.GenericConfig) GenericPolicy {
	return GenericPolicy{
		Prefixes:     g.GrouperPrefixes,
		Manufacturer: g.Manufacturer,
	}
}

// Allows reports whether ref is generic-eligible.
func (p GenericPolicy) Allows(ref string) bool {
	for _, e := range p.Exact {
		if ref == e {
			return true
		}
	}
	if ref == "" {
		return false
	}
	first := string([]rune(ref)[0])
	for _, pre := range p.Prefixes {
		if first == pre {
			return true
		}
	}
	return false
}

// Synthesize builds the generic identification (manufacturer, value).
func (p GenericPolicy) Synthesize(c types.ComponentRecord) types.Identification {
	return types.Identification{
		Manufacturer: p.Manufacturer,
		PartNumber:   c.Value,
		Generic:      true,
	}
}
