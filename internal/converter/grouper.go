package converter

import (
	"fmt"

	"github.com/ginjaninja78/xml-to-bom/internal/identify"
	"github.com/ginjaninja78/xml-to-bom/internal/logging"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// GroupingIntegrityError is returned when a component reaches grouping
// without resolvable identification and is not generic-eligible.
type GroupingIntegrityError struct {
	Ref    string
	Reason types.MissingReason
}

// Error implements the error interface.
func (e *GroupingIntegrityError) Error() string {
	return fmt.Sprintf("parts database missing required keys: component %s has no manufacturer identification (%s)",
		e.Ref, e.Reason)
}

// groupKey is the full grouping key. Two components share a line item only
// when all three parts are equal.
type groupKey struct {
	value        string
	manufacturer string
	partNumber   string
}

// Grouper partitions component records into BOM line items.
type Grouper struct {
	resolver identify.Resolver
	policy   identify.GenericPolicy
	logger   logging.Logger
}

// NewGrouper creates a Grouper.
func NewGrouper(resolver identify.Resolver, policy identify.GenericPolicy, logger logging.Logger) *Grouper {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Grouper{resolver: resolver, policy: policy, logger: logger}
}

// Group collapses records into line items.
//
// GROUPING LOGIC:
//  1. Records are collapsed by reference designator. A later record with the
//     same designator replaces the earlier one but keeps its position.
//  2. Each record's identification is resolved. Generic-eligible records
//     without identification get (generic manufacturer, value); any other
//     record without identification aborts with *GroupingIntegrityError.
//  3. Records sharing (value, manufacturer, part number) join the same line
//     item; designators keep first-seen order.
//  4. Line items are numbered from zero in creation order and their quantity
//     is set to the designator count.
func (g *Grouper) Group(records []types.ComponentRecord) ([]types.LineItem, error) {
	order := make([]string, 0, len(records))
	byRef := make(map[string]types.ComponentRecord, len(records))

	for _, rec := range records {
		if _, seen := byRef[rec.Ref]; !seen {
			order = append(order, rec.Ref)
		} else {
			g.logger.Debug("Duplicate designator %s, keeping last record", rec.Ref)
		}
		byRef[rec.Ref] = rec
	}

	var items []types.LineItem
	index := make(map[groupKey]int)

	for _, ref := range order {
		rec := byRef[ref]

		id, reason := g.resolver.Resolve(rec)
		if reason != types.ReasonNone {
			if !g.policy.Allows(ref) {
				return nil, &GroupingIntegrityError{Ref: ref, Reason: reason}
			}
			g.logger.Info("Generic Part inferred for %s", ref)
			id = g.policy.Synthesize(rec)
		}

		key := groupKey{value: rec.Value, manufacturer: id.Manufacturer, partNumber: id.PartNumber}
		if i, ok := index[key]; ok {
			items[i].RefDes = append(items[i].RefDes, ref)
			continue
		}

		index[key] = len(items)
		items = append(items, types.LineItem{
			RefDes:       []string{ref},
			Value:        rec.Value,
			Manufacturer: id.Manufacturer,
			PartNumber:   id.PartNumber,
		})
	}

	for i := range items {
		items[i].Quantity = len(items[i].RefDes)
		items[i].Item = i
	}

	return items, nil
}
