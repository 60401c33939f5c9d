package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldText(t *testing.T) {
	c := ComponentRecord{
		Ref:       "U1",
		HasFields: true,
		Fields: []Field{
			{Name: "Manufacturer", Text: "ST"},
			{Name: "Manufacturer", Text: "ignored"},
		},
	}

	text, ok := c.FieldText("Manufacturer")
	assert.True(t, ok)
	assert.Equal(t, "ST", text)

	_, ok = c.FieldText("manufacturer")
	assert.False(t, ok)
}

func TestMissingReasonString(t *testing.T) {
	assert.Equal(t, "missing-fields-block", ReasonNoFieldsBlock.String())
	assert.Equal(t, "missing-manufacturer", ReasonNoManufacturer.String())
	assert.Equal(t, "missing-part-number", ReasonNoPartNumber.String())
	assert.Equal(t, "MissingReason(42)", MissingReason(42).String())
}

func TestLineItemString(t *testing.T) {
	li := LineItem{RefDes: []string{"R1", "R2"}, Value: "10k", Manufacturer: "Yageo", PartNumber: "RC0603", Quantity: 2}
	assert.Equal(t, `{refdes_list: [R1 R2], value: "10k", manufacturer: "Yageo", part_number: "RC0603", qty: 2, item: 0}`, li.String())
}
