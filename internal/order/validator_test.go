package order

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidItemName(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("Exists", "Veggie Taco").Return(true)
	catalog.On("Exists", "veg").Return(false)

	v := NewValidator(catalog)

	assert.True(t, v.IsValidItemName("Veggie Taco"))
	assert.False(t, v.IsValidItemName("veg"))
	catalog.AssertExpectations(t)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		lines []OrderLine
		want  []string
	}{
		"Valid": {
			lines: []OrderLine{{"Veggie Taco", 2}, {"Beef Taco", 1}},
		},
		"EmptyItemName": {
			lines: []OrderLine{{"", 4}},
			want: []string{
				"calculateTotal.orders[0].itemName : must not be blank",
				"calculateTotal.orders[0].itemName : The item name is not a valid menu item",
			},
		},
		"BlankItemName": {
			lines: []OrderLine{{" ", 4}},
			want: []string{
				"calculateTotal.orders[0].itemName  : must not be blank",
				"calculateTotal.orders[0].itemName  : The item name is not a valid menu item",
			},
		},
		"UnknownItemName": {
			lines: []OrderLine{{"veg", 4}},
			want:  []string{"calculateTotal.orders[0].itemName veg: The item name is not a valid menu item"},
		},
		"InvalidQuantity": {
			lines: []OrderLine{{"Veggie Taco", -2}},
			want:  []string{"calculateTotal.orders[0].quantity -2: must be greater than or equal to 1"},
		},
		"ZeroQuantity": {
			lines: []OrderLine{{"Veggie Taco", 0}},
			want:  []string{"calculateTotal.orders[0].quantity 0: must be greater than or equal to 1"},
		},
		"QuantityAtMax": {
			lines: []OrderLine{{"Veggie Taco", MaxQuantity}},
		},
		"QuantityAboveMax": {
			lines: []OrderLine{{"Veggie Taco", MaxQuantity + 1}},
			want:  []string{"calculateTotal.orders[0].quantity 1001: must be less than or equal to 1000"},
		},
		"EmptyOrder": {
			lines: []OrderLine{},
			want:  []string{"calculateTotal.orders []: must not be empty"},
		},
		"NilOrder": {
			lines: nil,
			want:  []string{"calculateTotal.orders []: must not be empty"},
		},
		"AllViolationsCollected": {
			lines: []OrderLine{{"Veggie Taco", 1}, {"veg", 0}, {"", -1}},
			want: []string{
				"calculateTotal.orders[1].itemName veg: The item name is not a valid menu item",
				"calculateTotal.orders[2].itemName : must not be blank",
				"calculateTotal.orders[2].itemName : The item name is not a valid menu item",
				"calculateTotal.orders[1].quantity 0: must be greater than or equal to 1",
				"calculateTotal.orders[2].quantity -1: must be greater than or equal to 1",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := NewValidator(tacoCatalog()).Validate(tc.lines)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.want, verr.Messages())
		})
	}
}

func TestValidate_RejectsQuantitiesThatWouldOverflow(t *testing.T) {
	lines := []OrderLine{{"Veggie Taco", math.MaxInt}, {"Veggie Taco", 1}}

	err := NewValidator(tacoCatalog()).Validate(lines)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		fmt.Sprintf("calculateTotal.orders[0].quantity %d: must be less than or equal to 1000", math.MaxInt),
	}, verr.Messages())
}

func TestValidate_ChecksEveryLine(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("Exists", "Veggie Taco").Return(true).Twice()

	err := NewValidator(catalog).Validate([]OrderLine{{"Veggie Taco", 2}, {"Veggie Taco", 2}})
	require.NoError(t, err)

	catalog.AssertExpectations(t)
	catalog.AssertNotCalled(t, "PriceOf", "Veggie Taco")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []Violation{
		{Field: "calculateTotal.orders[0].quantity", Value: -2, Message: "must be greater than or equal to 1"},
	}}

	assert.Equal(t, "invalid order: calculateTotal.orders[0].quantity -2: must be greater than or equal to 1", err.Error())
}
