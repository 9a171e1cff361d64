package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type quantityTestCase struct {
	input    string
	expected int64
	valid    bool
}

func TestParseQuantity(t *testing.T) {
	cases := []quantityTestCase{
		{"5", 5, true},
		{"0", 0, true},
		{" 12 ", 12, true},
		{"007", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"five", 0, false},
		{"3kg", 0, false},
		{"2.5", 0, false},
		{"-4", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ParseQuantity(c.input), "quantity %q", c.input)

		n, ok := ParseQuantityStrict(c.input)
		assert.Equal(t, c.valid, ok, "validity of %q", c.input)
		assert.Equal(t, c.expected, n, "strict quantity %q", c.input)
	}
}
