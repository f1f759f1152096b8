package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want Price
		str  string
	}{
		{"85.00", 8500, "85.00"},
		{"8", 800, "8.00"},
		{"12.5", 1250, "12.50"},
		{"0.05", 5, "0.05"},
		{" 120.00 ", 12000, "120.00"},
		{"99999999.99", MaxPrice, "99999999.99"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParsePrice(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.str, got.String())
		})
	}
}

func TestParsePriceRejects(t *testing.T) {
	for _, in := range []string{"", "-5", "+5", "1.234", "1.", ".5", "abc", "1.-5", "1,50", "1e3",
		"100000000", "100000000000000000", "99999999999999999999.99",
	} {
		_, err := ParsePrice(in)
		assert.Error(t, err, in)
	}
}

func TestParseKitchen(t *testing.T) {
	k, err := ParseKitchen("KITCHEN2")
	require.NoError(t, err)
	assert.Equal(t, Kitchen2, k)

	_, err = ParseKitchen("KITCHEN3")
	assert.Error(t, err)
}
