package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeight(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"comma decimal", "1234,5", "1234.5"},
		{"comma decimal with unit", "1234,5 kg", "1234.5"},
		{"thousands period with comma", "21.500,5 kg", "21500.5"},
		{"plain integer", "18000", "18000"},
		{"period decimal kept", "1234.5", "1234.5"},
		{"empty", "", "0"},
		{"no digits", "n/a", "0"},
		{"leading text", "approx 500 kg", "500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeWeight(tc.raw))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"12-10-2025", "12-10-2025", true},
		{"12/10/2025", "12-10-2025", true},
		{"2025-10-12", "12-10-2025", true},
		{"10/12/25", "12-10-2025", true},
		{"12 October 2025", "12-10-2025", true},
		{"", "", false},
		{"tomorrow", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeDate(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestBoolString(t *testing.T) {
	assert.Equal(t, "Waar", BoolString(true))
	assert.Equal(t, "Onwaar", BoolString(false))
}

func TestDetectHazard(t *testing.T) {
	t.Run("un number", func(t *testing.T) {
		hazardous, un := DetectHazard([]string{"Cargo: chemicals", "UN 1263 class 3"})
		assert.True(t, hazardous)
		assert.Equal(t, "UN1263", un)
	})

	t.Run("marker without un number", func(t *testing.T) {
		hazardous, un := DetectHazard([]string{"ADR shipment"})
		assert.True(t, hazardous)
		assert.Empty(t, un)
	})

	t.Run("marker inside a word does not trigger", func(t *testing.T) {
		hazardous, _ := DetectHazard([]string{"MADRID terminal"})
		assert.False(t, hazardous)
	})

	t.Run("clean cargo", func(t *testing.T) {
		hazardous, un := DetectHazard([]string{"Cargo: bakery goods"})
		assert.False(t, hazardous)
		assert.Empty(t, un)
	})
}

func TestSplitAddressLine(t *testing.T) {
	name, address, postcode, city, country := splitAddressLine("Bakkerij Jansen, Broodstraat 2, 3011 AB Rotterdam, NL")
	assert.Equal(t, "Bakkerij Jansen", name)
	assert.Equal(t, "Broodstraat 2", address)
	assert.Equal(t, "3011 AB", postcode)
	assert.Equal(t, "Rotterdam", city)
	assert.Equal(t, "NL", country)
}

func TestSplitAddressLineNameOnly(t *testing.T) {
	name, address, postcode, city, country := splitAddressLine("Havenbedrijf Noord")
	assert.Equal(t, "Havenbedrijf Noord", name)
	assert.Empty(t, address)
	assert.Empty(t, postcode)
	assert.Empty(t, city)
	assert.Empty(t, country)
}

func TestSplitAddressLineWithoutPostcode(t *testing.T) {
	name, address, _, city, _ := splitAddressLine("Depot West, Kadeweg 9, Antwerpen")
	assert.Equal(t, "Depot West", name)
	assert.Equal(t, "Kadeweg 9", address)
	assert.Equal(t, "Antwerpen", city)
}

func TestLines(t *testing.T) {
	lines := Lines("first\n\n  second  \n\t\nthird\n")
	require.Equal(t, []string{"first", "second", "third"}, lines)
}
