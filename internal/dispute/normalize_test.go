package dispute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestMappings(t *testing.T) *Mappings {
	t.Helper()
	m, err := LoadMappings("")
	require.NoError(t, err)
	return m
}

func TestNormalizeOrderNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"strips leading zeros", "007", "7"},
		{"trims whitespace", "  12345  ", "12345"},
		{"plain number unchanged", "8842", "8842"},
		{"zero stays zero", "0", "0"},
		{"alphanumeric passes through", "ABC-123", "ABC-123"},
		{"empty yields empty", "", ""},
		{"whitespace only yields empty", "   ", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeOrderNumber(tc.in))
		})
	}
}

func TestNormalizeRestaurantName(t *testing.T) {
	t.Parallel()
	m := loadTestMappings(t)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"known variant", "Bode do Nô (Af)", "Bode do Nô Afogados"},
		{"variant is case-insensitive", "bode do nô (af)", "Bode do Nô Afogados"},
		{"variant with padding", "  Bode do Nô (Im)  ", "Bode do Nô Imbiribeira"},
		{"canonical maps to itself", "Burguer do Nô", "Burguer do Nô"},
		{"unknown name passes through trimmed", "  Churrascaria Boi Nobre ", "Churrascaria Boi Nobre"},
		{"empty falls back", "", "Desconhecido"},
		{"whitespace only falls back", "   ", "Desconhecido"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, m.NormalizeRestaurantName(tc.in))
		})
	}
}

func TestNormalizeRestaurantNameIsIdempotent(t *testing.T) {
	t.Parallel()
	m := loadTestMappings(t)

	inputs := []string{
		"Bode do Nô (Af)",
		"Bode do No Imbiribeira",
		"Burguer do Nô Delivery",
		"Italiano Pizza",
		"Nome Qualquer",
		"",
	}
	for _, in := range inputs {
		once := m.NormalizeRestaurantName(in)
		twice := m.NormalizeRestaurantName(once)
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", in)
	}
}

func TestIdentityKey(t *testing.T) {
	t.Parallel()
	m := loadTestMappings(t)

	t.Run("equivalent inputs collapse to one key", func(t *testing.T) {
		t.Parallel()
		a := m.IdentityKey("007", "Bode do Nô (Af)")
		b := m.IdentityKey("7", "  bode do nô afogados ")
		assert.Equal(t, a, b)
	})

	t.Run("same order at two branches stays distinct", func(t *testing.T) {
		t.Parallel()
		af := m.IdentityKey("1234", "Bode do Nô Afogados")
		im := m.IdentityKey("1234", "Bode do Nô Imbiribeira")
		assert.NotEqual(t, af, im)
	})

	t.Run("key shape", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "42|burguer do nô", m.IdentityKey("042", "Burguer do No"))
	})
}
