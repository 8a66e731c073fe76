package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTravelDate(t *testing.T) {
	valid := map[string]string{
		"05/03/2026":   "05/03/2026",
		"5/3/2026":     "05/03/2026",
		" 29/02/2028 ": "29/02/2028",
		"31/12/2025":   "31/12/2025",
	}
	for in, want := range valid {
		got, ok := ParseTravelDate(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	invalid := []string{
		"", "tomorrow", "31/02/2026", "29/02/2027", "2026-03-05",
		"05-03-2026", "13/13/2026", "05/03/26", "05/03/2026 10:00", "00/01/2026",
		"01/01/0000", "29/02/0000",
	}
	for _, in := range invalid {
		_, ok := ParseTravelDate(in)
		assert.False(t, ok, in)
	}
}

func TestParsePartyCount(t *testing.T) {
	p, ok := ParsePartyCount("2 1 0")
	assert.True(t, ok)
	assert.Equal(t, 2, p.Adults)
	assert.Equal(t, 1, p.Kids)
	assert.Equal(t, 0, p.Infants)

	p, ok = ParsePartyCount("  3   0  2 ")
	assert.True(t, ok)
	assert.Equal(t, 3, p.Adults)
	assert.Equal(t, 2, p.Infants)

	for _, in := range []string{"", "2", "2 1", "2 1 0 0", "two one zero", "2 -1 0", "2.5 1 0"} {
		_, ok := ParsePartyCount(in)
		assert.False(t, ok, in)
	}
}

func TestParseBudget(t *testing.T) {
	v, ok := ParseBudget("250")
	assert.True(t, ok)
	assert.Equal(t, 250, v)

	for _, in := range []string{"", "0", "-5", "+5", "12.5", "AED 200", "1e3"} {
		_, ok := ParseBudget(in)
		assert.False(t, ok, in)
	}
}

func TestParseSelection(t *testing.T) {
	idx, ok := ParseSelection("2", 3)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	for _, in := range []string{"0", "4", "x", ""} {
		_, ok := ParseSelection(in, 3)
		assert.False(t, ok, in)
	}
}
