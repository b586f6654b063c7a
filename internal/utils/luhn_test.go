package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLuhn(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   bool
	}{
		{"visa", "4532015112830366", true},
		{"visa with spaces", "4532 0151 1283 0366", true},
		{"visa with dashes", "4532-0151-1283-0366", true},
		{"one digit changed", "4532015112830367", false},
		{"empty", "", false},
		{"letters only", "abcd", false},
		{"twelve digits", "000000000000", false},
		{"thirteen zeros", "0000000000000", true},
		{"nineteen digits", "4111111111111111110", true},
		{"twenty zeros", "00000000000000000000", false},
		{"amex", "378282246310005", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidLuhn(tc.number))
		})
	}
}

func TestValidLuhnRejectsEveryAlteredDigit(t *testing.T) {
	valid := "4532015112830366"
	for i := range valid {
		b := []byte(valid)
		b[i] = '0' + (b[i]-'0'+1)%10
		assert.False(t, ValidLuhn(string(b)), "altered position %d", i)
	}
}
