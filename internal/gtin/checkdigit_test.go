package gtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "UPC-A body", body: "03600029145", want: 2},
		{name: "UPC-A body all digits significant", body: "01234567890", want: 5},
		{name: "EAN-8 body", body: "9638507", want: 4},
		{name: "GTIN-14 body", body: "0001234567890", want: 5},
		{name: "single digit", body: "0", want: 0},
		{name: "empty body", body: "", want: 0},
		{name: "non-digit input", body: "12a45", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCheckDigit(tt.body))
		})
	}
}

func TestIsValidGTIN(t *testing.T) {
	tests := []struct {
		name string
		full string
		want bool
	}{
		{name: "valid UPC-A", full: "036000291452", want: true},
		{name: "UPC-A wrong check digit", full: "036000291453", want: false},
		{name: "valid EAN-13", full: "0036000291452", want: true},
		{name: "valid EAN-8", full: "96385074", want: true},
		{name: "valid GTIN-14", full: "00012345678905", want: true},
		{name: "unsupported length", full: "0360002914", want: false},
		{name: "non-digit characters", full: "03600029145x", want: false},
		{name: "empty string", full: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGTIN(tt.full))
		})
	}
}

// The validity predicate and the check digit computation must agree for
// every supported length.
func TestIsValidGTIN_MatchesComputedDigit(t *testing.T) {
	for _, full := range []string{"96385074", "036000291452", "0036000291452", "00012345678905"} {
		body := full[:len(full)-1]
		want := ComputeCheckDigit(body)
		assert.True(t, IsValidGTIN(body+string(rune('0'+want))), "body %s + computed digit", body)
		wrong := (want + 1) % 10
		assert.False(t, IsValidGTIN(body+string(rune('0'+wrong))), "body %s + wrong digit", body)
	}
}
