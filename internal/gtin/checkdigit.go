// Package gtin implements GS1 identifier normalization: check digit
// validation, cross-representation conversion (UPC-A/EAN-13/GTIN-14),
// and UPC-E expansion.
package gtin

// ComputeCheckDigit computes the GS1 mod-10 check digit for a digit string
// that does not yet include one. Weights alternate 3 and 1 walking
// right-to-left, starting with 3 on the rightmost digit.
// Returns -1 if body contains a non-digit character.
func ComputeCheckDigit(body string) int {
	sum := 0
	weight := 3
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return -1
		}
		sum += int(c-'0') * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	return (10 - sum%10) % 10
}

// IsValidGTIN reports whether full is a well-formed GTIN: all digits,
// length 8, 12, 13, or 14, with a correct trailing check digit.
func IsValidGTIN(full string) bool {
	switch len(full) {
	case 8, 12, 13, 14:
	default:
		return false
	}
	check := ComputeCheckDigit(full[:len(full)-1])
	if check < 0 {
		return false
	}
	last := full[len(full)-1]
	if last < '0' || last > '9' {
		return false
	}
	return int(last-'0') == check
}
