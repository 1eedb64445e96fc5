package gtin

import (
	"sort"
	"strings"
)

// Candidate is one normalized representation of a scanned identifier.
// The same physical product can be encoded as UPC-E, UPC-A, EAN-13, or
// GTIN-14; candidates enumerate the equivalent forms worth looking up.
type Candidate struct {
	Code            string
	ValidCheckDigit bool
}

// CandidatesFor turns a raw scanned or typed string into an ordered,
// deduplicated list of lookup candidates. Candidates with a valid check
// digit sort first; generation order is the tie-break. Returns nil when
// no usable digit run can be extracted.
func CandidatesFor(raw string) []Candidate {
	digits := extractDigits(stripSymbologyPrefix(raw))
	if digits == "" {
		return nil
	}

	var codes []string
	switch len(digits) {
	case 13:
		// An EAN-13 with a leading zero is numerically a UPC-A; the UPC-A
		// form goes first because catalogs index it more broadly.
		if digits[0] == '0' {
			codes = append(codes, digits[1:])
		}
		codes = append(codes, digits)
	case 12:
		codes = append(codes, digits, "0"+digits)
	case 14:
		codes = append(codes, digits)
		if digits[0] == '0' {
			ean := digits[1:]
			codes = append(codes, ean)
			if ean[0] == '0' {
				codes = append(codes, ean[1:])
			}
		}
	case 8:
		codes = append(codes, digits)
		if upca, ok := ExpandUPCE(digits); ok {
			codes = append(codes, upca, "0"+upca)
		}
	default:
		return nil
	}

	seen := make(map[string]bool, len(codes))
	candidates := make([]Candidate, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		candidates = append(candidates, Candidate{
			Code:            code,
			ValidCheckDigit: IsValidGTIN(code),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ValidCheckDigit && !candidates[j].ValidCheckDigit
	})

	return candidates
}

// ExpandUPCE expands an 8-digit UPC-E code into its 12-digit UPC-A form.
// The number system digit must be 0 or 1. The trailing check digit is
// carried through unchanged; scanners sometimes misreport it, so callers
// flag rather than reject an expansion whose check digit does not verify.
func ExpandUPCE(code string) (string, bool) {
	if len(code) != 8 || !allDigits(code) {
		return "", false
	}
	if code[0] != '0' && code[0] != '1' {
		return "", false
	}

	n := code[:1]
	x1, x2, x3, x4, x5, x6 := code[1:2], code[2:3], code[3:4], code[4:5], code[5:6], code[6:7]
	check := code[7:]

	var upca string
	switch x6 {
	case "0", "1", "2":
		upca = n + x1 + x2 + x6 + "0000" + x3 + x4 + x5 + check
	case "3":
		upca = n + x1 + x2 + x3 + "00000" + x4 + x5 + check
	case "4":
		upca = n + x1 + x2 + x3 + x4 + "00000" + x5 + check
	default:
		upca = n + x1 + x2 + x3 + x4 + x5 + "0000" + x6 + check
	}

	if len(upca) != 12 {
		return "", false
	}
	return upca, true
}

// stripSymbologyPrefix removes an AIM-style symbology identifier
// (a "]" marker plus two more characters, e.g. "]C1") and surrounding
// whitespace from scanner output.
func stripSymbologyPrefix(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 3 && s[0] == ']' {
		s = strings.TrimSpace(s[3:])
	}
	return s
}

// extractDigits returns the longest consecutive run of digit characters,
// preferring the earliest run on ties.
func extractDigits(s string) string {
	best := ""
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if run := s[start:i]; len(run) > len(best) {
				best = run
			}
			start = -1
		}
	}
	return best
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
