package verification

import (
	"fmt"
	"strings"
)

// IDNumberLength is the required length of a government ID number.
const IDNumberLength = 12

// ValidateIDNumber checks that the number is exactly twelve digits and that
// its digit-weighted checksum holds: the sum of the first eleven digits,
// each multiplied by its 1-based position, taken mod 10, must equal the
// twelfth digit.
func ValidateIDNumber(number string) error {
	number = strings.TrimSpace(number)
	if len(number) != IDNumberLength {
		return fmt.Errorf("ID number must be exactly %d digits", IDNumberLength)
	}
	sum := 0
	for i, ch := range number {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("ID number must contain only digits")
		}
		if i < IDNumberLength-1 {
			sum += (i + 1) * int(ch-'0')
		}
	}
	checkDigit := int(number[IDNumberLength-1] - '0')
	if sum%10 != checkDigit {
		return fmt.Errorf("ID number failed checksum validation")
	}
	return nil
}

// MaskIDNumber hides all but the last four digits.
func MaskIDNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}
