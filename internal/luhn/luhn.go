// Package luhn implements the mod-10 checksum used by payment card numbers.
//
// All functions expect a string of ASCII digits. Stripping separators is the
// caller's job; a non-digit byte is a programming error and makes the result
// meaningless.
package luhn

// Checksum returns the Luhn sum of digits modulo 10. Counting positions from
// the right starting at 1, odd positions are summed as-is and even positions
// are doubled, subtracting 9 when the doubled value exceeds 9.
func Checksum(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum % 10
}

// IsValid reports whether digits carries a correct check digit.
func IsValid(digits string) bool {
	return Checksum(digits) == 0
}

// CheckDigit returns the digit that, appended to prefix, makes it Luhn-valid.
func CheckDigit(prefix string) int {
	return (10 - Checksum(prefix+"0")) % 10
}

// AppendCheckDigit returns prefix followed by its check digit.
func AppendCheckDigit(prefix string) string {
	return prefix + string(rune('0'+CheckDigit(prefix)))
}
