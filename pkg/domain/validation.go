package domain

// Reason is a human-readable classification attached to a ValidationResult.
// Reasons are mutually exclusive; when several checks fail the first one in
// the order below is reported.
type Reason string

const (
	// ReasonValid means the number passed every check.
	ReasonValid Reason = "valid"
	// ReasonInvalidLength means the normalized number is outside 13..19 digits.
	ReasonInvalidLength Reason = "length invalid"
	// ReasonLuhnFailed means the Luhn checksum is not zero.
	ReasonLuhnFailed Reason = "luhn check failed"
	// ReasonUnknownNetwork means no catalog network claims the number.
	ReasonUnknownNetwork Reason = "network unrecognized"
)

// ValidationResult classifies a caller supplied card number.
type ValidationResult struct {
	Valid     bool `json:"valid"`
	LuhnValid bool `json:"luhn_valid"`
	// Network is the detected network display name, nil when none matched or
	// detection was skipped.
	Network *string `json:"network"`
	// Length is the number of digits left after stripping non-digits.
	Length int    `json:"length"`
	Reason Reason `json:"reason"`
}
