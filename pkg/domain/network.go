package domain

import "strings"

// NetworkID is the unique key of a card network in the catalog (e.g. "visa").
type NetworkID string

// RandomNetwork is a pseudo identifier accepted by batch generation and listed
// for UI convenience. It is not a real network and never matches a number.
const RandomNetwork NetworkID = "random"

// Network describes the numbering rules of a single card scheme.
type Network struct {
	// ID is the catalog key.
	ID NetworkID `json:"id"`
	// Name is the human-readable display name reported on records and validation results.
	Name string `json:"name"`
	// BINs is the ordered set of issuer prefixes; every entry is digits only.
	BINs []string `json:"bins"`
	// Lengths is the set of valid total number lengths. The first entry is the
	// default length used when a caller pins a literal BIN.
	Lengths []int `json:"lengths"`
	// CVVLength is the number of digits of a generated CVV.
	CVVLength int `json:"cvvLength"`
}

// MatchesBIN reports whether bin starts with one of the network prefixes.
// A bin shorter than a prefix never matches it.
func (n Network) MatchesBIN(bin string) bool {
	for _, prefix := range n.BINs {
		if len(bin) >= len(prefix) && strings.HasPrefix(bin, prefix) {
			return true
		}
	}

	return false
}

// IsValidLength reports whether length is one of the network's valid lengths.
func (n Network) IsValidLength(length int) bool {
	for _, l := range n.Lengths {
		if l == length {
			return true
		}
	}

	return false
}

// NetworkEntry is a (identifier, display name) pair as exposed to callers that
// list the selectable networks.
type NetworkEntry struct {
	ID   NetworkID `json:"id"`
	Name string    `json:"name"`
}
