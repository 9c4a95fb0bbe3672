package domain

// Currency is an ISO 4217 code with a display name.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
