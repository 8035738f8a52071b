package shipping

import "strings"

// Address is a shipping address as supplied by the storefront
type Address struct {
	Name    string `json:"name"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// HasDestination reports whether the address is usable as a rate-quote
// destination. The carrier API needs at least a country to quote.
func (a Address) HasDestination() bool {
	return strings.TrimSpace(a.Country) != ""
}
