// Package form holds the per-session address form: the single source of
// truth merged from field edits, typeahead and autofill resolutions, and
// marker drags, plus the registry of live sessions.
package form

// Canonical field names shared between the form record, the autofill
// detector, and the HTTP surface.
const (
	FieldAddressLineOne = "addressLineOne"
	FieldAddressLineTwo = "addressLineTwo"
	FieldCity           = "city"
	FieldProvince       = "province"
	FieldPostalCode     = "postalCode"
	FieldCountry        = "country"
)

// Field describes one entry of the default field catalog served to clients.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
}

// DefaultFields is the catalog a client renders when it does not bring its
// own field definitions.
func DefaultFields() []Field {
	return []Field{
		{Name: FieldAddressLineOne, Label: "Address", Placeholder: "Street address"},
		{Name: FieldAddressLineTwo, Label: "Apt, suite, etc.", Placeholder: "Apartment, suite, unit"},
		{Name: FieldCity, Label: "City"},
		{Name: FieldProvince, Label: "Province / State"},
		{Name: FieldPostalCode, Label: "Postal code"},
		{Name: FieldCountry, Label: "Country"},
	}
}
