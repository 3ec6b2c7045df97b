package fields

// StandardBilling returns the host's default billing fields with their stock
// priorities. Optional fields are merged around these: anything that must
// render first uses a negative priority, anything that must render last uses
// one above 110.
func StandardBilling() []Descriptor {
	return []Descriptor{
		{Key: "billing_first_name", Kind: KindText, Label: "First name", Required: true, Priority: 10, Classes: []string{"form-row-first"}, Autocomplete: "given-name"},
		{Key: "billing_last_name", Kind: KindText, Label: "Last name", Required: true, Priority: 20, Classes: []string{"form-row-last"}, Autocomplete: "family-name"},
		{Key: "billing_company", Kind: KindText, Label: "Company name", Priority: 30, Classes: []string{"form-row-wide"}, Autocomplete: "organization"},
		{Key: "billing_country", Kind: KindCountry, Label: "Country / Region", Required: true, Priority: 40, Classes: []string{"form-row-wide", "address-field", "update_totals_on_change"}, Autocomplete: "country"},
		{Key: "billing_address_1", Kind: KindText, Label: "Street address", Required: true, Priority: 50, Classes: []string{"form-row-wide", "address-field"}, Placeholder: "House number and street name", Autocomplete: "address-line1"},
		{Key: "billing_address_2", Kind: KindText, Priority: 60, Classes: []string{"form-row-wide", "address-field"}, Placeholder: "Apartment, suite, unit, etc. (optional)", Autocomplete: "address-line2"},
		{Key: "billing_city", Kind: KindText, Label: "Town / City", Required: true, Priority: 70, Classes: []string{"form-row-wide", "address-field"}, Autocomplete: "address-level2"},
		{Key: "billing_state", Kind: KindState, Label: "State / County", Required: true, Priority: 80, Classes: []string{"form-row-wide", "address-field"}, Validate: []string{"state"}, Autocomplete: "address-level1"},
		{Key: "billing_postcode", Kind: KindText, Label: "Postcode / ZIP", Required: true, Priority: 90, Classes: []string{"form-row-wide", "address-field"}, Validate: []string{"postcode"}, Autocomplete: "postal-code"},
		{Key: "billing_phone", Kind: KindTel, Label: "Phone", Required: true, Priority: 100, Classes: []string{"form-row-wide"}, Validate: []string{"phone"}, Autocomplete: "tel"},
		{Key: "billing_email", Kind: KindEmail, Label: "Email address", Required: true, Priority: 110, Classes: []string{"form-row-wide"}, Validate: []string{"email"}, Autocomplete: "email"},
	}
}

// StandardCheckout returns a collection holding the standard billing section.
func StandardCheckout() Collection {
	return NewCollection(Section{Name: SectionBilling, Fields: StandardBilling()})
}
