package domain

// IncludeCountriesFilter decides which countries a typeahead query is
// constrained to. When restriction to the currently selected country is on
// and the form has a country selected, the query is restricted to exactly
// that country, overriding the broader allow-list. Otherwise the configured
// allow-list passes through unchanged (nil means unrestricted).
func IncludeCountriesFilter(restrictToCurrent bool, currentCountry string, allowedCountries []string) []string {
	if restrictToCurrent && currentCountry != "" {
		return []string{currentCountry}
	}
	return allowedCountries
}
