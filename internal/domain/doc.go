// Package domain models structured addresses and the shared state of an
// address-entry form session.
//
// # Address Data Conventions
//
// Positions are WGS-84 [longitude, latitude] pairs, in that order, matching
// the Geo Places wire format. Stored positions are serialized as a
// comma-joined "lng,lat" string with six decimal places (roughly 0.1m of
// precision); see [PositionToString].
//
// Country codes are ISO 3166-1 alpha-2. The static [Countries] table carries
// each country's centroid (used to center the map when exactly one country is
// allowed) and a Supported marker: in supported countries the backend returns
// a structured street number and street, so the first address line is composed
// as "<number> <street>"; everywhere else the backend's full label is used
// verbatim. See [ComposeAddressLineOne].
//
// # Form State Semantics
//
// AddressFormData is one form session's record. Patches are shallow merges:
// only fields present in the patch change, so a country change never clears a
// typed street address. A typeahead selection is the exception and overwrites
// the structured fields wholesale, except AddressLineTwo (apartment/suite is
// user-supplied and never returned by the backend).
//
// AdjustedPosition is set only by a manual marker drag and, when present,
// wins over OriginalPosition for marker placement. Reset clears every field
// in one operation so the marker, viewport, and fields empty together.
package domain
