package dealerfinder

import "strings"

// Denylist is a fixed set of franchise and chain name keywords used to
// exclude non-independent dealers. Matching is case-insensitive substring
// matching, a deliberate heuristic rather than a classifier.
type Denylist []string

// DefaultDenylist returns the built-in franchise keyword list.
func DefaultDenylist() Denylist {
	return Denylist{
		"carmax",
		"carvana",
		"autonation",
		"drivetime",
		"enterprise car sales",
		"hertz car sales",
		"echopark",
		"vroom",
		"byrider",
		"penske",
		"lithia",
		"sonic automotive",
		"franchise",
		// Factory franchise stores routinely rank for "used car dealer"
		// searches despite not being independents.
		"toyota", "honda", "ford", "chevrolet", "nissan", "hyundai",
		"kia", "subaru", "volkswagen", "bmw", "mercedes", "audi",
		"lexus", "mazda", "dodge", "jeep", "ram ", "chrysler", "buick",
		"gmc", "cadillac", "volvo", "acura", "infiniti", "mitsubishi",
	}
}

// Matches reports whether the business name contains any denylisted keyword.
func (d Denylist) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range d {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Filter returns the listings whose names are not denylisted, preserving
// order.
func (d Denylist) Filter(listings []*Listing) []*Listing {
	kept := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if d.Matches(l.Name) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}
