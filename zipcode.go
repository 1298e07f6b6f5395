package dealerfinder

import "regexp"

var (
	zipRe        = regexp.MustCompile(`^\d{5}$`)
	addressZipRe = regexp.MustCompile(`[,\s](\d{5})(?:[,\s-]|$)`)
)

// ValidateZipCode returns an EINVALID error unless zip is exactly five digits.
func ValidateZipCode(zip string) error {
	if !zipRe.MatchString(zip) {
		return Errorf(EINVALID, "zip code must be exactly 5 digits")
	}
	return nil
}

// ExtractZipCode returns the 5-digit zip code embedded in a formatted US
// address, or "" if none is found.
func ExtractZipCode(address string) string {
	m := addressZipRe.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1]
}
