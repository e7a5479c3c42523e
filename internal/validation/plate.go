package validation

import (
	"regexp"
	"strings"
)

const (
	ReasonPlateFormat           = "invalid plate format, valid examples: ABC-123, ABC123, ABC-1234, ABC1234, ABC-12A"
	ReasonPlateIdenticalLetters = "letters cannot all be identical"
)

// plateShapes are mutually exclusive, so their order does not matter.
var plateShapes = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{3}-?[0-9]{3}$`),      // car
	regexp.MustCompile(`^[A-Z]{3}-?[0-9]{4}$`),      // car, special series
	regexp.MustCompile(`^[A-Z]{3}-?[0-9]{2}[A-Z]$`), // motorcycle
}

// ValidatePlate checks a license plate against the accepted car and
// motorcycle shapes. The input is compared without whitespace and in upper
// case, with the hyphen optional.
func ValidatePlate(input string) Result {
	plate := strings.ToUpper(stripWhitespace(input))

	if !matchesPlateShape(plate) {
		return fail(ReasonPlateFormat)
	}

	// Only reached for well-shaped plates: AAA123 fits the grammar but is
	// not issued.
	letters := plateLetters(plate)
	if len(letters) >= 3 && isRepeated(letters) {
		return fail(ReasonPlateIdenticalLetters)
	}

	return ok()
}

func matchesPlateShape(plate string) bool {
	for _, shape := range plateShapes {
		if shape.MatchString(plate) {
			return true
		}
	}
	return false
}

func plateLetters(plate string) string {
	var b strings.Builder
	for i := 0; i < len(plate); i++ {
		if plate[i] >= 'A' && plate[i] <= 'Z' {
			b.WriteByte(plate[i])
		}
	}
	return b.String()
}
