package validation

const (
	identityMinDigits = 6
	identityMaxDigits = 10
)

const (
	ReasonIdentityDigitsOnly = "must contain only digits"
	ReasonIdentityLength     = "must be between 6 and 10 digits"
	ReasonIdentityRepeated   = "must not be a repeated-digit sequence"
)

// ValidateIdentityNumber checks a cédula. Whitespace anywhere in the input is
// ignored; leading zeros are kept and no checksum is applied.
func ValidateIdentityNumber(input string) Result {
	digits := stripWhitespace(input)

	if digits == "" || !isASCIIDigits(digits) {
		return fail(ReasonIdentityDigitsOnly)
	}

	if len(digits) < identityMinDigits || len(digits) > identityMaxDigits {
		return fail(ReasonIdentityLength)
	}

	if isRepeated(digits) {
		return fail(ReasonIdentityRepeated)
	}

	return ok()
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isRepeated expects a non-empty ASCII string.
func isRepeated(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
