// Package validation checks the two lookup inputs: the national identity
// number (cédula) and the vehicle license plate. Validators never return
// errors; a failed check is reported through Result.
package validation

import (
	"strings"
	"unicode"
)

// Result is produced fresh by every call. Reason is empty when Valid is true.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
