package excel2xml

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

var (
	usableChar     = regexp.MustCompile(`[\p{L}\d_!?]`)
	illegalIDChar  = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)
	uuid4Pattern   = regexp.MustCompile(`(?i)[a-f0-9]{8}-?[a-f0-9]{4}-?4[a-f0-9]{3}-?[89ab][a-f0-9]{3}-?[a-f0-9]{12}`)
	xsdIDPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)
	idStartPattern = regexp.MustCompile(`^[A-Za-z_]`)
)

// CheckNotNA reports whether s carries a usable value, i.e. contains at
// least one letter, digit, underscore, "!" or "?".
func CheckNotNA(s string) bool {
	return usableChar.MatchString(s)
}

// MakeXSDIDCompatible turns a label into a valid xsd:ID.
// A leading character that is neither an ASCII letter nor an underscore is
// preceded by "_", every character outside [A-Za-z0-9_.-] becomes "_", and a
// random UUID is appended so that equal labels get distinct IDs.
func MakeXSDIDCompatible(s string) (string, error) {
	if !CheckNotNA(s) {
		return "", fmt.Errorf("%w: the input %q cannot be transformed to an xsd:ID", core.ErrInvalidValue, s)
	}
	res := s
	if !idStartPattern.MatchString(res) {
		res = "_" + res
	}
	res = illegalIDChar.ReplaceAllString(res, "_")
	return res + "_" + uuid.NewString(), nil
}

// MustXSDID is like MakeXSDIDCompatible but panics on unusable input.
// It is meant for hard-coded labels.
func MustXSDID(s string) string {
	id, err := MakeXSDIDCompatible(s)
	if err != nil {
		panic(err)
	}
	return id
}

// DerandomizeXSDID removes the random part added by MakeXSDIDCompatible and
// keeps all other modifications. With multiple set, s may be a whole
// document and every occurrence is removed; otherwise only the first one.
func DerandomizeXSDID(s string, multiple bool) (string, error) {
	if !CheckNotNA(s) {
		return "", fmt.Errorf("%w: the input %q cannot be derandomized", core.ErrInvalidValue, s)
	}
	if multiple {
		return uuid4Pattern.ReplaceAllString(s, ""), nil
	}
	loc := uuid4Pattern.FindStringIndex(s)
	if loc == nil {
		return s, nil
	}
	return s[:loc[0]] + s[loc[1]:], nil
}

// IsXSDID reports whether s is a syntactically valid xsd:ID as used by the
// import format.
func IsXSDID(s string) bool {
	return xsdIDPattern.MatchString(s)
}
