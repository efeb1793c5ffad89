// Package names converts a user-supplied entity name into the casing
// variants every generated artifact needs: snake_case for paths,
// PascalCase for types, camelCase for identifiers.
package names

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// words splits s on runs of '_', '-', or whitespace. Empty segments are
// dropped, so adjacent separators never yield empty words.
func words(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// capitalize uppercases the first rune and lowercases the rest. Acronyms
// are not preserved: "XML" becomes "Xml". Deliberately non-locale-aware.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ToPascal returns the PascalCase form of s: each separator-split word
// capitalized and concatenated. ToPascal("user_profile") == "UserProfile".
func ToPascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamel returns the camelCase form of s: the first word fully lowercased,
// remaining words capitalized. ToCamel("user_profile") == "userProfile".
func ToCamel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(ws[0]))
	for _, w := range ws[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToSnake returns the snake_case form of s. Unlike ToPascal and ToCamel it
// operates on the raw input: an underscore is inserted before each uppercase
// letter, separator runs collapse to a single underscore, the result is
// lowercased and a leading underscore stripped. A trailing underscore is
// kept as-is. Idempotent on input already in snake_case.
func ToSnake(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case isSeparator(r):
			b.WriteByte('_')
		case unicode.IsUpper(r):
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.TrimPrefix(out, "_")
}

// ToPluralCamel returns the pluralized camelCase form, used for collection
// fields in generated controllers ("user_profile" -> "userProfiles").
func ToPluralCamel(s string) string {
	return inflection.Plural(ToCamel(s))
}

// ToPluralPascal returns the pluralized PascalCase form, used for
// collection accessor names ("user_profile" -> "UserProfiles").
func ToPluralPascal(s string) string {
	return inflection.Plural(ToPascal(s))
}

// ToPluralSnake returns the pluralized snake_case form, used for REST
// endpoint paths ("user_profile" -> "user_profiles").
func ToPluralSnake(s string) string {
	return inflection.Plural(ToSnake(s))
}

// IsBlank reports whether s is empty or whitespace-only after trimming.
// Generation operations reject blank names before any rendering or I/O.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
