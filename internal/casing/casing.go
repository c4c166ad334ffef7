// Package casing classifies identifiers and file names by casing style and
// derives rename suggestions between styles.
package casing

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Style is an identifier casing style.
type Style string

const (
	Kebab          Style = "kebab-case"
	Pascal         Style = "PascalCase"
	Camel          Style = "camelCase"
	ScreamingSnake Style = "SCREAMING_SNAKE_CASE"
)

var (
	reKebab          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	rePascal         = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	reCamel          = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	reScreamingSnake = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
)

// normalize returns the NFC form so that visually identical names compare
// the same regardless of how an editor composed them.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// IsKebab reports whether s is lowercase words joined by hyphens.
func IsKebab(s string) bool {
	return reKebab.MatchString(normalize(s))
}

// IsPascal reports whether s is capitalized words with no separators.
func IsPascal(s string) bool {
	return rePascal.MatchString(normalize(s))
}

// IsCamel reports whether s is PascalCase with a lowercase first letter.
func IsCamel(s string) bool {
	return reCamel.MatchString(normalize(s))
}

// IsScreamingSnake reports whether s is uppercase words joined by underscores.
func IsScreamingSnake(s string) bool {
	return reScreamingSnake.MatchString(normalize(s))
}

// Matches reports whether s follows the given style.
func Matches(s string, style Style) bool {
	switch style {
	case Kebab:
		return IsKebab(s)
	case Pascal:
		return IsPascal(s)
	case Camel:
		return IsCamel(s)
	case ScreamingSnake:
		return IsScreamingSnake(s)
	default:
		return false
	}
}

// SplitAffixes separates the marker characters JS identifiers carry around
// their words: a leading run of '$' and '_' and a trailing run of '_'.
// "$store" splits into "$", "store", "" and "__DEV__" into "__", "DEV", "__".
func SplitAffixes(name string) (prefix, core, suffix string) {
	core = strings.TrimLeft(name, "$_")
	prefix = name[:len(name)-len(core)]
	trimmed := strings.TrimRight(core, "_")
	return prefix, trimmed, core[len(trimmed):]
}

// MatchesIdentifier is Matches applied to the core of name. A name made of
// markers only matches every style.
func MatchesIdentifier(name string, style Style) bool {
	_, core, _ := SplitAffixes(name)
	return core == "" || Matches(core, style)
}

// ConvertIdentifier converts the core of name and keeps its affixes.
func ConvertIdentifier(name string, style Style) string {
	prefix, core, suffix := SplitAffixes(name)
	if core == "" {
		return name
	}
	converted := Convert(core, style)
	if converted == "" {
		return ""
	}
	return prefix + converted + suffix
}
