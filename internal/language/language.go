// Package language holds the list of translation targets offered to the
// user and the rules for turning a user-facing label into a language code.
package language

import (
	"fmt"
	"strings"
)

// Language is a translation target.
type Language struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

// Label renders the language the way it is presented for selection,
// e.g. "Русский (ru)".
func (l Language) Label() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.Code)
}

// Defaults returns the built-in target list.
func Defaults() []Language {
	return []Language{
		{Name: "Русский", Code: "ru"},
		{Name: "Английский", Code: "en"},
		{Name: "Немецкий", Code: "de"},
		{Name: "Французский", Code: "fr"},
	}
}

// ParseLabel extracts the code from a label: the last space-separated
// token with its surrounding parentheses removed.
func ParseLabel(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	return strings.TrimSuffix(strings.TrimPrefix(last, "("), ")")
}

// Resolve finds the language in list matching input, given either as a
// bare code ("de") or as a label ("Немецкий (de)"). Matching is
// case-insensitive.
func Resolve(list []Language, input string) (Language, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Language{}, fmt.Errorf("no target language selected")
	}

	code := input
	if strings.Contains(input, "(") {
		code = ParseLabel(input)
	}

	for _, l := range list {
		if strings.EqualFold(l.Code, code) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported target language %q", input)
}
