package schema

import (
	"strings"
)

// Normalize joins the lines of the input with single spaces. Line breaks
// carry no meaning in either input form.
func Normalize(input string) string {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	return strings.Join(lines, " ")
}

// DetectForm reports FormEnglish when the text contains the "class called"
// anchor and FormDeclaration otherwise.
func DetectForm(text string) InputForm {
	if strings.Contains(text, classAnchor) {
		return FormEnglish
	}
	return FormDeclaration
}

// ParseForm converts a config or flag value into an InputForm
func ParseForm(name string) (InputForm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormAuto, true
	case "declaration", "decl", "cpp":
		return FormDeclaration, true
	case "english", "natural":
		return FormEnglish, true
	default:
		return FormAuto, false
	}
}
