package schema

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	classAnchor    = "class called"
	populateAnchor = "populate"
)

// withAnchorRegex matches "with" as a whole word so class names such as
// "Swithin" do not end the name early.
var withAnchorRegex = regexp.MustCompile(`\bwith\b`)

// ParseEnglish extracts a ClassInfo from a sentence such as
// "Create a class called Car with make, model and year, then populate it."
// The name sits between "class called" and "with"; the attribute list runs
// from "with" to "populate" (or the end of the text).
func ParseEnglish(text string) (*ClassInfo, error) {
	classPos := strings.Index(text, classAnchor)
	if classPos < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingAnchor, classAnchor)
	}
	nameStart := classPos + len(classAnchor)

	loc := withAnchorRegex.FindStringIndex(text[nameStart:])
	if loc == nil {
		return nil, fmt.Errorf("%w: %q after %q", ErrMissingAnchor, "with", classAnchor)
	}
	withStart, withEnd := nameStart+loc[0], nameStart+loc[1]

	section := text[withEnd:]
	if end := strings.Index(section, populateAnchor); end >= 0 {
		section = section[:end]
	}

	return &ClassInfo{
		Name:       strings.ReplaceAll(strings.TrimSpace(text[nameStart:withStart]), " ", ""),
		Attributes: splitAttributes(section),
		Methods:    []string{},
		Form:       FormEnglish,
	}, nil
}

// splitAttributes turns "make, model and year, then" into make, model, year.
// "and" is a separator, a single trailing comma is stripped, and the list
// stops at "then" or after a word ending a sentence.
func splitAttributes(section string) []Attribute {
	attrs := []Attribute{}
	for _, word := range strings.Fields(section) {
		if word == "and" {
			continue
		}
		if word == "then" {
			break
		}

		last := strings.HasSuffix(word, ".")
		word = strings.TrimSuffix(word, ".")
		word = strings.TrimSuffix(word, ",")

		if word != "" {
			attrs = append(attrs, Attribute{Name: word})
		}
		if last {
			break
		}
	}
	return attrs
}
