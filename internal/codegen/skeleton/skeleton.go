// Package skeleton renders a ClassInfo as a class skeleton in any target
// whose shape can be described by a Style table. The python, cpp and java
// generators are thin wrappers around Generate.
package skeleton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okra-platform/skelgen/internal/codegen/writer"
	"github.com/okra-platform/skelgen/internal/schema"
)

// ErrEmptyClassName is returned for a ClassInfo without a name
var ErrEmptyClassName = errors.New("class name is empty")

// Style describes how one target language spells a class skeleton.
// Format strings take the arguments noted on each field.
type Style struct {
	// Indent is one level of indentation
	Indent string

	// ClassOpen starts the class (name); ClassClose ends it and may be empty
	// for indentation-delimited targets
	ClassOpen  string
	ClassClose string

	// Access is written right after ClassOpen at class level, e.g. "public:"
	Access string

	// Member declares a field (type, name). Empty when the target only
	// assigns members inside the constructor.
	Member string

	// UntypedMemberType is the declared type of members that come from
	// English input, e.g. "std::string"
	UntypedMemberType string

	// Constructor opens the constructor (name, which may go unused);
	// BlockClose ends it and any other block, empty for
	// indentation-delimited targets
	Constructor string
	BlockClose  string

	// Assign sets a member inside the constructor (name, value)
	Assign string

	// Placeholder is the no-op statement used for an otherwise empty body
	Placeholder string

	// MethodStub is a one-line empty method (name). When empty, MethodOpen
	// (name) is used as a block holding Placeholder.
	MethodStub string
	MethodOpen string

	// Types maps declared types to target types. Unmapped types pass through.
	Types map[string]string

	// Defaults holds the literal for each kind of default value
	Defaults map[schema.DefaultKind]string

	// Unset is the sentinel assigned to untyped members in the constructor
	Unset string
}

// TypeOf maps a declared type to the target type
func (s *Style) TypeOf(declared string) string {
	if mapped, ok := s.Types[declared]; ok {
		return mapped
	}
	return declared
}

// DefaultFor returns the initial value literal for a declared type
func (s *Style) DefaultFor(declared string) string {
	return s.Defaults[schema.DefaultKindOf(declared)]
}

// Generate renders info with the given style. Typed input (declarations)
// gets member declarations, a constructor that sets every member to its
// default and a stub per method. Untyped input (English) gets members set to
// the unset sentinel and no methods.
func Generate(style *Style, info *schema.ClassInfo) ([]byte, error) {
	if info == nil || info.Name == "" {
		return nil, ErrEmptyClassName
	}

	w := writer.NewWriter(style.Indent)
	w.WriteLinef(style.ClassOpen, info.Name)
	if style.Access != "" {
		w.WriteLine(style.Access)
	}
	w.Indent()

	if info.Typed() {
		writeTyped(w, style, info)
	} else {
		writeUntyped(w, style, info)
	}

	w.Dedent()
	if style.ClassClose != "" {
		w.WriteLine(style.ClassClose)
	}

	return w.Bytes(), nil
}

func writeTyped(w *writer.Writer, style *Style, info *schema.ClassInfo) {
	if style.Member != "" && len(info.Attributes) > 0 {
		for _, attr := range info.Attributes {
			w.WriteLinef(style.Member, style.TypeOf(attr.Type), attr.Name)
		}
		w.BlankLine()
	}

	values := make([]string, len(info.Attributes))
	for i, attr := range info.Attributes {
		values[i] = style.DefaultFor(attr.Type)
	}
	writeConstructor(w, style, info, values)

	for _, method := range info.Methods {
		w.BlankLine()
		if style.MethodStub != "" {
			w.WriteLinef(style.MethodStub, method)
			continue
		}
		w.WriteBlock(fmt.Sprintf(style.MethodOpen, method), style.BlockClose, func() {
			w.WriteLine(style.Placeholder)
		})
	}
}

func writeUntyped(w *writer.Writer, style *Style, info *schema.ClassInfo) {
	if style.Member != "" {
		for _, attr := range info.Attributes {
			w.WriteLinef(style.Member, style.UntypedMemberType, attr.Name)
		}
		return
	}

	values := make([]string, len(info.Attributes))
	for i := range values {
		values[i] = style.Unset
	}
	writeConstructor(w, style, info, values)
}

// writeConstructor assigns values[i] to the i-th attribute, falling back to
// the placeholder statement when there are no attributes
func writeConstructor(w *writer.Writer, style *Style, info *schema.ClassInfo, values []string) {
	w.WriteBlock(render(style.Constructor, info.Name), style.BlockClose, func() {
		if len(info.Attributes) == 0 {
			w.WriteLine(style.Placeholder)
			return
		}
		for i, attr := range info.Attributes {
			w.WriteLinef(style.Assign, attr.Name, values[i])
		}
	})
}

// render applies format only when it has verbs, so fixed openers such as
// "def __init__(self):" pass through untouched
func render(format string, args ...any) string {
	if !strings.Contains(format, "%") {
		return format
	}
	return fmt.Sprintf(format, args...)
}
