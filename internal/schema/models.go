package schema

// InputForm identifies which front end produced a ClassInfo
type InputForm int

const (
	// FormAuto asks Parse to detect the form from the text itself
	FormAuto InputForm = iota
	// FormDeclaration is the pseudo C++ class body syntax
	FormDeclaration
	// FormEnglish is the "Create a class called ..." sentence form
	FormEnglish
)

// String returns the name used for the form in config files and flags
func (f InputForm) String() string {
	switch f {
	case FormDeclaration:
		return "declaration"
	case FormEnglish:
		return "english"
	default:
		return "auto"
	}
}

// ClassInfo is the model shared by every front end and every emitter
type ClassInfo struct {
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes"`
	Methods    []string    `json:"methods"`
	Form       InputForm   `json:"form"`
}

// Attribute is a single member of the class. Type is empty for members
// extracted from English input.
type Attribute struct {
	Type string `json:"type,omitempty"`
	Name string `json:"name"`
}

// Typed reports whether attributes carry declared types
func (c *ClassInfo) Typed() bool {
	return c.Form != FormEnglish
}

// AttributeNames returns the attribute names in declaration order
func (c *ClassInfo) AttributeNames() []string {
	names := make([]string, 0, len(c.Attributes))
	for _, attr := range c.Attributes {
		names = append(names, attr.Name)
	}
	return names
}

// DefaultKind classifies the initial value an emitter assigns to an attribute
type DefaultKind int

const (
	DefaultString DefaultKind = iota
	DefaultNumeric
	DefaultBoolean
)

// DefaultKindOf maps a declared type to the kind of its default value.
// Unknown types fall back to the empty string.
func DefaultKindOf(declaredType string) DefaultKind {
	switch declaredType {
	case "int", "float", "double":
		return DefaultNumeric
	case "bool":
		return DefaultBoolean
	default:
		return DefaultString
	}
}
