package cpp

import (
	"github.com/okra-platform/skelgen/internal/codegen/skeleton"
	"github.com/okra-platform/skelgen/internal/schema"
)

// Style spells a C++ class with a public section and an inline constructor
var Style = &skeleton.Style{
	Indent:            "    ",
	ClassOpen:         "class %s {",
	ClassClose:        "};",
	Access:            "public:",
	Member:            "%s %s;",
	UntypedMemberType: "std::string",
	Constructor:       "%s() {",
	BlockClose:        "}",
	Assign:            "%s = %s;",
	Placeholder:       "return;",
	MethodStub:        "void %s() {}",
	Types: map[string]string{
		"string": "std::string",
	},
	Defaults: map[schema.DefaultKind]string{
		schema.DefaultNumeric: "0",
		schema.DefaultBoolean: "false",
		schema.DefaultString:  `""`,
	},
}

// Generator generates C++ classes
type Generator struct{}

// NewGenerator creates a new C++ code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "cpp"
}

// Label returns the section heading used when several targets share one file
func (g *Generator) Label() string {
	return "C++"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".hpp"
}

// Generate renders the class
func (g *Generator) Generate(info *schema.ClassInfo) ([]byte, error) {
	return skeleton.Generate(Style, info)
}
