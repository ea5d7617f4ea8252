package python

import (
	"github.com/okra-platform/skelgen/internal/codegen/skeleton"
	"github.com/okra-platform/skelgen/internal/schema"
)

// Style spells a Python class with an __init__ constructor. Python has no
// member declarations, so every member is assigned in __init__.
var Style = &skeleton.Style{
	Indent:      "    ",
	ClassOpen:   "class %s:",
	Constructor: "def __init__(self):",
	Assign:      "self.%s = %s",
	Placeholder: "pass",
	MethodOpen:  "def %s(self):",
	Defaults: map[schema.DefaultKind]string{
		schema.DefaultNumeric: "0",
		schema.DefaultBoolean: "False",
		schema.DefaultString:  `""`,
	},
	Unset: "None",
}

// Generator generates Python classes
type Generator struct{}

// NewGenerator creates a new Python code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "python"
}

// Label returns the section heading used when several targets share one file
func (g *Generator) Label() string {
	return "Python"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".py"
}

// Generate renders the class
func (g *Generator) Generate(info *schema.ClassInfo) ([]byte, error) {
	return skeleton.Generate(Style, info)
}
