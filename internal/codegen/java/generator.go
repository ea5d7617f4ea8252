package java

import (
	"github.com/okra-platform/skelgen/internal/codegen/skeleton"
	"github.com/okra-platform/skelgen/internal/schema"
)

// Style spells a public Java class with public fields
var Style = &skeleton.Style{
	Indent:            "    ",
	ClassOpen:         "public class %s {",
	ClassClose:        "}",
	Member:            "public %s %s;",
	UntypedMemberType: "String",
	Constructor:       "public %s() {",
	BlockClose:        "}",
	Assign:            "this.%s = %s;",
	Placeholder:       "return;",
	MethodStub:        "public void %s() {}",
	Types: map[string]string{
		"string": "String",
		"bool":   "boolean",
	},
	Defaults: map[schema.DefaultKind]string{
		schema.DefaultNumeric: "0",
		schema.DefaultBoolean: "false",
		schema.DefaultString:  `""`,
	},
}

// Generator generates Java classes
type Generator struct{}

// NewGenerator creates a new Java code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// Label returns the section heading used when several targets share one file
func (g *Generator) Label() string {
	return "Java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".java"
}

// Generate renders the class
func (g *Generator) Generate(info *schema.ClassInfo) ([]byte, error) {
	return skeleton.Generate(Style, info)
}
