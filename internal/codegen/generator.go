package codegen

import "github.com/okra-platform/skelgen/internal/schema"

// Generator is the interface that all language-specific code generators must implement
type Generator interface {
	// Generate renders the class model and returns the generated code
	Generate(info *schema.ClassInfo) ([]byte, error)

	// Language returns the registry name of the target language (e.g. "python")
	Language() string

	// Label returns the human-readable heading for the target (e.g. "C++")
	Label() string

	// FileExtension returns the file extension for generated files (e.g. ".py")
	FileExtension() string
}
