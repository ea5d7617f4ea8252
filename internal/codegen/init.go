package codegen

import (
	"github.com/okra-platform/skelgen/internal/codegen/cpp"
	"github.com/okra-platform/skelgen/internal/codegen/java"
	"github.com/okra-platform/skelgen/internal/codegen/python"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

// AllLanguages is the order targets are written in when English input asks
// for every language
var AllLanguages = []string{"python", "cpp", "java"}

func init() {
	DefaultRegistry.Register("python", func() Generator {
		return python.NewGenerator()
	})
	DefaultRegistry.Register("cpp", func() Generator {
		return cpp.NewGenerator()
	})
	DefaultRegistry.Register("java", func() Generator {
		return java.NewGenerator()
	})

	DefaultRegistry.Alias("py", "python")
	DefaultRegistry.Alias("c++", "cpp")
}
