package python

import (
	"testing"

	"github.com/okra-platform/skelgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Metadata(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "python", g.Language())
	assert.Equal(t, "Python", g.Label())
	assert.Equal(t, ".py", g.FileExtension())
}

func TestGenerator_TypedClass(t *testing.T) {
	// Test: Constructor sets defaults and methods become pass stubs
	info, err := schema.ParseDeclaration(schema.Tokenize("class Point { public: int x; int y; void reset(); };"))
	require.NoError(t, err)

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)

	expected := `class Point:
    def __init__(self):
        self.x = 0
        self.y = 0

    def reset(self):
        pass
`
	assert.Equal(t, expected, string(code))
}

func TestGenerator_DefaultValues(t *testing.T) {
	// Test: Numeric types get 0, bool gets False, everything else ""
	info := &schema.ClassInfo{
		Name: "Sample",
		Attributes: []schema.Attribute{
			{Type: "int", Name: "i"},
			{Type: "float", Name: "f"},
			{Type: "double", Name: "d"},
			{Type: "bool", Name: "b"},
			{Type: "string", Name: "s"},
			{Type: "Widget", Name: "w"},
		},
		Form: schema.FormDeclaration,
	}

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)

	result := string(code)
	assert.Contains(t, result, "self.i = 0\n")
	assert.Contains(t, result, "self.f = 0\n")
	assert.Contains(t, result, "self.d = 0\n")
	assert.Contains(t, result, "self.b = False\n")
	assert.Contains(t, result, `self.s = ""`+"\n")
	assert.Contains(t, result, `self.w = ""`+"\n")
}

func TestGenerator_NoAttributes(t *testing.T) {
	// Test: An empty class still has a non-empty __init__ body
	info := &schema.ClassInfo{Name: "Empty", Form: schema.FormDeclaration}

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)
	assert.Equal(t, "class Empty:\n    def __init__(self):\n        pass\n", string(code))
}

func TestGenerator_EnglishClass(t *testing.T) {
	// Test: Untyped members are set to None
	info, err := schema.ParseEnglish("Create a class called Car with make, model and year, then populate it.")
	require.NoError(t, err)

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)

	expected := "class Car:\n    def __init__(self):\n        self.make = None\n        self.model = None\n        self.year = None\n"
	assert.Equal(t, expected, string(code))
}
