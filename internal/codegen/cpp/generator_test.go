package cpp

import (
	"testing"

	"github.com/okra-platform/skelgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Metadata(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "cpp", g.Language())
	assert.Equal(t, "C++", g.Label())
	assert.Equal(t, ".hpp", g.FileExtension())
}

func TestGenerator_TypedClass(t *testing.T) {
	// Test: Members, constructor and method stubs
	info := &schema.ClassInfo{
		Name: "Account",
		Attributes: []schema.Attribute{
			{Type: "string", Name: "owner"},
			{Type: "double", Name: "balance"},
			{Type: "bool", Name: "open"},
		},
		Methods: []string{"close"},
		Form:    schema.FormDeclaration,
	}

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)

	expected := `class Account {
public:
    std::string owner;
    double balance;
    bool open;

    Account() {
        owner = "";
        balance = 0;
        open = false;
    }

    void close() {}
};
`
	assert.Equal(t, expected, string(code))
}

func TestGenerator_NoAttributes(t *testing.T) {
	// Test: The constructor body holds a placeholder statement
	info := &schema.ClassInfo{Name: "Empty", Methods: []string{"run"}, Form: schema.FormDeclaration}

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)

	expected := "class Empty {\npublic:\n    Empty() {\n        return;\n    }\n\n    void run() {}\n};\n"
	assert.Equal(t, expected, string(code))
}

func TestGenerator_EnglishClass(t *testing.T) {
	// Test: Untyped members are public std::string fields
	info := &schema.ClassInfo{
		Name:       "Car",
		Attributes: []schema.Attribute{{Name: "make"}, {Name: "model"}},
		Form:       schema.FormEnglish,
	}

	code, err := NewGenerator().Generate(info)
	require.NoError(t, err)
	assert.Equal(t, "class Car {\npublic:\n    std::string make;\n    std::string model;\n};\n", string(code))
}
