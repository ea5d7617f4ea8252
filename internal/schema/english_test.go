package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnglish_Car(t *testing.T) {
	// Test: "and" is dropped, trailing commas are stripped, "then" ends the list
	info, err := ParseEnglish("Create a class called Car with make, model and year, then populate it.")
	require.NoError(t, err)

	assert.Equal(t, "Car", info.Name)
	assert.Equal(t, []string{"make", "model", "year"}, info.AttributeNames())
	assert.Empty(t, info.Methods)
	assert.Equal(t, FormEnglish, info.Form)
	assert.False(t, info.Typed())
	for _, attr := range info.Attributes {
		assert.Empty(t, attr.Type)
	}
}

func TestParseEnglish_Variants(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantAttrs []string
	}{
		{
			name:      "spaces in name are removed",
			input:     "Make a class called Sports Car with speed and colour populate it",
			wantName:  "SportsCar",
			wantAttrs: []string{"speed", "colour"},
		},
		{
			name:      "no populate anchor runs to end",
			input:     "a class called Book with title, author, pages",
			wantName:  "Book",
			wantAttrs: []string{"title", "author", "pages"},
		},
		{
			name:      "sentence end stops the list",
			input:     "Define a class called Dog with name and breed. It barks.",
			wantName:  "Dog",
			wantAttrs: []string{"name", "breed"},
		},
		{
			name:      "with inside the class name is not an anchor",
			input:     "a class called Swithin with age",
			wantName:  "Swithin",
			wantAttrs: []string{"age"},
		},
		{
			name:      "lone commas are skipped",
			input:     "a class called Pair with left , right",
			wantName:  "Pair",
			wantAttrs: []string{"left", "right"},
		},
		{
			name:      "nothing after with",
			input:     "a class called Unit with",
			wantName:  "Unit",
			wantAttrs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseEnglish(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, info.Name)
			assert.Equal(t, tt.wantAttrs, info.AttributeNames())
		})
	}
}

func TestParseEnglish_MissingAnchors(t *testing.T) {
	// Test: Missing "class called" is reported
	_, err := ParseEnglish("Create a type named Car with make and model.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnchor)
	assert.Contains(t, err.Error(), "class called")

	// Test: Missing "with" is reported
	_, err = ParseEnglish("Create a class called Car, then populate it.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnchor)
	assert.Contains(t, err.Error(), `"with"`)
}

func TestDefaultKindOf(t *testing.T) {
	tests := map[string]DefaultKind{
		"int":    DefaultNumeric,
		"float":  DefaultNumeric,
		"double": DefaultNumeric,
		"bool":   DefaultBoolean,
		"string": DefaultString,
		"Widget": DefaultString,
		"":       DefaultString,
	}

	for typ, want := range tests {
		assert.Equal(t, want, DefaultKindOf(typ), "type %q", typ)
	}
}
