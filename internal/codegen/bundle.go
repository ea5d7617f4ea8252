package codegen

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/okra-platform/skelgen/internal/schema"
)

// Section is the output of one generator
type Section struct {
	Language string
	Label    string
	Code     []byte
}

// GenerateAll runs every generator over the same model. All generators run
// even if some fail; their errors are combined.
func GenerateAll(gens []Generator, info *schema.ClassInfo) ([]Section, error) {
	var result *multierror.Error
	sections := make([]Section, 0, len(gens))

	for _, gen := range gens {
		code, err := gen.Generate(info)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", gen.Language(), err))
			continue
		}
		sections = append(sections, Section{
			Language: gen.Language(),
			Label:    gen.Label(),
			Code:     code,
		})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return sections, nil
}

// Bundle joins sections into one document. A single section is returned as
// is; several are each headed with "# <Label>" and separated by a blank line.
func Bundle(sections []Section) []byte {
	if len(sections) == 1 {
		return sections[0].Code
	}

	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "# %s\n", section.Label)
		sb.Write(section.Code)
		if len(section.Code) > 0 && !strings.HasSuffix(string(section.Code), "\n") {
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String())
}
