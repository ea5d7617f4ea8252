package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// Registry manages available code generators
type Registry struct {
	generators map[string]func() Generator
	aliases    map[string]string
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]func() Generator),
		aliases:    make(map[string]string),
	}
}

// Register adds a new generator factory to the registry
func (r *Registry) Register(language string, factory func() Generator) {
	r.generators[language] = factory
}

// Alias makes alias resolve to an already registered language
func (r *Registry) Alias(alias, language string) {
	r.aliases[alias] = language
}

// Get returns a generator for the specified language or alias
func (r *Registry) Get(language string) (Generator, error) {
	name := strings.ToLower(strings.TrimSpace(language))
	if target, ok := r.aliases[name]; ok {
		name = target
	}

	factory, exists := r.generators[name]
	if !exists {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}

	return factory(), nil
}

// Resolve returns one generator per requested language, in order, skipping
// repeats of the same target
func (r *Registry) Resolve(languages []string) ([]Generator, error) {
	seen := make(map[string]bool, len(languages))
	gens := make([]Generator, 0, len(languages))
	for _, lang := range languages {
		gen, err := r.Get(lang)
		if err != nil {
			return nil, err
		}
		if seen[gen.Language()] {
			continue
		}
		seen[gen.Language()] = true
		gens = append(gens, gen)
	}
	return gens, nil
}

// Languages returns the sorted list of registered languages, without aliases
func (r *Registry) Languages() []string {
	languages := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}
