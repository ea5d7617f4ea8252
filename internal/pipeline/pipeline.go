// Package pipeline runs one input file through parsing and code generation
// and writes the result.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/okra-platform/skelgen/internal/codegen"
	"github.com/okra-platform/skelgen/internal/schema"
)

// FileSystem defines the file operations the pipeline needs
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
}

type osFileSystem struct{}

func (fs *osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (fs *osFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (fs *osFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Options selects the files, input form and targets of one run
type Options struct {
	Input   string
	Output  string
	Form    schema.InputForm
	Targets []string
}

// Result is the outcome of transforming one input
type Result struct {
	Info     *schema.ClassInfo
	Sections []codegen.Section
	Output   []byte
}

// Pipeline turns a class description into generated code
type Pipeline struct {
	registry   *codegen.Registry
	filesystem FileSystem
	trace      io.Writer
	logger     zerolog.Logger
}

// New creates a pipeline that prints its parse-tree trace to trace
func New(logger zerolog.Logger, trace io.Writer) *Pipeline {
	return &Pipeline{
		registry:   codegen.DefaultRegistry,
		filesystem: &osFileSystem{},
		trace:      trace,
		logger:     logger.With().Str("component", "pipeline").Logger(),
	}
}

// WithRegistry replaces the generator registry
func (p *Pipeline) WithRegistry(registry *codegen.Registry) *Pipeline {
	p.registry = registry
	return p
}

// WithFileSystem replaces the file system, for testing
func (p *Pipeline) WithFileSystem(fs FileSystem) *Pipeline {
	p.filesystem = fs
	return p
}

// Run reads opts.Input, generates code for every target and writes it to
// opts.Output. Nothing is written when any step fails.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := p.filesystem.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, opts.Input, err)
	}
	if err := p.checkOutputDir(opts.Output); err != nil {
		return nil, err
	}
	p.logger.Debug().Str("input", opts.Input).Int("bytes", len(input)).Msg("read input")

	result, err := p.Transform(string(input), opts.Form, opts.Targets)
	if err != nil {
		return nil, err
	}

	if err := p.filesystem.WriteFile(opts.Output, result.Output, 0644); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, opts.Output, err)
	}
	p.logger.Info().
		Str("class", result.Info.Name).
		Str("output", opts.Output).
		Int("targets", len(result.Sections)).
		Msg("generated class skeleton")

	return result, nil
}

// Transform parses text, validates the model, prints the parse tree and
// renders every target. It touches no files.
func (p *Pipeline) Transform(text string, form schema.InputForm, targets []string) (*Result, error) {
	info, err := schema.Parse(text, form)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if err := Validate(info); err != nil {
		return nil, err
	}
	p.logger.Debug().
		Str("class", info.Name).
		Str("form", info.Form.String()).
		Int("attributes", len(info.Attributes)).
		Int("methods", len(info.Methods)).
		Msg("parsed class")

	if p.trace != nil {
		WriteParseTree(p.trace, info)
	}

	gens, err := p.registry.Resolve(TargetsFor(info.Form, targets))
	if err != nil {
		return nil, err
	}

	sections, err := codegen.GenerateAll(gens, info)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	return &Result{
		Info:     info,
		Sections: sections,
		Output:   codegen.Bundle(sections),
	}, nil
}

// Validate rejects models that would produce meaningless output: a missing
// class name, or English input with no attributes.
func Validate(info *schema.ClassInfo) error {
	if info.Name == "" {
		return ErrEmptyClassName
	}
	if info.Form == schema.FormEnglish && len(info.Attributes) == 0 {
		return fmt.Errorf("%w for class %s", ErrNoAttributes, info.Name)
	}
	return nil
}

// TargetsFor returns the requested targets, or the defaults for the form:
// every language for English input and Python for declarations.
func TargetsFor(form schema.InputForm, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	if form == schema.FormEnglish {
		return codegen.AllLanguages
	}
	return []string{"python"}
}

// checkOutputDir fails early when the output file cannot be created
func (p *Pipeline) checkOutputDir(output string) error {
	dir := filepath.Dir(output)
	info, err := p.filesystem.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, output, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w %s: %s is not a directory", ErrWriteOutput, output, dir)
	}
	return nil
}
