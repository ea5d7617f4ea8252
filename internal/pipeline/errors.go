package pipeline

import "errors"

var (
	// Resource errors
	ErrReadInput   = errors.New("cannot read input")
	ErrWriteOutput = errors.New("cannot write output")

	// Validation errors, checked after parsing
	ErrEmptyClassName = errors.New("class name is empty")
	ErrNoAttributes   = errors.New("no attributes were extracted")
)
