package schema

import "errors"

var (
	// ErrSyntax is wrapped by every declaration parse failure
	ErrSyntax = errors.New("syntax error")

	// Declaration rule failures
	ErrMissingClass    = errors.New("expected 'class' keyword")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")

	// English extraction failures
	ErrMissingAnchor = errors.New("missing anchor phrase")
)
