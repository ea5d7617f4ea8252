package schema

import (
	"fmt"
)

// Parse turns raw input text into a ClassInfo. FormAuto picks the front end
// with DetectForm.
func Parse(input string, form InputForm) (*ClassInfo, error) {
	text := Normalize(input)
	if form == FormAuto {
		form = DetectForm(text)
	}

	switch form {
	case FormEnglish:
		return ParseEnglish(text)
	case FormDeclaration:
		return ParseDeclaration(Tokenize(text))
	default:
		return nil, fmt.Errorf("unknown input form: %d", int(form))
	}
}

// ParseDeclaration builds a ClassInfo from the tokens of a declaration:
//
//	class <name> { [public] { <type> <name> ; }* { void <name> ( ) ; }* } [;]
//
// Each grammar rule takes the cursor position and returns the position
// after the tokens it consumed.
func ParseDeclaration(tokens []Token) (*ClassInfo, error) {
	info := &ClassInfo{
		Attributes: []Attribute{},
		Methods:    []string{},
		Form:       FormDeclaration,
	}

	name, pos, err := parseHeader(tokens, 0)
	if err != nil {
		return nil, err
	}
	info.Name = name

	pos = parseAccess(tokens, pos)

	if _, err := parseBody(tokens, pos, info); err != nil {
		return nil, err
	}

	return info, nil
}

// parseHeader consumes `class <name> {`
func parseHeader(tokens []Token, pos int) (string, int, error) {
	if pos >= len(tokens) || tokens[pos].Kind != TokenClass {
		return "", pos, fmt.Errorf("%w: %w", ErrSyntax, ErrMissingClass)
	}

	name, err := expect(tokens, pos+1, TokenIdentifier)
	if err != nil {
		return "", pos, err
	}
	if _, err := expect(tokens, pos+2, TokenLeftBrace); err != nil {
		return "", pos, err
	}

	return name.Text, pos + 3, nil
}

// parseAccess consumes an optional `public` specifier
func parseAccess(tokens []Token, pos int) int {
	if pos < len(tokens) && tokens[pos].Kind == TokenPublic {
		return pos + 1
	}
	return pos
}

// parseAttribute consumes `<type> <name> ;`
func parseAttribute(tokens []Token, pos int) (Attribute, int, error) {
	typ, err := expect(tokens, pos, TokenTypeName)
	if err != nil {
		return Attribute{}, pos, err
	}
	name, err := expect(tokens, pos+1, TokenIdentifier)
	if err != nil {
		return Attribute{}, pos, err
	}
	if _, err := expect(tokens, pos+2, TokenSemicolon); err != nil {
		return Attribute{}, pos, err
	}

	return Attribute{Type: typ.Text, Name: name.Text}, pos + 3, nil
}

// parseMethod consumes `void <name> ( ) ;`
func parseMethod(tokens []Token, pos int) (string, int, error) {
	kinds := []TokenKind{TokenVoid, TokenIdentifier, TokenLeftParen, TokenRightParen, TokenSemicolon}
	for i, kind := range kinds {
		if _, err := expect(tokens, pos+i, kind); err != nil {
			return "", pos, err
		}
	}

	return tokens[pos+1].Text, pos + len(kinds), nil
}

// parseBody consumes attributes and methods up to and including the closing
// brace, plus an optional trailing semicolon. Tokens that start neither rule
// are skipped.
func parseBody(tokens []Token, pos int, info *ClassInfo) (int, error) {
	for {
		if pos >= len(tokens) {
			return pos, fmt.Errorf("%w: %w: missing '}' to close class %s", ErrSyntax, ErrUnexpectedEOF, info.Name)
		}

		switch tokens[pos].Kind {
		case TokenTypeName:
			attr, next, err := parseAttribute(tokens, pos)
			if err != nil {
				return pos, err
			}
			info.Attributes = append(info.Attributes, attr)
			pos = next
		case TokenVoid:
			method, next, err := parseMethod(tokens, pos)
			if err != nil {
				return pos, err
			}
			info.Methods = append(info.Methods, method)
			pos = next
		case TokenRightBrace:
			pos++
			if pos < len(tokens) && tokens[pos].Kind == TokenSemicolon {
				pos++
			}
			return pos, nil
		default:
			pos++
		}
	}
}

// expect returns the token at pos if it has the wanted kind
func expect(tokens []Token, pos int, want TokenKind) (Token, error) {
	if pos >= len(tokens) {
		return Token{}, fmt.Errorf("%w: %w: expected %s", ErrSyntax, ErrUnexpectedEOF, want)
	}
	if got := tokens[pos]; got.Kind != want {
		return Token{}, fmt.Errorf("%w: %w: expected %s at token %d, got %s", ErrSyntax, ErrUnexpectedToken, want, pos, got)
	}
	return tokens[pos], nil
}
