package schema

import "fmt"

// TokenKind classifies a lexical token of the declaration syntax
type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenClass
	TokenPublic
	TokenVoid
	TokenTypeName
	TokenSemicolon
	TokenLeftBrace
	TokenRightBrace
	TokenLeftParen
	TokenRightParen
)

var tokenKindNames = map[TokenKind]string{
	TokenIdentifier: "identifier",
	TokenClass:      "class",
	TokenPublic:     "public",
	TokenVoid:       "void",
	TokenTypeName:   "type name",
	TokenSemicolon:  "';'",
	TokenLeftBrace:  "'{'",
	TokenRightBrace: "'}'",
	TokenLeftParen:  "'('",
	TokenRightParen: "')'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified lexical unit. Text is never empty.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// keywords and built-in type names recognised by Classify
var wordKinds = map[string]TokenKind{
	"class":   TokenClass,
	"public":  TokenPublic,
	"public:": TokenPublic,
	"void":    TokenVoid,
	"int":     TokenTypeName,
	"float":   TokenTypeName,
	"string":  TokenTypeName,
	"double":  TokenTypeName,
	"bool":    TokenTypeName,
}

var punctKinds = map[rune]TokenKind{
	';': TokenSemicolon,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	'(': TokenLeftParen,
	')': TokenRightParen,
}

// Classify returns the kind of a word. Anything that is not a keyword or a
// built-in type name is an identifier.
func Classify(word string) TokenKind {
	if kind, ok := wordKinds[word]; ok {
		return kind
	}
	return TokenIdentifier
}
