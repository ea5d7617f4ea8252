package schema

import (
	"strings"
	"unicode"
)

// Tokenize splits declaration text into classified tokens. It never fails:
// punctuation other than ; { } ( ) is dropped without producing a token.
func Tokenize(input string) []Token {
	var (
		tokens []Token
		word   strings.Builder
	)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		text := word.String()
		tokens = append(tokens, Token{Kind: Classify(text), Text: text})
		word.Reset()
	}

	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isWordRune(r):
			word.WriteRune(r)
		default:
			flush()
			if kind, ok := punctKinds[r]; ok {
				tokens = append(tokens, Token{Kind: kind, Text: string(r)})
			}
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
