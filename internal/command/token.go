package command

import "strings"

// TokenKind is the class of a Token.
type TokenKind int

const (
	// Variable is free-form text such as an item name or a direction.
	Variable TokenKind = iota

	// Keyword is a command keyword. Only the first word of a line can be one.
	Keyword

	// Preposition is one of the joining words "on", "with", or "and".
	Preposition
)

func (tk TokenKind) String() string {
	switch tk {
	case Keyword:
		return "KEYWORD"
	case Preposition:
		return "PREPOSITION"
	default:
		return "VARIABLE"
	}
}

var prepositions = map[string]bool{
	"ON":   true,
	"WITH": true,
	"AND":  true,
}

// Token is a single classified word of input.
type Token struct {
	Kind TokenKind

	// Command is the command the token invokes. It is only set when Kind is
	// Keyword.
	Command Kind

	// Text is the word exactly as it was typed.
	Text string
}

// Tokenize splits a line of input on whitespace and classifies each word. The
// first word is checked against the command keywords; every word is checked
// against the prepositions; all others are Variable. Matching is not case
// sensitive. Blank input gives an empty slice.
func Tokenize(line string) []Token {
	words := strings.Fields(line)
	tokens := make([]Token, 0, len(words))

	for i, w := range words {
		upper := strings.ToUpper(w)
		tok := Token{Kind: Variable, Text: w}

		if i == 0 {
			if k, ok := keywords[upper]; ok {
				tok.Kind = Keyword
				tok.Command = k
				tokens = append(tokens, tok)
				continue
			}
		}
		if prepositions[upper] {
			tok.Kind = Preposition
		}

		tokens = append(tokens, tok)
	}

	return tokens
}
