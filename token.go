package notation

import (
	"io"
	"strings"
)

// Kind classifies a Token.
type Kind int

const (
	KindOperand Kind = iota
	KindOperator
	KindLParen
	KindRParen
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindOperand:
		return "operand"
	case KindOperator:
		return "operator"
	case KindLParen:
		return "lparen"
	case KindRParen:
		return "rparen"
	}
	return "invalid"
}

// Token is a single character of an expression. Offset is the rune index of
// Char in the source string.
type Token struct {
	Kind
	Char   rune
	Offset int
}

func (t Token) String() string {
	return string(t.Char)
}

func isOperand(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z')
}

func isOperator(r rune) bool {
	return r == '+' ||
		r == '-' ||
		r == '*' ||
		r == '/'
}

func classify(r rune) Kind {
	switch {
	case isOperand(r):
		return KindOperand
	case isOperator(r):
		return KindOperator
	case r == '(':
		return KindLParen
	case r == ')':
		return KindRParen
	}
	return KindInvalid
}

// Scan reads runes until EOF and returns one token per non-space rune.
// Unknown runes, including anything beyond ASCII, become KindInvalid tokens
// so that validation can name them; only read errors are returned.
func Scan(s io.RuneScanner) (tokens []Token, err error) {
	tokens = make([]Token, 0, 16)

	var r rune
	for offset := 0; ; offset++ {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		if r == ' ' {
			continue
		}

		tokens = append(tokens, Token{Kind: classify(r), Char: r, Offset: offset})
	}
}

// Tokenize is Scan over a string. It cannot fail.
func Tokenize(expr string) []Token {
	tokens, _ := Scan(strings.NewReader(expr))
	return tokens
}

// firstInvalid returns the first KindInvalid token, if any.
func firstInvalid(tokens []Token) (Token, bool) {
	for _, t := range tokens {
		if t.Kind == KindInvalid {
			return t, true
		}
	}
	return Token{}, false
}
