package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
	TokenLParen
	TokenRParen
	TokenIdent
)

// String returns the string representation of a TokenKind
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenIdent:
		return "identifier"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of an expression.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
	// Pos is the rune offset of the token in the substituted expression.
	Pos int
}

// glyphs maps keypad symbols onto their evaluable spelling.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"√", "sqrt",
)

// Substitute rewrites every keypad glyph in input into plain operator syntax.
func Substitute(input string) string {
	return glyphs.Replace(input)
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}

// Tokenize splits an already substituted expression into tokens.
// Only the keypad alphabet is accepted: anything else is an EvaluationError.
func Tokenize(expr string) ([]Token, error) {
	runes := []rune(expr)
	var tokens []Token

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			dots := 0
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				i++
			}
			if dots > 1 || string(runes[start:i]) == "." {
				return nil, newError(expr, start, "malformed number %q", string(runes[start:i]))
			}
			i = scanExponent(runes, i)
			text := string(runes[start:i])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, newError(expr, start, "malformed number %q", text)
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: text, Value: v, Pos: start})

		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			name := string(runes[start:i])
			if _, ok := functions[name]; !ok {
				return nil, newError(expr, start, "unknown function %q", name)
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: name, Pos: start})

		case isOperator(r):
			tokens = append(tokens, Token{Kind: TokenOperator, Text: string(r), Pos: i})
			i++

		case r == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "(", Pos: i})
			i++

		case r == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")", Pos: i})
			i++

		default:
			return nil, newError(expr, i, "unexpected symbol %q", string(r))
		}
	}

	return tokens, nil
}

// scanExponent returns the end of an exponent suffix (e or E, optional sign,
// digits) starting at i, or i when there is none. FormatResult writes very
// large and very small results in this form.
func scanExponent(runes []rune, i int) int {
	if i >= len(runes) || (runes[i] != 'e' && runes[i] != 'E') {
		return i
	}
	j := i + 1
	if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
		j++
	}
	if j >= len(runes) || !unicode.IsDigit(runes[j]) {
		return i
	}
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		j++
	}
	return j
}
