package calc

import (
	"math"
	"strings"
)

// functions are the single-argument functions the keypad can produce.
// sqrt is reached through the √ glyph.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
}

// Evaluate computes the value of a keypad expression.
//
// Grammar, lowest precedence first:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/'|'%') unary)*
//	unary   := ('+'|'-') unary | power
//	power   := primary ('^' unary)?
//	primary := number | '(' expr ')' | func '(' expr ')' | func unary
//
// A non-finite result is reported as an error rather than returned.
func Evaluate(input string) (float64, error) {
	expr := Substitute(input)
	if strings.TrimSpace(expr) == "" {
		return 0, newError(input, -1, "empty expression")
	}

	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{input: expr, tokens: tokens}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if tok, ok := p.peek(); ok {
		if tok.Kind == TokenRParen {
			return 0, newError(expr, tok.Pos, "unbalanced parentheses")
		}
		return 0, newError(expr, tok.Pos, "unexpected %s %q", tok.Kind, tok.Text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(expr, -1, "result is not a finite number")
	}
	return v, nil
}

// ApplyUnary applies a named scientific function to a buffer holding a
// single, optionally signed, number.
func ApplyUnary(name, input string) (float64, error) {
	fn, ok := functions[name]
	if !ok {
		return 0, newError(input, -1, "unknown function %q", name)
	}

	expr := Substitute(input)
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}

	sign := 1.0
	if len(tokens) == 2 && tokens[0].Kind == TokenOperator && (tokens[0].Text == "-" || tokens[0].Text == "+") {
		if tokens[0].Text == "-" {
			sign = -1
		}
		tokens = tokens[1:]
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenNumber {
		return 0, newError(expr, -1, "%s expects a single number", name)
	}

	v := fn(sign * tokens[0].Value)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(expr, -1, "result is not a finite number")
	}
	return v, nil
}

type parser struct {
	input  string
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// acceptOp consumes the next token if it is one of the given operators.
func (p *parser) acceptOp(ops string) (string, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOperator || !strings.Contains(ops, tok.Text) {
		return "", false
	}
	p.pos++
	return tok.Text, true
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("+-")
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		opPos := p.pos
		op, ok := p.acceptOp("*/%")
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		switch op {
		case "*":
			left *= right
		case "/":
			if right == 0 {
				return 0, newError(p.input, p.tokens[opPos].Pos, "division by zero")
			}
			left /= right
		case "%":
			if right == 0 {
				return 0, newError(p.input, p.tokens[opPos].Pos, "division by zero")
			}
			left = math.Mod(left, right)
		}
	}
}

func (p *parser) unary() (float64, error) {
	if op, ok := p.acceptOp("+-"); ok {
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -v, nil
		}
		return v, nil
	}
	return p.power()
}

func (p *parser) power() (float64, error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	if _, ok := p.acceptOp("^"); !ok {
		return base, nil
	}
	exp, err := p.unary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) primary() (float64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, newError(p.input, -1, "unexpected end of expression")
	}

	switch tok.Kind {
	case TokenNumber:
		return tok.Value, nil

	case TokenLParen:
		return p.group(tok)

	case TokenIdent:
		fn := functions[tok.Text]
		var arg float64
		var err error
		if next, ok := p.peek(); ok && next.Kind == TokenLParen {
			p.pos++
			arg, err = p.group(next)
		} else {
			arg, err = p.unary()
		}
		if err != nil {
			return 0, err
		}
		v := fn(arg)
		if math.IsNaN(v) {
			return 0, newError(p.input, tok.Pos, "%s is undefined for %v", tok.Text, arg)
		}
		return v, nil

	default:
		return 0, newError(p.input, tok.Pos, "unexpected %s %q", tok.Kind, tok.Text)
	}
}

// group parses the remainder of a parenthesised expression whose opening
// parenthesis has already been consumed.
func (p *parser) group(open Token) (float64, error) {
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if tok, ok := p.next(); !ok || tok.Kind != TokenRParen {
		return 0, newError(p.input, open.Pos, "unbalanced parentheses")
	}
	return v, nil
}
