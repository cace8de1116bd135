package token

import "strconv"

type Type int

const (
	EOF Type = iota
	PLUS
	MINUS
	MUL
	DIV
	MOD
	LPAREN
	RPAREN
	MIN
	MAX
	ABS
	SQR
	NUMBER
	UNKNOWN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	case MOD:
		return "MOD"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case MIN:
		return "MIN"
	case MAX:
		return "MAX"
	case ABS:
		return "ABS"
	case SQR:
		return "SQR"
	case NUMBER:
		return "NUMBER"
	case UNKNOWN:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// IsKeyword reports whether t is one of the word operators.
func (t Type) IsKeyword() bool {
	return t == MIN || t == MAX || t == ABS || t == SQR
}

var symbols = map[rune]Type{
	'+': PLUS,
	'-': MINUS,
	'*': MUL,
	'/': DIV,
	'%': MOD,
	'(': LPAREN,
	')': RPAREN,
}

// Keywords are matched case-sensitively against a whole run of letters.
var keywords = map[string]Type{
	"min": MIN,
	"max": MAX,
	"abs": ABS,
	"sqr": SQR,
}

// Token represents a lexical token. Num is only meaningful for NUMBER,
// Pos is the rune offset of the token's first character in the input.
type Token struct {
	Type  Type
	Value string
	Num   int64
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return strconv.FormatInt(t.Num, 10)
	case EOF:
		return "end of input"
	default:
		return t.Value
	}
}

// Is reports whether the token has type typ.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}
