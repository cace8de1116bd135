package token

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
)

// ArithTokenizer splits arithmetic expressions into tokens.
// It keeps no state between calls, so one instance can be shared.
type ArithTokenizer struct{}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `min (2 + 3) sqr -4`
func (t *ArithTokenizer) Tokenize(input string) ([]Token, error) {
	s := scanner{input: []rune(input)}

	tokens := make([]Token, 0, len(s.input)/2)

	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if typ, ok := symbols[ch]; ok {
			tokens = append(tokens, Token{Type: typ, Value: string(ch), Pos: s.pos})
			s.pos++
			continue
		}

		switch {
		case unicode.IsSpace(ch):
			s.pos++
		case isDigit(ch):
			tok, err := s.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isLetter(ch):
			tokens = append(tokens, s.readWord())
		default:
			return nil, apperr.NewSymbol(string(ch), s.pos)
		}
	}

	return tokens, nil
}

type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) readNumber() (Token, error) {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}

	raw := string(s.input[start:s.pos])
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, apperr.NewSyntax("integer literal "+raw+" out of range", start)
		}
		return Token{}, apperr.NewSyntax("invalid integer literal "+raw, start)
	}

	return Token{Type: NUMBER, Value: raw, Num: n, Pos: start}, nil
}

func (s *scanner) readWord() Token {
	start := s.pos
	for s.pos < len(s.input) && isLetter(s.input[s.pos]) {
		s.pos++
	}

	word := string(s.input[start:s.pos])
	if typ, ok := keywords[word]; ok {
		return Token{Type: typ, Value: word, Pos: start}
	}
	return Token{Type: UNKNOWN, Value: word, Pos: start}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
