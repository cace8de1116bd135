package calc

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
)

type Notation string

const (
	Infix  Notation = "infix"
	Polish Notation = "polish"
)

var Notations = []Notation{Infix, Polish}

func (n Notation) String() string {
	return string(n)
}

func (n Notation) Valid() bool {
	return n == Infix || n == Polish
}

// ParseNotation is case-insensitive; "prefix" is accepted for Polish.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix":
		return Infix, nil
	case "polish", "prefix":
		return Polish, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("unsupported notation %q, expected infix or polish", s))
	}
}
