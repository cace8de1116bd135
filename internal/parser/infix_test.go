package parser

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := token.NewArithTokenizer().Tokenize(input)
	require.NoError(t, err)
	return tokens
}

func evaluate(t *testing.T, node expr.Node) int64 {
	t.Helper()
	v, err := expr.Evaluate(node)
	require.NoError(t, err)
	return v
}

func TestInfix_ProceduresAdvanceCursor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		parse   func(p *Infix) (expr.Node, error)
		wantPos int
		want    int64
	}{
		{name: "factor constant", input: "4", parse: (*Infix).ParseFactor, wantPos: 1, want: 4},

		{name: "term one multiplier", input: "4", parse: (*Infix).ParseTerm, wantPos: 1, want: 4},
		{name: "term two multipliers", input: "4 * 2", parse: (*Infix).ParseTerm, wantPos: 3, want: 8},
		{name: "term three multipliers", input: "4 / 2 * 3", parse: (*Infix).ParseTerm, wantPos: 5, want: 6},
		{name: "term four multipliers", input: "4 / 2 * 3 % 5", parse: (*Infix).ParseTerm, wantPos: 7, want: 1},

		{name: "expression one addendum", input: "4 / -2 * 3", parse: (*Infix).ParseExpression, wantPos: 6, want: -6},
		{name: "expression two addendums", input: "4 / -2 * 3 + 5", parse: (*Infix).ParseExpression, wantPos: 8, want: -1},
		{name: "expression three addendums", input: "4 / -2 * 3 + 5 - 64 % 9", parse: (*Infix).ParseExpression, wantPos: 12, want: -2},

		{name: "factor parenthesized", input: "( 4 / -2 * 3 )", parse: (*Infix).ParseFactor, wantPos: 8, want: -6},
		{name: "factor nested group", input: "( 4 / ( -2 * 3 ) + 5 )", parse: (*Infix).ParseFactor, wantPos: 12, want: 5},
		{
			name:    "factor deeply grouped",
			input:   "( 4 / ( -2 ) * ( 3 + ( 5 ) ) - 64 % 9 )",
			parse:   (*Infix).ParseFactor,
			wantPos: 20,
			want:    -17,
		},

		{name: "term stops before plus", input: "2 * 3 + 4", parse: (*Infix).ParseTerm, wantPos: 3, want: 6},
		{name: "factor stops before operator", input: "7 * 3", parse: (*Infix).ParseFactor, wantPos: 1, want: 7},
		{name: "expression stops at closing paren", input: "1 + 2 ) 3", parse: (*Infix).ParseExpression, wantPos: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewInfix(tokenize(t, tt.input))

			node, err := tt.parse(p)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, p.Pos())
			assert.Equal(t, tt.want, evaluate(t, node))
		})
	}
}

func TestParseInfix(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "  11 ", want: 11},
		{input: "+ 5", want: 5},
		{input: "5 + + 5", want: 10},
		{input: " ( ( (   ( -100  )  ) )   ) ", want: -100},
		{input: "5 * -4 ", want: -20},
		{input: " ( ( 10 ) / 5 ) ", want: 2},
		{input: " 10 + -4 - 5 % 4 * 7", want: -1},
		{input: "( ( 1 + ( 2 + ( 3 + ( 4 + ( 5 )  ) ) ) ) % ( ( 10 ) ) ) ", want: 5},
		{input: "( 5 + 3 ) * ( -5 - -7 )", want: 16},
		{input: "1 * ( ( ( 2 * 3 ) * ( 4 + 5 ) + 6 + 7 ) * ( 8 * 9 + 10 * 11 ) * 12 )", want: 146_328},
		{input: "10 - 2 - 3", want: 5},
		{input: "100 / 10 / 5", want: 2},
		{input: "2 + 3 * 4", want: 14},
		{input: "- - 3", want: 3},
		{input: "-(2 + 3)", want: -5},
		{input: "sqr 3", want: 3},
		{input: "abs -3", want: -3},
		{input: "sqr (2 + 1) * 2", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseInfix(tokenize(t, tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.want, evaluate(t, node))
		})
	}
}

func TestParseInfix_Tree(t *testing.T) {
	node, err := ParseInfix(tokenize(t, "1 - 2 * -3"))
	require.NoError(t, err)

	want := expr.NewBinary(expr.Subtract,
		expr.NewConstant(1),
		expr.NewBinary(expr.Multiply, expr.NewConstant(2), expr.NewUnary(expr.Negate, expr.NewConstant(3))),
	)
	assert.Equal(t, want, node)
}

func TestParseInfix_StrictKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "sqr 3", want: 9},
		{input: "abs -3", want: 3},
		{input: "sqr (2 + 1) * 2", want: 18},
		{input: "1 + abs (2 - 7)", want: 6},
		{input: "sqr sqr 2", want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseInfix(tokenize(t, tt.input), WithStrictKeywords())

			require.NoError(t, err)
			assert.Equal(t, tt.want, evaluate(t, node))
		})
	}
}

func TestParseInfix_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind apperr.Kind
		wantMsg  string
	}{
		{name: "empty", input: "", wantKind: apperr.KindMalformedExpression, wantMsg: errTooFewArguments},
		{name: "lone open paren", input: "(", wantKind: apperr.KindMalformedExpression, wantMsg: errTooFewArguments},
		{name: "empty parens", input: "( )", wantKind: apperr.KindMalformedExpression, wantMsg: errNoMatchingOpen},
		{name: "adjacent numbers", input: "5 5", wantKind: apperr.KindMalformedExpression, wantMsg: errExtraTokens},
		{name: "adjacent groups", input: "( 10 - 5 ) ( 5 * 10 )", wantKind: apperr.KindMalformedExpression, wantMsg: errExtraTokens},
		{name: "unclosed group", input: "( 10 - 5 + ( 5 * 10 )", wantKind: apperr.KindMalformedExpression, wantMsg: errNoMatchingClose},
		{name: "dangling operator", input: "1 +", wantKind: apperr.KindMalformedExpression, wantMsg: errTooFewArguments},
		{name: "dangling multiplier", input: "2 *", wantKind: apperr.KindMalformedExpression, wantMsg: errTooFewArguments},
		{name: "stray closing paren", input: "1 )", wantKind: apperr.KindMalformedExpression, wantMsg: errExtraTokens},
		{name: "min is not infix", input: "min 1 2", wantKind: apperr.KindMalformedExpression, wantMsg: errInvalidToken},
		{name: "unknown word in factor", input: "foo", wantKind: apperr.KindUnknownSymbol},
		{name: "unknown word after term", input: "2 foo", wantKind: apperr.KindUnknownSymbol},
		{name: "unknown word after factor", input: "2 * 3 bar + 1", wantKind: apperr.KindUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseInfix(tokenize(t, tt.input))

			require.Error(t, err)
			assert.Nil(t, node)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			if tt.wantMsg != "" {
				var se *apperr.SyntaxError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantMsg, se.Message)
			}
		})
	}
}

func TestParseInfix_ErrorPositions(t *testing.T) {
	_, err := ParseInfix(tokenize(t, "1 + 2 foo"))
	var sym *apperr.SymbolError
	require.ErrorAs(t, err, &sym)
	assert.Equal(t, "foo", sym.Symbol)
	assert.Equal(t, 6, sym.Pos)

	_, err = ParseInfix(tokenize(t, "12 +"))
	var syn *apperr.SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, 4, syn.Pos)
}

func TestParseInfix_MaxDepth(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		node, err := ParseInfix(tokenize(t, "((1))"), WithMaxDepth(3))
		require.NoError(t, err)
		assert.Equal(t, int64(1), evaluate(t, node))
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := ParseInfix(tokenize(t, "(((1)))"), WithMaxDepth(3))
		var se *apperr.SyntaxError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, errTooDeep, se.Message)
	})

	t.Run("default limit accepts long unary chain", func(t *testing.T) {
		node, err := ParseInfix(tokenize(t, strings.Repeat("- ", DefaultMaxDepth-1)+"1"))
		require.NoError(t, err)
		assert.Equal(t, int64(-1), evaluate(t, node))
	})

	t.Run("default limit rejects deeper chain", func(t *testing.T) {
		_, err := ParseInfix(tokenize(t, strings.Repeat("-", DefaultMaxDepth)+"1"))
		var se *apperr.SyntaxError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, errTooDeep, se.Message)
	})

	t.Run("non-positive limit is ignored", func(t *testing.T) {
		node, err := ParseInfix(tokenize(t, "((((1))))"), WithMaxDepth(0))
		require.NoError(t, err)
		assert.Equal(t, int64(1), evaluate(t, node))
	})
}

func TestParseInfix_ReusesNoState(t *testing.T) {
	tokens := tokenize(t, "(1 + 2) * 3")

	first, err := ParseInfix(tokens)
	require.NoError(t, err)
	second, err := ParseInfix(tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
