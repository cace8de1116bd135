package calc

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInfix(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "4 / -2 * 3", want: -6},
		{input: "4 / -2 * 3 + 5", want: -1},
		{input: "( ( ( ( -100 ) ) ) )", want: -100},
		{input: "( 5 + 3 ) * ( -5 - -7 )", want: 16},
		{input: "5 + + 5", want: 10},
		{input: "  11 ", want: 11},
		{input: " 10 + -4 - 5 % 4 * 7", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EvaluateInfix(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatePolish(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "+ 5", want: 5},
		{input: "+ 4 9", want: 13},
		{input: "min max 2 3 sqr abs -3", want: 3},
		{input: "* (+max abs + (-3) / 16 5 1) (-min sqr + 4 % 6 (+2) 100)", want: -16},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EvaluatePolish(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_ErrorKinds(t *testing.T) {
	tests := []struct {
		notation Notation
		input    string
		wantKind apperr.Kind
	}{
		{notation: Infix, input: "5 5", wantKind: apperr.KindMalformedExpression},
		{notation: Polish, input: "3 -3", wantKind: apperr.KindMalformedExpression},
		{notation: Infix, input: "(", wantKind: apperr.KindMalformedExpression},
		{notation: Infix, input: "( )", wantKind: apperr.KindMalformedExpression},
		{notation: Polish, input: "( 1", wantKind: apperr.KindMalformedExpression},
		{notation: Polish, input: "1 )", wantKind: apperr.KindMalformedExpression},
		{notation: Infix, input: "", wantKind: apperr.KindMalformedExpression},
		{notation: Polish, input: "", wantKind: apperr.KindMalformedExpression},
		{notation: Infix, input: "99999999999999999999", wantKind: apperr.KindMalformedExpression},
		{notation: Polish, input: "whatisthis", wantKind: apperr.KindUnknownSymbol},
		{notation: Infix, input: "10 * 8 - 9 ! 9", wantKind: apperr.KindUnknownSymbol},
		{notation: Infix, input: "2 + x", wantKind: apperr.KindUnknownSymbol},
		{notation: Infix, input: "1 / 0", wantKind: apperr.KindArithmetic},
		{notation: Infix, input: "7 % (3 - 3)", wantKind: apperr.KindArithmetic},
		{notation: Polish, input: "/ 5 - 2 2", wantKind: apperr.KindArithmetic},
		{notation: "rpn", input: "1 2 +", wantKind: apperr.KindValidation},
	}

	c := New()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %q", tt.notation, tt.input), func(t *testing.T) {
			got, err := c.Evaluate(tt.notation, tt.input)

			require.Error(t, err)
			assert.Zero(t, got)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestCalculator_StrictKeywords(t *testing.T) {
	loose, err := New().EvaluateInfix("sqr abs -3")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), loose)

	strict, err := New(WithStrictKeywords()).EvaluateInfix("sqr abs -3")
	require.NoError(t, err)
	assert.Equal(t, int64(9), strict)
}

func TestCalculator_MaxDepth(t *testing.T) {
	c := New(WithMaxDepth(2))
	assert.Equal(t, 2, c.MaxDepth())

	_, err := c.EvaluateInfix("((1))")
	assert.Equal(t, apperr.KindMalformedExpression, apperr.KindOf(err))

	got, err := c.EvaluateInfix("(1)")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestCalculator_Deterministic(t *testing.T) {
	c := New()
	inputs := []string{"( 5 + 3 ) * ( -5 - -7 )", "1 / 0", "5 5", "2 ^ 3"}

	for _, input := range inputs {
		firstVal, firstErr := c.EvaluateInfix(input)
		for range 5 {
			val, err := c.EvaluateInfix(input)
			assert.Equal(t, firstVal, val)
			assert.Equal(t, firstErr, err)
		}
	}
}

func TestCalculator_Concurrent(t *testing.T) {
	c := New()
	const workers = 16

	var wg sync.WaitGroup
	results := make([]int64, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.EvaluateInfix(fmt.Sprintf("%d * ( 2 + 3 ) - 1", i))
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, int64(i*5-1), results[i])
	}
}

func TestCalculator_PolishRenderingRoundTrip(t *testing.T) {
	c := New(WithStrictKeywords())
	inputs := []string{
		"( 5 + 3 ) * ( -5 - -7 )",
		"1 * ( ( ( 2 * 3 ) * ( 4 + 5 ) + 6 + 7 ) * ( 8 * 9 + 10 * 11 ) * 12 )",
		"- + 4",
		"abs (2 - 9) % sqr 2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := c.Compile(Infix, input)
			require.NoError(t, err)
			want, err := expr.Evaluate(tree)
			require.NoError(t, err)

			got, err := c.EvaluatePolish(expr.Polish(tree))

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCalculator_PolishRenderingMinInt64(t *testing.T) {
	tree := expr.NewBinary(expr.Min, expr.NewConstant(math.MinInt64), expr.NewConstant(7))

	got, err := EvaluatePolish(expr.Polish(tree))

	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)
}

func TestCalculator_Run(t *testing.T) {
	c := New()

	ok := c.Run(Polish, "+ 4 9")
	assert.True(t, ok.OK())
	assert.Equal(t, int64(13), ok.Value)
	assert.NotNil(t, ok.Tree)
	assert.Equal(t, Polish, ok.Notation)
	assert.Equal(t, "+ 4 9", ok.Expression)

	failed := c.Run(Infix, "4 / 0")
	assert.False(t, failed.OK())
	assert.Zero(t, failed.Value)
	assert.NotNil(t, failed.Tree)
	assert.Equal(t, apperr.KindArithmetic, apperr.KindOf(failed.Err))

	bad := c.Run(Infix, "4 4")
	assert.Nil(t, bad.Tree)
	assert.Equal(t, apperr.KindMalformedExpression, apperr.KindOf(bad.Err))
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input   string
		want    Notation
		wantErr bool
	}{
		{input: "infix", want: Infix},
		{input: " Polish ", want: Polish},
		{input: "prefix", want: Polish},
		{input: "postfix", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNotation(tt.input)
			if tt.wantErr {
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}
