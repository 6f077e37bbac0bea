package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		format Format
		want   Result
	}{
		{"xpass: infix operand", "a", Infix, Valid},
		{"xpass: infix precedence", "2 + 3 * 4", Infix, Valid},
		{"xpass: infix parentheses", "( 1 + 2 ) * 3", Infix, Valid},
		{"xpass: infix adjacent", "(A+B)*(C-D)/e", Infix, Valid},
		{"xpass: infix nested", "((1))", Infix, Valid},
		{"xfail: infix open", "(1+2", Infix, UnbalancedParentheses},
		{"xfail: infix close first", ")1+2(", Infix, UnbalancedParentheses},
		{"xfail: infix extra close", "(1+2))", Infix, UnbalancedParentheses},
		{"xfail: infix unbalanced outranks operand", "(1+", Infix, UnbalancedParentheses},
		{"xfail: infix trailing operator", "1 +", Infix, InsufficientOperand},
		{"xfail: infix leading operator", "* 1 2", Infix, InsufficientOperand},
		{"xfail: infix empty", "", Infix, InsufficientOperand},
		{"xfail: infix empty parentheses", "()", Infix, InsufficientOperand},
		{"xfail: infix operator before close", "(1+)2", Infix, InsufficientOperand},
		{"xfail: infix adjacent operands", "1 2 + 3", Infix, InsufficientOperator},
		{"xfail: infix operand before open", "1 (2)", Infix, InsufficientOperator},
		{"xfail: infix invalid", "1 % 2", Infix, InvalidCharacter},

		{"xpass: postfix", "1 2 +", Postfix, Valid},
		{"xpass: postfix single", "x", Postfix, Valid},
		{"xpass: postfix chain", "1 2 3 * + 4 -", Postfix, Valid},
		{"xfail: postfix underflow", "1 +", Postfix, InsufficientOperand},
		{"xfail: postfix leading operator", "+ 1 2", Postfix, InsufficientOperand},
		{"xfail: postfix leftover", "1 2 3 +", Postfix, InsufficientOperator},
		{"xfail: postfix empty", "", Postfix, InsufficientOperand},
		{"xfail: postfix parentheses", "( 1 2 + )", Postfix, IllegalParenthesesInNotation},
		{"xfail: postfix invalid", "1 2 ^", Postfix, InvalidCharacter},

		{"xpass: prefix", "+ 1 2", Prefix, Valid},
		{"xpass: prefix single", "7", Prefix, Valid},
		{"xpass: prefix nested", "* + A B - C D", Prefix, Valid},
		{"xfail: prefix underflow", "+ 1", Prefix, InsufficientOperand},
		{"xfail: prefix trailing operator", "1 2 +", Prefix, InsufficientOperand},
		{"xfail: prefix leftover", "+ 1 2 3", Prefix, InsufficientOperator},
		{"xfail: prefix empty", "", Prefix, InsufficientOperand},
		{"xfail: prefix parentheses", "+ (1) 2", Prefix, IllegalParenthesesInNotation},
		{"xfail: prefix invalid", "+ 1 =", Prefix, InvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.expr, tt.format))
		})
	}
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, Valid.Err())
	assert.ErrorIs(t, InsufficientOperand.Err(), ErrInsufficientOperand)
	assert.ErrorIs(t, InsufficientOperator.Err(), ErrInsufficientOperator)
	assert.ErrorIs(t, InvalidCharacter.Err(), ErrInvalidCharacter)
	assert.ErrorIs(t, UnbalancedParentheses.Err(), ErrUnbalancedParentheses)
	assert.ErrorIs(t, IllegalParenthesesInNotation.Err(), ErrIllegalParentheses)
	assert.Equal(t, "insufficient operator", InsufficientOperator.String())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		exclude Format
		want    Format
		wantOk  bool
	}{
		{"xpass: postfix given as infix", "1 2 +", Infix, Postfix, true},
		{"xpass: prefix given as infix", "+ 1 2", Infix, Prefix, true},
		{"xpass: infix given as postfix", "1 + 2", Postfix, Infix, true},
		{"xfail: garbage", "+ +", Infix, Infix, false},
		{"xfail: only valid as excluded", "(1 + 2)", Infix, Infix, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(Tokenize(tt.expr), tt.exclude)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
