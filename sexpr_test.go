package notation

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestParseSExpr(t *testing.T) {
	type args struct {
		s io.RuneScanner
	}
	tests := []struct {
		name    string
		args    args
		wantN   *Node
		wantErr error
	}{
		{
			name:  "xpass: operand",
			args:  args{s: strings.NewReader("a")},
			wantN: Leaf('a'),
		},
		{
			name:  "xpass: operand with whitespace",
			args:  args{s: strings.NewReader(" \t9\v\f ")},
			wantN: Leaf('9'),
		},
		{
			name:  "xpass: operator",
			args:  args{s: strings.NewReader("(+ 1 2)")},
			wantN: MustApply('+', Leaf('1'), Leaf('2')),
		},
		{
			name:  "xpass: nested without spaces",
			args:  args{s: strings.NewReader("(*(+ A B)C)")},
			wantN: MustApply('*', MustApply('+', Leaf('A'), Leaf('B')), Leaf('C')),
		},
		{
			name: "xpass: nested right",
			args: args{s: strings.NewReader("(- x (/ y z))")},
			wantN: MustApply('-', Leaf('x'),
				MustApply('/', Leaf('y'), Leaf('z'))),
		},
		{
			name:    "xfail: empty",
			args:    args{s: strings.NewReader("")},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name:    "xfail: mismatched end of list",
			args:    args{s: strings.NewReader(")")},
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "xfail: mismatched start of list",
			args:    args{s: strings.NewReader("(+ 1 2")},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name:    "xfail: empty list",
			args:    args{s: strings.NewReader("()")},
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "xfail: operand head",
			args:    args{s: strings.NewReader("(1 2 3)")},
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "xfail: one child",
			args:    args{s: strings.NewReader("(+ 1)")},
			wantErr: ErrMalformedTree,
		},
		{
			name:    "xfail: three children",
			args:    args{s: strings.NewReader("(+ 1 2 3)")},
			wantErr: ErrMalformedTree,
		},
		{
			name:    "xfail: list containing newline",
			args:    args{s: strings.NewReader("(+ 1\n2)")},
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "xfail: not ascii",
			args:    args{s: strings.NewReader("(+ 1 ü)")},
			wantErr: ErrNotASCII,
		},
		{
			name:    "xfail: trailing garbage",
			args:    args{s: strings.NewReader("(+ 1 2) 3")},
			wantErr: ErrUnexpectedChar,
		},
		{
			name:    "xfail: multi-character operand",
			args:    args{s: strings.NewReader("ab")},
			wantErr: ErrUnexpectedChar,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotN, err := ParseSExpr(tt.args.s)
			if err != tt.wantErr {
				t.Errorf("ParseSExpr() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotN, tt.wantN) {
				t.Errorf("ParseSExpr() gotN = %v, want %v", gotN, tt.wantN)
			}
		})
	}
}

func TestNode_SExpr(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		want string
	}{
		{"a", Leaf('a'), "a"},
		{"(+ 1 2)", MustApply('+', Leaf('1'), Leaf('2')), "(+ 1 2)"},
		{
			"(* (+ A B) (- C D))",
			MustApply('*',
				MustApply('+', Leaf('A'), Leaf('B')),
				MustApply('-', Leaf('C'), Leaf('D'))),
			"(* (+ A B) (- C D))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.n.SExpr()
			if got != tt.want {
				t.Errorf("SExpr() = %v, want %v", got, tt.want)
			}
			back, err := ParseSExpr(strings.NewReader(got))
			if err != nil {
				t.Fatalf("ParseSExpr(%q) error = %v", got, err)
			}
			if !reflect.DeepEqual(back, tt.n) {
				t.Errorf("round trip = %v, want %v", back, tt.n)
			}
		})
	}
}
