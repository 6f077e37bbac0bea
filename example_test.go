package notation_test

import (
	"errors"
	"fmt"

	"github.com/alttpo/notation"
)

func ExampleConvert() {
	out, err := notation.Convert("( 1 + 2 ) * 3", notation.Infix, notation.Prefix)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	out, _ = notation.Convert("+ 2 * 3 4", notation.Prefix, notation.Infix)
	fmt.Println(out)
	// Output:
	// * + 1 2 3
	// (2 + (3 * 4))
}

func ExampleConvert_wrongFormat() {
	_, err := notation.Convert("1 2 +", notation.Infix, notation.Postfix)

	var wf *notation.WrongFormatError
	if errors.As(err, &wf) {
		fmt.Println("looks like", wf.Actual)
	}
	// Output:
	// looks like postfix
}

func ExampleIsValid() {
	fmt.Println(notation.IsValid("1 2 +", notation.Postfix))
	fmt.Println(notation.IsValid("1 +", notation.Postfix))
	fmt.Println(notation.IsValid("1 2 3 +", notation.Postfix))
	fmt.Println(notation.IsValid("(1+2", notation.Infix))
	// Output:
	// valid
	// insufficient operand
	// insufficient operator
	// unbalanced parentheses
}

func ExampleNode_SExpr() {
	tokens := notation.Tokenize("a * (b - c)")
	tree, err := notation.Build(tokens, notation.Infix)
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.SExpr())
	fmt.Println(notation.Emit(tree, notation.Postfix))
	// Output:
	// (* a (- b c))
	// a b c - *
}
