package main

import (
	"fmt"
	"io"
)

const usage = `notation-converter --from <input_format> --to <output_format> "<expression>"`

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `Expression Notation Converter
Converts arithmetic expressions between infix, prefix, and postfix notations.

Usage: %s

Options:
  --from <input_format>     Input format: infix, prefix, or postfix
  --to <output_format>      Output format: infix, prefix, or postfix
  "<expression>"            Expression string, quoted if it contains spaces
  --tree                    Also print the expression tree to stderr
  --verbose                 Log each conversion stage to stderr
  -h, --help                Show this help message
  --guide                   Show detailed usage guide

Examples:
  notation-converter --from prefix --to infix "+ 1 * 2 3"
  notation-converter --from infix --to postfix "( 1 + 2 ) * 3"
  notation-converter --from postfix --to prefix "1 2 3 * +"
`, usage)
}

func printGuide(w io.Writer) {
	fmt.Fprintf(w, `Expression Notation Converter - Guide
=====================================

Syntax:
  %s
  notation-converter --help
  notation-converter --guide

Notations:
  INFIX              operators between operands, e.g. (1 + 2) * 3
                     parentheses group sub-expressions
  PREFIX (Polish)    operators before operands, e.g. * + 1 2 3
  POSTFIX (RPN)      operators after operands, e.g. 1 2 + 3 *
                     prefix and postfix never use parentheses

Conversion:
  1. The expression is validated in the input notation. If it is
     malformed there but well-formed in another notation, that
     notation is reported.
  2. An expression tree is built from the input.
  3. The tree is traversed to produce the output:
       in-order    -> infix, fully parenthesized
       pre-order   -> prefix
       post-order  -> postfix

Input:
  - Operands are single characters: 0-9, A-Z, a-z.
  - Operators are +, -, *, /. Operators of equal precedence
    group from left to right; * and / bind tighter than + and -.
  - Tokens may be separated by spaces or written adjacent.

Examples:
  $ notation-converter --from prefix --to infix "* + A B C"
  ((A + B) * C)

  $ notation-converter --from infix --to postfix "(A + B) * C"
  A B + C *

  $ notation-converter --from postfix --to prefix "A B C * +"
  + A * B C

Errors (exit status 1):
  - missing or invalid arguments and format specifiers
  - invalid characters
  - missing operands or operators
  - unbalanced parentheses (infix) or any parentheses (prefix, postfix)
  - an expression written in a different notation than declared
`, usage)
}
