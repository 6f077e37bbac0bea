// arithmetic notation converter (infix, prefix, postfix)
//
// expressions are built from single-character operands and the four binary
// operators. every conversion goes through a binary expression tree:
//
//   string -> tokens -> validate -> build tree -> traverse -> string
//
// restrictions:
//   1. operands are exactly one character: '0'-'9', 'A'-'Z', 'a'-'z'.
//   2. only ASCII space separates tokens; tokens may also be adjacent.
//   3. parentheses are only legal in infix notation.
//   4. equal-precedence operators associate left to right.
//
// examples:
//
//   infix:   ( 1 + 2 ) * 3     output form: ((1 + 2) * 3)
//   prefix:  * + 1 2 3
//   postfix: 1 2 + 3 *
//
// BNF:
//  <infix>       :: <term> ( <operator> <term> )* ;
//  <term>        :: <operand> | "(" <infix> ")" ;
//
//  <prefix>      :: <operand> | <operator> <prefix> <prefix> ;
//
//  <postfix>     :: <operand> | <postfix> <postfix> <operator> ;
//
//  <operator>    :: "+" | "-" | "*" | "/" ;
//  <operand>     :: <digit> | <upper-case> | <lower-case> ;
//  <digit>       :: "0" | ... | "9" ;
//  <upper-case>  :: "A" | ... | "Z" ;
//  <lower-case>  :: "a" | ... | "z" ;
//
// trees may also be written as s-expressions, e.g. (* (+ 1 2) 3):
//  <sexpr>       :: <operand> | "(" <operator> <sexpr> <sexpr> ")" ;

package notation
