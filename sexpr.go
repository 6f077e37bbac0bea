package notation

import (
	"io"
	"strings"
	"unicode"
)

// SExpr renders n as an s-expression: operands bare, operators as
// (op left right).
func (n *Node) SExpr() string {
	var sb strings.Builder
	n.appendSExpr(&sb)
	return sb.String()
}

func (n *Node) appendSExpr(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		sb.WriteRune(n.Value)
		return
	}
	sb.WriteRune('(')
	sb.WriteRune(n.Value)
	sb.WriteRune(' ')
	n.Left.appendSExpr(sb)
	sb.WriteRune(' ')
	n.Right.appendSExpr(sb)
	sb.WriteRune(')')
}

// ParseSExpr reads one tree written by SExpr. Spaces, tabs, vertical tabs and
// form feeds separate elements; newlines and non-ASCII runes are rejected.
// Anything after the tree other than whitespace is an error.
func ParseSExpr(s io.RuneScanner) (n *Node, err error) {
	var listEnd bool
	n, listEnd, err = parseSExprNode(s)
	if err == io.EOF && n == nil {
		err = io.ErrUnexpectedEOF
	}
	if listEnd {
		err = ErrUnexpectedChar
	}
	if err != nil && err != io.EOF {
		return nil, err
	}

	// only whitespace may follow:
	var r rune
	for {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return nil, err
		}
		var discard bool
		discard, err = shouldDiscard(r)
		if err != nil {
			return nil, err
		}
		if !discard {
			return nil, ErrUnexpectedChar
		}
	}
}

func shouldDiscard(r rune) (discard bool, err error) {
	if r > unicode.MaxASCII {
		return false, ErrNotASCII
	}
	if r == '\r' || r == '\n' {
		return false, ErrUnexpectedChar
	}
	if r == ' ' || r == '\t' || r == '\v' || r == '\f' {
		return true, nil
	}
	return false, nil
}

func parseSExprNode(s io.RuneScanner) (n *Node, listEnd bool, err error) {
	var r rune
	for {
		r, _, err = s.ReadRune()
		if err != nil {
			return
		}

		// skip whitespace or error on bad char:
		var discard bool
		discard, err = shouldDiscard(r)
		if err != nil {
			return
		}
		if discard {
			continue
		}

		switch {
		case r == ')':
			return nil, true, nil
		case r == '(':
			n, err = parseSExprList(s)
			return
		case isOperand(r):
			return Leaf(r), false, nil
		}

		err = ErrUnexpectedChar
		return
	}
}

func parseSExprList(s io.RuneScanner) (n *Node, err error) {
	defer func() {
		// convert regular EOF errors to ErrUnexpectedEOF
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			n = nil
		}
	}()

	var r rune
	for {
		r, _, err = s.ReadRune()
		if err != nil {
			return
		}
		var discard bool
		discard, err = shouldDiscard(r)
		if err != nil {
			return
		}
		if !discard {
			break
		}
	}
	if !isOperator(r) {
		return nil, ErrUnexpectedChar
	}

	children := make([]*Node, 0, 2)
	for {
		var child *Node
		var listEnd bool
		child, listEnd, err = parseSExprNode(s)
		if err != nil {
			return
		}
		if listEnd {
			break
		}
		children = append(children, child)
		if len(children) > 2 {
			return nil, ErrMalformedTree
		}
	}
	if len(children) != 2 {
		return nil, ErrMalformedTree
	}

	return &Node{Value: r, Left: children[0], Right: children[1]}, nil
}
