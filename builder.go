package notation

// Builder links a validated token sequence into an expression tree.
type Builder interface {
	Build(tokens []Token) (n *Node, err error)
}

type postfixBuilder struct{}
type prefixBuilder struct{}
type infixBuilder struct{}

var (
	PostfixBuilder = postfixBuilder{}
	PrefixBuilder  = prefixBuilder{}
	InfixBuilder   = infixBuilder{}
)

// BuilderFor returns the builder that reads f.
func BuilderFor(f Format) Builder {
	switch f {
	case Prefix:
		return PrefixBuilder
	case Postfix:
		return PostfixBuilder
	}
	return InfixBuilder
}

// Build validates nothing; it links tokens of format f into a tree.
func Build(tokens []Token, f Format) (*Node, error) {
	return BuilderFor(f).Build(tokens)
}

// Precedence returns 2 for '*' and '/', 1 for '+' and '-', 0 otherwise.
func Precedence(op rune) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	}
	return 0
}

func buildError(f Format, offset int, err error) error {
	return &BuildError{Format: f, Offset: offset, Err: err}
}

func (postfixBuilder) Build(tokens []Token) (n *Node, err error) {
	return linkPostfix(tokens, Postfix)
}

// linkPostfix pops the right child first, then the left one.
func linkPostfix(tokens []Token, f Format) (n *Node, err error) {
	var nodes stack[*Node]
	end := 0

	for _, t := range tokens {
		end = t.Offset
		switch t.Kind {
		case KindOperand:
			nodes.Push(Leaf(t.Char))
		case KindOperator:
			right, okR := nodes.Pop()
			left, okL := nodes.Pop()
			if !okR || !okL {
				return nil, buildError(f, t.Offset, ErrMalformedTree)
			}
			nodes.Push(&Node{Value: t.Char, Left: left, Right: right})
		default:
			return nil, buildError(f, t.Offset, ErrUnexpectedChar)
		}
	}

	if nodes.Len() != 1 {
		return nil, buildError(f, end, ErrMalformedTree)
	}
	n, _ = nodes.Pop()
	return n, nil
}

// cursor walks a token sequence once, left to right.
type cursor struct {
	tokens []Token
	pos    int
}

func (c *cursor) next() (t Token, ok bool) {
	if c.pos >= len(c.tokens) {
		return t, false
	}
	t = c.tokens[c.pos]
	c.pos++
	return t, true
}

func (c *cursor) offset() int {
	if len(c.tokens) == 0 {
		return 0
	}
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1].Offset
	}
	return c.tokens[c.pos].Offset
}

func (prefixBuilder) Build(tokens []Token) (n *Node, err error) {
	c := &cursor{tokens: tokens}
	n, err = c.parsePrefix()
	if err != nil {
		return nil, err
	}
	if c.pos != len(tokens) {
		return nil, buildError(Prefix, c.offset(), ErrMalformedTree)
	}
	return n, nil
}

// parsePrefix reads an operator, then its whole left subtree, then its
// right subtree.
func (c *cursor) parsePrefix() (n *Node, err error) {
	t, ok := c.next()
	if !ok {
		return nil, buildError(Prefix, c.offset(), ErrMalformedTree)
	}

	switch t.Kind {
	case KindOperand:
		return Leaf(t.Char), nil
	case KindOperator:
		var left, right *Node
		left, err = c.parsePrefix()
		if err != nil {
			return nil, err
		}
		right, err = c.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &Node{Value: t.Char, Left: left, Right: right}, nil
	}
	return nil, buildError(Prefix, t.Offset, ErrUnexpectedChar)
}

func (infixBuilder) Build(tokens []Token) (n *Node, err error) {
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return linkPostfix(postfix, Infix)
}

// ToPostfix reorders infix tokens into postfix with the shunting-yard
// algorithm. Operators of equal precedence associate to the left.
func ToPostfix(tokens []Token) (out []Token, err error) {
	out = make([]Token, 0, len(tokens))
	var ops stack[Token]

	for _, t := range tokens {
		switch t.Kind {
		case KindOperand:
			out = append(out, t)
		case KindLParen:
			ops.Push(t)
		case KindRParen:
			matched := false
			for ops.Len() > 0 {
				top, _ := ops.Pop()
				if top.Kind == KindLParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, buildError(Infix, t.Offset, ErrUnbalancedParentheses)
			}
		case KindOperator:
			for {
				top, ok := ops.Peek()
				if !ok || top.Kind != KindOperator || Precedence(top.Char) < Precedence(t.Char) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(t)
		default:
			return nil, buildError(Infix, t.Offset, ErrUnexpectedChar)
		}
	}

	for ops.Len() > 0 {
		top, _ := ops.Pop()
		if top.Kind == KindLParen {
			return nil, buildError(Infix, top.Offset, ErrUnbalancedParentheses)
		}
		out = append(out, top)
	}
	return out, nil
}
