package notation

import "strings"

// Emitter renders a tree in one notation.
type Emitter interface {
	Emit(n *Node) string
}

type emitter struct {
	order Format
}

// Inorder writes fully parenthesized infix, Preorder writes prefix and
// Postorder writes postfix. Tokens are separated by single spaces.
var (
	Inorder   = emitter{order: Infix}
	Preorder  = emitter{order: Prefix}
	Postorder = emitter{order: Postfix}
)

// EmitterFor returns the traversal producing f.
func EmitterFor(f Format) Emitter {
	switch f {
	case Prefix:
		return Preorder
	case Postfix:
		return Postorder
	}
	return Inorder
}

// Emit renders n in format f.
func Emit(n *Node, f Format) string {
	return EmitterFor(f).Emit(n)
}

func (e emitter) Emit(n *Node) string {
	var sb strings.Builder
	e.appendToBuilder(&sb, n)
	return sb.String()
}

func (e emitter) appendToBuilder(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch e.order {
	case Infix:
		if n.IsLeaf() {
			sb.WriteRune(n.Value)
			return
		}
		sb.WriteRune('(')
		e.appendToBuilder(sb, n.Left)
		sb.WriteRune(' ')
		sb.WriteRune(n.Value)
		sb.WriteRune(' ')
		e.appendToBuilder(sb, n.Right)
		sb.WriteRune(')')
	case Prefix:
		writeSeparated(sb, n.Value)
		e.appendToBuilder(sb, n.Left)
		e.appendToBuilder(sb, n.Right)
	case Postfix:
		e.appendToBuilder(sb, n.Left)
		e.appendToBuilder(sb, n.Right)
		writeSeparated(sb, n.Value)
	}
}

func writeSeparated(sb *strings.Builder, r rune) {
	if sb.Len() > 0 {
		sb.WriteRune(' ')
	}
	sb.WriteRune(r)
}
