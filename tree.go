package notation

import "strings"

// Node is a vertex of a binary expression tree. Operand nodes are leaves;
// operator nodes always have both children.
type Node struct {
	Value rune
	Left  *Node
	Right *Node
}

// Leaf returns an operand node.
func Leaf(operand rune) *Node {
	return &Node{Value: operand}
}

// Apply links an operator node over left and right.
func Apply(op rune, left, right *Node) (n *Node, err error) {
	if !isOperator(op) || left == nil || right == nil {
		return nil, ErrMalformedTree
	}
	return &Node{Value: op, Left: left, Right: right}, nil
}

// MustApply is Apply but panics on error.
func MustApply(op rune, left, right *Node) *Node {
	n, err := Apply(op, left, right)
	if err != nil {
		panic(err)
	}
	return n
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Check verifies that operands are leaves and operators have two children.
func (n *Node) Check() error {
	if n == nil {
		return ErrMalformedTree
	}
	if isOperand(n.Value) {
		if !n.IsLeaf() {
			return ErrMalformedTree
		}
		return nil
	}
	if !isOperator(n.Value) || n.Left == nil || n.Right == nil {
		return ErrMalformedTree
	}
	if err := n.Left.Check(); err != nil {
		return err
	}
	return n.Right.Check()
}

// Size returns the number of nodes.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// String returns the fully parenthesized infix rendering.
func (n *Node) String() string {
	var sb strings.Builder
	Inorder.appendToBuilder(&sb, n)
	return sb.String()
}
