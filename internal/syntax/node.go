// Package syntax defines the tree consumed by the route analyzer.
//
// The node set is deliberately closed: it covers exactly the constructs
// that can appear in a decorator invocation plus the module-level
// containers the extractor walks. Anything a frontend cannot express
// with these variants is simply not visible to the analyzer, which is
// the desired failure mode for expressions the evaluator would reject
// anyway.
package syntax

import "fmt"

// Position identifies a location in the original source file.
type Position struct {
	Line   int // 1-based
	Column int // 0-based, as reported by the parser
}

// String returns "line:column" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is the sealed interface implemented by every syntax-tree variant.
type Node interface {
	Pos() Position
	node()
}

// Module is the root of one parsed source file.
type Module struct {
	Doc  string // module docstring, "" if absent
	Body []Node
}

// FunctionDef is a module-level function definition together with its
// decorator list, in source order.
type FunctionDef struct {
	Position   Position
	Name       string
	Decorators []Node // Call, Name or Attribute nodes
	Doc        string // docstring, "" if absent
}

// ClassDef is recorded so the extractor can explicitly ignore class
// bodies; methods on classes are not routes.
type ClassDef struct {
	Position Position
	Name     string
	Body     []Node
}

// Call is a call expression: a callee plus its arguments. Keyword
// arguments appear in Args as *Keyword nodes, interleaved with the
// positional ones in source order.
type Call struct {
	Position Position
	Func     Node
	Args     []Node
}

// Keyword is a name=value argument inside a Call.
type Keyword struct {
	Position Position
	Name     string
	Value    Node
}

// Name is a bare identifier reference.
type Name struct {
	Position Position
	ID       string
}

// Attribute is a dotted attribute access, e.g. app.route.
type Attribute struct {
	Position Position
	Value    Node
	Attr     string
}

// Constant is a literal scalar. Value holds one of: nil, bool, int64,
// float64, complex128 or string.
type Constant struct {
	Position Position
	Value    any
}

// Tuple is an ordered tuple literal.
type Tuple struct {
	Position Position
	Elts     []Node
}

// List is an ordered list literal.
type List struct {
	Position Position
	Elts     []Node
}

// Dict is a mapping literal. Keys and Values run in parallel.
type Dict struct {
	Position Position
	Keys     []Node
	Values   []Node
}

// Op enumerates the binary operators the evaluator recognizes.
type Op int

const (
	OpAdd Op = iota
	OpSub
)

// String returns the operator as written in source.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	default:
		return "?"
	}
}

// BinOp is a binary arithmetic expression.
type BinOp struct {
	Position Position
	Op       Op
	Left     Node
	Right    Node
}

// Opaque stands in for any source construct outside the supported
// variant set, e.g. a comprehension or a call in argument position.
// The evaluator rejects it with UnsupportedExpression, which is the
// defined behavior for everything it cannot reconstruct.
type Opaque struct {
	Position Position
	Kind     string // frontend's name for the construct
}

func (*Module) Pos() Position      { return Position{Line: 1} }
func (n *FunctionDef) Pos() Position { return n.Position }
func (n *ClassDef) Pos() Position  { return n.Position }
func (n *Call) Pos() Position      { return n.Position }
func (n *Keyword) Pos() Position   { return n.Position }
func (n *Name) Pos() Position      { return n.Position }
func (n *Attribute) Pos() Position { return n.Position }
func (n *Constant) Pos() Position  { return n.Position }
func (n *Tuple) Pos() Position     { return n.Position }
func (n *List) Pos() Position      { return n.Position }
func (n *Dict) Pos() Position      { return n.Position }
func (n *BinOp) Pos() Position     { return n.Position }
func (n *Opaque) Pos() Position    { return n.Position }

func (*Module) node()      {}
func (*FunctionDef) node() {}
func (*ClassDef) node()    {}
func (*Call) node()        {}
func (*Keyword) node()     {}
func (*Name) node()        {}
func (*Attribute) node()   {}
func (*Constant) node()    {}
func (*Tuple) node()       {}
func (*List) node()        {}
func (*Dict) node()        {}
func (*BinOp) node()       {}
func (*Opaque) node()      {}

// KindOf returns a short description of a node's variant for error
// messages.
func KindOf(n Node) string {
	switch n := n.(type) {
	case *Module:
		return "module"
	case *FunctionDef:
		return "function definition"
	case *ClassDef:
		return "class definition"
	case *Call:
		return "call"
	case *Keyword:
		return "keyword argument"
	case *Name:
		return "name"
	case *Attribute:
		return "attribute access"
	case *Constant:
		return "constant"
	case *Tuple:
		return "tuple literal"
	case *List:
		return "list literal"
	case *Dict:
		return "dict literal"
	case *BinOp:
		return "binary operation"
	case *Opaque:
		return n.Kind
	default:
		return "unknown node"
	}
}
