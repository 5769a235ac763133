package pyparse

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/routelabel/routelabel/internal/syntax"
)

// lowerExpr lowers one expression node. Constructs outside the
// evaluator's supported set become Opaque nodes; the evaluator turns
// those into UnsupportedExpression failures, which is exactly the
// degradation the analyzer wants.
func lowerExpr(node *sitter.Node, src []byte) syntax.Node {
	switch node.Type() {
	case "identifier":
		return &syntax.Name{Position: position(node), ID: node.Content(src)}

	case "true", "false", "none":
		// Lowered as names so they resolve through the evaluator's
		// built-in constant table.
		return &syntax.Name{Position: position(node), ID: node.Content(src)}

	case "attribute":
		attr := &syntax.Attribute{Position: position(node)}
		if obj := node.ChildByFieldName("object"); obj != nil {
			attr.Value = lowerExpr(obj, src)
		}
		if name := node.ChildByFieldName("attribute"); name != nil {
			attr.Attr = name.Content(src)
		}
		if attr.Value == nil || attr.Attr == "" {
			return opaque(node)
		}
		return attr

	case "call":
		call := &syntax.Call{Position: position(node)}
		if fn := node.ChildByFieldName("function"); fn != nil {
			call.Func = lowerExpr(fn, src)
		}
		if call.Func == nil {
			return opaque(node)
		}
		if args := node.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				call.Args = append(call.Args, lowerArgument(args.NamedChild(i), src))
			}
		}
		return call

	case "string":
		return &syntax.Constant{Position: position(node), Value: stringContent(node, src)}

	case "concatenated_string":
		// Adjacent string literals collapse into one constant, the
		// same value the source would have at import time.
		var b strings.Builder
		for i := 0; i < int(node.NamedChildCount()); i++ {
			part := node.NamedChild(i)
			if part.Type() != "string" {
				return opaque(node)
			}
			b.WriteString(stringContent(part, src))
		}
		return &syntax.Constant{Position: position(node), Value: b.String()}

	case "integer":
		return lowerNumber(node, src, false)

	case "float":
		return lowerNumber(node, src, true)

	case "list":
		out := &syntax.List{Position: position(node)}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			out.Elts = append(out.Elts, lowerExpr(node.NamedChild(i), src))
		}
		return out

	case "tuple":
		out := &syntax.Tuple{Position: position(node)}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			out.Elts = append(out.Elts, lowerExpr(node.NamedChild(i), src))
		}
		return out

	case "dictionary":
		out := &syntax.Dict{Position: position(node)}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			pair := node.NamedChild(i)
			if pair.Type() != "pair" {
				// Splats and comprehension parts poison the literal.
				out.Keys = append(out.Keys, opaque(pair))
				out.Values = append(out.Values, &syntax.Constant{Position: position(pair)})
				continue
			}
			key := pair.ChildByFieldName("key")
			value := pair.ChildByFieldName("value")
			if key == nil || value == nil {
				out.Keys = append(out.Keys, opaque(pair))
				out.Values = append(out.Values, &syntax.Constant{Position: position(pair)})
				continue
			}
			out.Keys = append(out.Keys, lowerExpr(key, src))
			out.Values = append(out.Values, lowerExpr(value, src))
		}
		return out

	case "binary_operator":
		op := node.ChildByFieldName("operator")
		left := node.ChildByFieldName("left")
		right := node.ChildByFieldName("right")
		if op == nil || left == nil || right == nil {
			return opaque(node)
		}
		var kind syntax.Op
		switch op.Content(src) {
		case "+":
			kind = syntax.OpAdd
		case "-":
			kind = syntax.OpSub
		default:
			return opaque(node)
		}
		return &syntax.BinOp{
			Position: position(node),
			Op:       kind,
			Left:     lowerExpr(left, src),
			Right:    lowerExpr(right, src),
		}

	case "parenthesized_expression":
		if node.NamedChildCount() == 1 {
			return lowerExpr(node.NamedChild(0), src)
		}
		return opaque(node)

	default:
		return opaque(node)
	}
}

// lowerArgument lowers one entry of an argument list; keyword
// arguments become Keyword nodes, everything else is an expression.
func lowerArgument(node *sitter.Node, src []byte) syntax.Node {
	if node.Type() != "keyword_argument" {
		return lowerExpr(node, src)
	}
	kw := &syntax.Keyword{Position: position(node)}
	if name := node.ChildByFieldName("name"); name != nil {
		kw.Name = name.Content(src)
	}
	if value := node.ChildByFieldName("value"); value != nil {
		kw.Value = lowerExpr(value, src)
	}
	if kw.Name == "" || kw.Value == nil {
		return opaque(node)
	}
	return kw
}

// lowerNumber parses integer and float tokens, including the imaginary
// j/J suffix, which yields a complex constant.
func lowerNumber(node *sitter.Node, src []byte, isFloat bool) syntax.Node {
	text := node.Content(src)
	if trimmed, ok := strings.CutSuffix(strings.ToLower(text), "j"); ok {
		f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, "_", ""), 64)
		if err != nil {
			return opaque(node)
		}
		return &syntax.Constant{Position: position(node), Value: complex(0, f)}
	}
	if isFloat {
		f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return opaque(node)
		}
		return &syntax.Constant{Position: position(node), Value: f}
	}
	i, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return opaque(node)
	}
	return &syntax.Constant{Position: position(node), Value: i}
}

// stringContent strips the quoting (and any r/b/u/f prefix) from a
// string token.
func stringContent(node *sitter.Node, src []byte) string {
	raw := node.Content(src)
	raw = strings.TrimLeft(raw, "rbufRBUF")
	return strings.Trim(raw, `"'`)
}

func opaque(node *sitter.Node) *syntax.Opaque {
	return &syntax.Opaque{Position: position(node), Kind: node.Type()}
}
