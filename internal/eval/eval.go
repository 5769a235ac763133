// Package eval implements the restricted literal evaluator.
//
// Evaluation reconstructs the value a decorator argument would have at
// import time, purely from tree structure: constants, tuple/list/dict
// literals, a narrow add/subtract case, and names resolved against the
// module's global-bindings snapshot. It never executes anything and is
// deterministic for a given node and snapshot.
package eval

import (
	"reflect"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/syntax"
)

// Tuple distinguishes evaluated tuple literals from list literals,
// which both arrive as ordered Go slices.
type Tuple []any

// Bindings is the read-only global-bindings snapshot for one module.
type Bindings map[string]any

// builtin constants resolved before the bindings snapshot is consulted.
var builtinConsts = map[string]any{
	"True":  true,
	"False": false,
	"None":  nil,
}

// Evaluate computes the value of node against the given snapshot.
// Failures carry one of the NameNotGlobal, UnsupportedOperation or
// UnsupportedExpression codes.
func Evaluate(node syntax.Node, globals Bindings) (any, error) {
	switch n := node.(type) {
	case *syntax.Constant:
		return n.Value, nil

	case *syntax.Tuple:
		elts, err := evaluateAll(n.Elts, globals)
		if err != nil {
			return nil, err
		}
		return Tuple(elts), nil

	case *syntax.List:
		elts, err := evaluateAll(n.Elts, globals)
		if err != nil {
			return nil, err
		}
		return elts, nil

	case *syntax.Dict:
		// Keys first, then values, as two separate passes. The split
		// matters for failure parity: a bad value must not mask an
		// earlier bad key and vice versa.
		keys, err := evaluateAll(n.Keys, globals)
		if err != nil {
			return nil, err
		}
		values, err := evaluateAll(n.Values, globals)
		if err != nil {
			return nil, err
		}
		m := make(map[any]any, len(keys))
		for i, k := range keys {
			if k != nil && !reflect.TypeOf(k).Comparable() {
				return nil, errors.UnsupportedExpression("unhashable dict key").WithLocation(at(n.Keys[i].Pos()))
			}
			m[k] = values[i]
		}
		return m, nil

	case *syntax.BinOp:
		return evaluateBinOp(n, globals)

	case *syntax.Name:
		if v, ok := builtinConsts[n.ID]; ok {
			return v, nil
		}
		if v, ok := globals[n.ID]; ok {
			return v, nil
		}
		return nil, errors.NameNotGlobal(n.ID).WithLocation(at(n.Position))

	default:
		return nil, errors.UnsupportedExpression(syntax.KindOf(node)).WithLocation(at(node.Pos()))
	}
}

func evaluateAll(nodes []syntax.Node, globals Bindings) ([]any, error) {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		v, err := Evaluate(n, globals)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evaluateBinOp handles add and subtract. The operation is only
// performed when at least one operand is a complex number; everything
// else is rejected, even though add on plain numbers or strings would
// be semantically sensible. This restriction is inherited from the
// tool's lineage and is preserved on purpose; see DESIGN.md.
func evaluateBinOp(n *syntax.BinOp, globals Bindings) (any, error) {
	left, err := Evaluate(n.Left, globals)
	if err != nil {
		return nil, err
	}
	right, err := Evaluate(n.Right, globals)
	if err != nil {
		return nil, err
	}
	_, leftComplex := left.(complex128)
	_, rightComplex := right.(complex128)
	if !leftComplex && !rightComplex {
		return nil, errors.UnsupportedOperation(n.Op.String()).WithLocation(at(n.Position))
	}
	lc, ok := toComplex(left)
	if !ok {
		return nil, errors.UnsupportedOperation(n.Op.String()).WithLocation(at(n.Position))
	}
	rc, ok := toComplex(right)
	if !ok {
		return nil, errors.UnsupportedOperation(n.Op.String()).WithLocation(at(n.Position))
	}
	switch n.Op {
	case syntax.OpAdd:
		return lc + rc, nil
	case syntax.OpSub:
		return lc - rc, nil
	default:
		return nil, errors.UnsupportedOperation(n.Op.String()).WithLocation(at(n.Position))
	}
}

func toComplex(v any) (complex128, bool) {
	switch n := v.(type) {
	case complex128:
		return n, true
	case int64:
		return complex(float64(n), 0), true
	case float64:
		return complex(n, 0), true
	default:
		return 0, false
	}
}

func at(pos syntax.Position) errors.SourceLocation {
	return errors.SourceLocation{Line: pos.Line, Column: pos.Column}
}
