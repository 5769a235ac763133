// Package decorator converts decorator invocations into structured,
// evaluated call descriptors.
package decorator

import (
	"fmt"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/eval"
	"github.com/routelabel/routelabel/internal/syntax"
)

// CallDescriptor is the flattened, evaluated form of one decorator
// invocation. It is immutable after construction.
type CallDescriptor struct {
	// Name is the dotted identifier the decorator was invoked through,
	// e.g. "route" or "app.route".
	Name string

	// Positional holds the evaluated positional arguments in source
	// order.
	Positional []any

	// Keyword maps keyword-argument names to their evaluated values.
	Keyword map[string]any
}

// String renders the descriptor for diagnostics.
func (d *CallDescriptor) String() string {
	return fmt.Sprintf("@%s(%d args, %d kwargs)", d.Name, len(d.Positional), len(d.Keyword))
}

// FlattenName flattens a bare identifier or a dotted attribute chain
// into its source spelling. Any other base expression fails with
// MalformedDecorator: a dynamically constructed callee has no static
// name to resolve.
func FlattenName(node syntax.Node) (string, error) {
	switch n := node.(type) {
	case *syntax.Name:
		return n.ID, nil
	case *syntax.Attribute:
		base, err := FlattenName(n.Value)
		if err != nil {
			return "", err
		}
		return base + "." + n.Attr, nil
	default:
		return "", errors.MalformedDecorator(
			fmt.Sprintf("cannot flatten a %s into a name", syntax.KindOf(node)))
	}
}

// Flatten produces the call descriptor for one decorator node.
//
// A decorator written without parentheses arrives as a bare Name or
// Attribute and flattens to a descriptor with no arguments. For a call
// form, keyword children land in Keyword and every other non-nil child
// is appended to Positional in source order, with values evaluated
// through the literal evaluator.
//
// Errors with the MalformedDecorator code mean the callee itself is not
// name-like; argument evaluation failures keep their own codes so the
// extractor can tell the two cases apart.
func Flatten(node syntax.Node, globals eval.Bindings) (*CallDescriptor, error) {
	switch n := node.(type) {
	case *syntax.Name, *syntax.Attribute:
		name, err := FlattenName(n)
		if err != nil {
			return nil, err
		}
		return &CallDescriptor{Name: name, Keyword: map[string]any{}}, nil

	case *syntax.Call:
		name, err := FlattenName(n.Func)
		if err != nil {
			return nil, err
		}
		desc := &CallDescriptor{Name: name, Keyword: map[string]any{}}
		for _, arg := range n.Args {
			if arg == nil {
				continue
			}
			if kw, ok := arg.(*syntax.Keyword); ok {
				value, err := eval.Evaluate(kw.Value, globals)
				if err != nil {
					return nil, err
				}
				desc.Keyword[kw.Name] = value
				continue
			}
			value, err := eval.Evaluate(arg, globals)
			if err != nil {
				return nil, err
			}
			desc.Positional = append(desc.Positional, value)
		}
		return desc, nil

	default:
		return nil, errors.MalformedDecorator(
			fmt.Sprintf("unexpected %s in decorator position", syntax.KindOf(node)))
	}
}
