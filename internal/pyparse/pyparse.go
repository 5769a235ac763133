// Package pyparse turns Python source files into the analyzer's syntax
// tree.
//
// Parsing is done with tree-sitter; the concrete syntax tree is then
// lowered into the closed variant set the evaluator and extractor
// understand. Each Parse call creates its own tree-sitter parser, so a
// single Parser value is safe for concurrent use.
package pyparse

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/eval"
	"github.com/routelabel/routelabel/internal/syntax"
)

// ModuleInfo is the parsed form of one Python module: its syntax tree
// plus the global-bindings snapshot used for name resolution.
type ModuleInfo struct {
	Name    string // module name, derived from the file name
	File    string
	Doc     string // module docstring, "" if absent
	Tree    *syntax.Module
	Globals eval.Bindings
}

// Parser parses Python modules.
type Parser struct{}

// NewParser creates a Python frontend.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses one Python source file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*ModuleInfo, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystem("read", path, err)
	}
	return p.Parse(ctx, path, src)
}

// Parse parses Python source into a ModuleInfo. The file name is used
// for the module name and for diagnostics only.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*ModuleInfo, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.WrapParse(filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New(errors.ParseCode, "no syntax tree for %s", filename)
	}

	info := &ModuleInfo{
		Name:    moduleName(filename),
		File:    filename,
		Doc:     moduleDocstring(root, src),
		Globals: moduleBindings(root, src),
	}
	info.Tree = lowerModule(root, src)
	info.Tree.Doc = info.Doc
	return info, nil
}

func moduleName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// moduleBindings builds the global-bindings snapshot from top-level
// assignments whose right-hand side the literal evaluator accepts.
// Statements are processed in source order, so later assignments may
// reference earlier ones, mirroring import-time execution of literal
// globals. Anything else (imports, function objects, computed values)
// stays out of the snapshot and resolves as NameNotGlobal.
func moduleBindings(root *sitter.Node, src []byte) eval.Bindings {
	globals := eval.Bindings{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "expression_statement" {
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			assign := stmt.NamedChild(j)
			if assign.Type() != "assignment" {
				continue
			}
			left := assign.ChildByFieldName("left")
			right := assign.ChildByFieldName("right")
			if left == nil || right == nil || left.Type() != "identifier" {
				continue
			}
			value, err := eval.Evaluate(lowerExpr(right, src), globals)
			if err != nil {
				continue
			}
			globals[left.Content(src)] = value
		}
	}
	return globals
}

// moduleDocstring returns the module's leading string literal, if any.
func moduleDocstring(root *sitter.Node, src []byte) string {
	if root.NamedChildCount() == 0 {
		return ""
	}
	first := root.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return stringContent(str, src)
}

// lowerModule lowers the top level of the concrete tree. Function and
// class definitions are kept; every other statement kind has already
// served its purpose (bindings, docstring) or is irrelevant to route
// discovery.
func lowerModule(root *sitter.Node, src []byte) *syntax.Module {
	mod := &syntax.Module{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if node := lowerDefinition(child, src); node != nil {
			mod.Body = append(mod.Body, node)
		}
	}
	return mod
}

func lowerDefinition(node *sitter.Node, src []byte) syntax.Node {
	switch node.Type() {
	case "function_definition":
		return lowerFunction(node, src, nil)

	case "class_definition":
		return lowerClass(node, src)

	case "decorated_definition":
		var decorators []syntax.Node
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() != "decorator" || child.NamedChildCount() == 0 {
				continue
			}
			decorators = append(decorators, lowerExpr(child.NamedChild(0), src))
		}
		def := node.ChildByFieldName("definition")
		if def == nil {
			return nil
		}
		switch def.Type() {
		case "function_definition":
			return lowerFunction(def, src, decorators)
		case "class_definition":
			return lowerClass(def, src)
		}
		return nil

	default:
		return nil
	}
}

func lowerFunction(node *sitter.Node, src []byte, decorators []syntax.Node) *syntax.FunctionDef {
	fn := &syntax.FunctionDef{
		Position:   position(node),
		Decorators: decorators,
	}
	if name := node.ChildByFieldName("name"); name != nil {
		fn.Name = name.Content(src)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		fn.Doc = blockDocstring(body, src)
	}
	return fn
}

func lowerClass(node *sitter.Node, src []byte) *syntax.ClassDef {
	cls := &syntax.ClassDef{Position: position(node)}
	if name := node.ChildByFieldName("name"); name != nil {
		cls.Name = name.Content(src)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			if def := lowerDefinition(body.NamedChild(i), src); def != nil {
				cls.Body = append(cls.Body, def)
			}
		}
	}
	return cls
}

// blockDocstring returns the docstring of a function block, if any.
func blockDocstring(block *sitter.Node, src []byte) string {
	if block.NamedChildCount() == 0 {
		return ""
	}
	first := block.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return stringContent(str, src)
}

func position(node *sitter.Node) syntax.Position {
	return syntax.Position{
		Line:   int(node.StartPoint().Row) + 1,
		Column: int(node.StartPoint().Column),
	}
}
