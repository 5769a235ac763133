// Package extractor walks a module's syntax tree and collects its
// route-decorated handler functions.
//
// The walk is single-pass and top-down. Only module bodies are entered;
// class bodies are skipped on purpose, since route handlers are assumed
// to be module-level functions. Every failure while flattening a
// decorator or assembling a route aborts processing of that one
// function and is recorded as a diagnostic; the walk itself never
// fails.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/routelabel/routelabel/internal/decorator"
	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/eval"
	"github.com/routelabel/routelabel/internal/models"
	"github.com/routelabel/routelabel/internal/syntax"
)

// Diagnostic records one skipped function and the reason it was
// skipped.
type Diagnostic struct {
	HandlerName string
	File        string
	Line        int
	Err         error
}

// String renders the diagnostic the way the CLI reports it.
func (d Diagnostic) String() string {
	where := d.File
	if where == "" {
		where = "<source>"
	}
	return fmt.Sprintf("%s:%d: ignoring %q: %v", where, d.Line, d.HandlerName, d.Err)
}

// Result aggregates one module's analysis: routes in source order of
// appearance plus the diagnostics for every skipped function.
type Result struct {
	Routes      []*models.Route
	Diagnostics []Diagnostic
}

// Analyzer extracts routes from parsed modules. A zero prepath means
// rules are taken as written; otherwise every rule is joined onto the
// prepath base.
type Analyzer struct {
	prepath string
}

// New creates an analyzer with the given prepath prefix.
func New(prepath string) *Analyzer {
	return &Analyzer{prepath: prepath}
}

// AnalyzeModule walks one module against its global-bindings snapshot.
// The snapshot is read-only for the duration of the call, so modules
// may be analyzed concurrently as long as each has its own tree and
// snapshot. There is no error return: a pathological function can only
// ever produce a diagnostic.
func (a *Analyzer) AnalyzeModule(mod *syntax.Module, globals eval.Bindings, file string) Result {
	var result Result
	for _, node := range mod.Body {
		fn, ok := node.(*syntax.FunctionDef)
		if !ok {
			// Default action for every other node kind, including
			// class definitions, is a no-op.
			continue
		}
		route, diag := a.analyzeFunction(fn, globals, file)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
			continue
		}
		if route != nil {
			result.Routes = append(result.Routes, route)
		}
	}
	return result
}

// analyzeFunction inspects one function definition. It returns
// (nil, nil) when the function is simply not a route, (route, nil) on
// success, and (nil, diagnostic) when extraction failed.
func (a *Analyzer) analyzeFunction(fn *syntax.FunctionDef, globals eval.Bindings, file string) (*models.Route, *Diagnostic) {
	if len(fn.Decorators) == 0 {
		return nil, nil
	}

	var flattened []*decorator.CallDescriptor
	for _, dec := range fn.Decorators {
		desc, err := decorator.Flatten(dec, globals)
		if err != nil {
			if errors.HasCode(err, errors.MalformedDecoratorCode) {
				// A callee with no static name cannot be the route
				// decorator; drop it and keep looking.
				continue
			}
			return nil, a.diagnose(fn, file, err)
		}
		flattened = append(flattened, desc)
	}

	routeIdx := -1
	for i, desc := range flattened {
		if isRouteName(desc.Name) {
			routeIdx = i
			break
		}
	}
	if routeIdx < 0 {
		return nil, nil
	}

	others := make([]*decorator.CallDescriptor, 0, len(flattened)-1)
	others = append(others, flattened[:routeIdx]...)
	others = append(others, flattened[routeIdx+1:]...)

	route, err := a.buildRoute(flattened[routeIdx], others, fn, file)
	if err != nil {
		return nil, a.diagnose(fn, file, err)
	}
	return route, nil
}

// isRouteName reports whether a flattened decorator name registers a
// route: the bare identifier "route" or any dotted chain ending in
// ".route".
func isRouteName(name string) bool {
	if name == "route" {
		return true
	}
	return strings.HasSuffix(name, ".route") && len(name) > len(".route")
}

// buildRoute maps the chosen route decorator's arguments onto a Route.
func (a *Analyzer) buildRoute(desc *decorator.CallDescriptor, others []*decorator.CallDescriptor,
	fn *syntax.FunctionDef, file string) (*models.Route, error) {
	if len(desc.Positional) == 0 {
		return nil, errors.MalformedRoute("decorator has no rule argument")
	}
	rawRule, ok := desc.Positional[0].(string)
	if !ok {
		return nil, errors.MalformedRoute(
			fmt.Sprintf("rule argument is %T, want string", desc.Positional[0]))
	}

	methods, err := methodsFrom(desc.Keyword)
	if err != nil {
		return nil, err
	}

	extra := make(map[string]any, len(desc.Keyword))
	for k, v := range desc.Keyword {
		if k == "methods" {
			continue
		}
		extra[k] = v
	}

	route := models.NewRoute(a.joinRule(rawRule), methods, extra, others, fn.Name, fn.Doc)
	route.SourceFile = file
	route.Line = fn.Position.Line
	return route, nil
}

// joinRule collapses blank fragments out of the rule, joins the result
// onto the prepath base, and guarantees a leading slash. The join goes
// through a throwaway http:// base so relative-path resolution follows
// ordinary URL semantics; the scheme is stripped straight back off.
func (a *Analyzer) joinRule(rawRule string) string {
	var fragments []string
	for _, part := range strings.Split(rawRule, "/") {
		if strings.TrimSpace(part) != "" {
			fragments = append(fragments, part)
		}
	}
	joined := strings.Join(fragments, "/")

	resolved := joined
	if base, err := url.Parse("http://" + a.prepath); err == nil {
		if ref, err := url.Parse(joined); err == nil {
			// Host+Path is the resolved URL with the scheme stripped
			// back off, without any re-escaping of placeholder
			// brackets.
			res := base.ResolveReference(ref)
			resolved = res.Host + res.Path
		}
	}
	if !strings.HasPrefix(resolved, "/") {
		resolved = "/" + resolved
	}
	return resolved
}

// methodsFrom coerces the methods keyword argument into a string list.
// Absent (or empty) methods default to GET.
func methodsFrom(kwargs map[string]any) ([]string, error) {
	raw, ok := kwargs["methods"]
	if !ok {
		return []string{"GET"}, nil
	}

	var elems []any
	switch v := raw.(type) {
	case []any:
		elems = v
	case eval.Tuple:
		elems = v
	case string:
		return []string{v}, nil
	default:
		return nil, errors.MalformedRoute(fmt.Sprintf("methods is %T, want a sequence of strings", raw))
	}

	methods := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := e.(string)
		if !ok {
			return nil, errors.MalformedRoute(fmt.Sprintf("method %v is %T, want string", e, e))
		}
		methods = append(methods, s)
	}
	return methods, nil
}

func (a *Analyzer) diagnose(fn *syntax.FunctionDef, file string, err error) *Diagnostic {
	return &Diagnostic{
		HandlerName: fn.Name,
		File:        file,
		Line:        fn.Position.Line,
		Err:         err,
	}
}
