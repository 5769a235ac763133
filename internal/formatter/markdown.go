package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/models"
)

// Markdown renders routes as a Markdown document: a `## Title` heading,
// the methods and resolved path, the path parameter types sorted by
// name, registry output for extra decorators, then the docstring.
type Markdown struct {
	registry Registry
}

func (m *Markdown) Write(w io.Writer, modules []ModuleDoc, opts Options) error {
	if opts.GroupByModule {
		for _, mod := range modules {
			if _, err := fmt.Fprintf(w, "# %s\n\n", mod.Name); err != nil {
				return errors.WrapFormat("markdown", err)
			}
			if mod.Doc != "" {
				if _, err := fmt.Fprintf(w, "%s\n\n", mod.Doc); err != nil {
					return errors.WrapFormat("markdown", err)
				}
			}
			if err := m.writeRoutes(w, sortByPathLength(mod.Routes)); err != nil {
				return err
			}
		}
		return nil
	}
	return m.writeRoutes(w, sortByPathLength(flatten(modules)))
}

func (m *Markdown) writeRoutes(w io.Writer, routes []*models.Route) error {
	for _, route := range routes {
		if err := m.writeRoute(w, route); err != nil {
			return err
		}
	}
	return nil
}

func (m *Markdown) writeRoute(w io.Writer, route *models.Route) error {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n", route.Title())
	fmt.Fprintf(&b, "__%s: %s__\n",
		strings.ToUpper(strings.Join(route.Methods, " | ")),
		route.Path())

	for _, param := range sortedParams(route.PathTypes()) {
		fmt.Fprintf(&b, "\n * `%s`: %s\n", param.name, param.typ)
	}

	if err := m.registry.dispatch(&b, route.OtherDecorators); err != nil {
		return errors.WrapFormat("markdown", err)
	}

	fmt.Fprintf(&b, "\n%s\n\n", route.Docstring())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapFormat("markdown", err)
	}
	return nil
}

type param struct {
	name string
	typ  string
}

func sortedParams(types map[string]string) []param {
	params := make([]param, 0, len(types))
	for name, typ := range types {
		params = append(params, param{name: name, typ: typ})
	}
	sort.Slice(params, func(i, j int) bool { return params[i].name < params[j].name })
	return params
}

func sortByPathLength(routes []*models.Route) []*models.Route {
	sorted := make([]*models.Route, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Path()) < len(sorted[j].Path())
	})
	return sorted
}
