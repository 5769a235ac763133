package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders a terminal summary table of the extracted routes.
type Table struct{}

func (t *Table) Write(w io.Writer, modules []ModuleDoc, _ Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Methods", "Path", "Handler", "Source"})

	for _, route := range sortByPathLength(flatten(modules)) {
		tw.AppendRow(table.Row{
			strings.Join(route.Methods, ","),
			route.Path(),
			route.HandlerName,
			fmt.Sprintf("%s:%d", route.SourceFile, route.Line),
		})
	}

	tw.Render()
	return nil
}
