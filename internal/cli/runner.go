package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/extractor"
	"github.com/routelabel/routelabel/internal/formatter"
	"github.com/routelabel/routelabel/internal/pyparse"
	"github.com/routelabel/routelabel/internal/utils"
)

// Report is the outcome of one documentation run.
type Report struct {
	Modules      []formatter.ModuleDoc
	Diagnostics  []extractor.Diagnostic
	FilesScanned int
}

// RouteCount returns the total number of extracted routes.
func (r *Report) RouteCount() int {
	n := 0
	for _, mod := range r.Modules {
		n += len(mod.Routes)
	}
	return n
}

// Runner orchestrates a documentation run: scan inputs, parse each
// module, extract routes, render the configured output.
type Runner struct {
	config      *Config
	diagnostics *utils.DiagnosticSystem
	scanner     *DirectoryScanner
	parser      *pyparse.Parser
	analyzer    *extractor.Analyzer
}

// NewRunner creates a runner for the given configuration
func NewRunner(config *Config, diagnostics *utils.DiagnosticSystem) *Runner {
	return &Runner{
		config:      config,
		diagnostics: diagnostics,
		scanner:     NewDirectoryScanner(),
		parser:      pyparse.NewParser(),
		analyzer:    extractor.New(config.Prepath),
	}
}

// Run scans and analyzes the configured inputs. Handler-level failures
// surface as diagnostics inside the report; only I/O and parse failures
// abort the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	files, err := r.scanner.Scan(r.config.Inputs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ConfigurationCode, "no Python files found under %s",
			strings.Join(r.config.Inputs, ", "))
	}

	report := &Report{FilesScanned: len(files)}
	for _, file := range files {
		info, err := r.parser.ParseFile(ctx, file)
		if err != nil {
			return nil, err
		}

		result := r.analyzer.AnalyzeModule(info.Tree, info.Globals, info.File)
		r.diagnostics.FileProgress(file, len(result.Routes))
		for _, diag := range result.Diagnostics {
			r.diagnostics.RouteDiagnostic(diag)
		}

		report.Modules = append(report.Modules, formatter.ModuleDoc{
			Name:   info.Name,
			Doc:    info.Doc,
			Routes: result.Routes,
		})
		report.Diagnostics = append(report.Diagnostics, result.Diagnostics...)
	}
	return report, nil
}

// WriteOutput renders the report in the configured format. The table
// format and an output file of "-" write to stdout; everything else
// goes to the configured output file.
func (r *Runner) WriteOutput(report *Report) error {
	f, err := formatter.New(r.config.Format, formatter.DefaultRegistry())
	if err != nil {
		return err
	}

	var w io.Writer
	if r.config.Format == formatter.FormatTable || r.config.OutputFile == "-" {
		w = os.Stdout
	} else {
		out, err := os.Create(r.config.OutputFile)
		if err != nil {
			return errors.WrapFileSystem("create", r.config.OutputFile, err)
		}
		defer out.Close()
		w = out
	}

	return f.Write(w, report.Modules, formatter.Options{GroupByModule: r.config.GroupByModule})
}

// RenderDocument renders the report to a string, used by the preview
// server.
func (r *Runner) RenderDocument(report *Report) (string, error) {
	f, err := formatter.New(r.config.Format, formatter.DefaultRegistry())
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := f.Write(&b, report.Modules, formatter.Options{GroupByModule: r.config.GroupByModule}); err != nil {
		return "", err
	}
	return b.String(), nil
}
