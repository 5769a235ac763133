package main

import (
	"github.com/routelabel/routelabel/internal/cli"
	"github.com/routelabel/routelabel/internal/preview"
	"github.com/routelabel/routelabel/internal/utils"
)

// serve renders the report once and blocks serving it over HTTP.
func serve(config *cli.Config, runner *cli.Runner, report *cli.Report, diagnostics *utils.DiagnosticSystem) error {
	document, err := runner.RenderDocument(report)
	if err != nil {
		return err
	}

	diagnostics.Info("preview listening on %s", config.Serve)
	return preview.New(document, report.Modules).Start(config.Serve)
}
