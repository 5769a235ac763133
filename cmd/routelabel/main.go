package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/routelabel/routelabel/internal/cli"
	"github.com/routelabel/routelabel/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		outputFlag  = flag.String("o", "rest.md", "File to write the generated document to (\"-\" for stdout)")
		formatFlag  = flag.String("format", "markdown", "Output format: markdown, sphinx, or table")
		prepathFlag = flag.String("prepath", "", "Path prefix resolved in front of every route rule")
		groupFlag   = flag.Bool("group-by-module", false, "Emit a heading and module docstring before each module's routes")
		configFlag  = flag.String("config", "", "Optional YAML config file (flags win over file values)")
		serveFlag   = flag.String("serve", "", "Serve a preview of the document on this address (e.g. :8080)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and per-file progress")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <python-files-or-directories...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Route Documentation Generator\n")
		fmt.Fprintf(os.Stderr, "Statically extracts Flask/Bottle/Klein route decorators from Python sources and renders documentation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  python-files-or-directories    Python files to analyze; directories are scanned recursively for .py files\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s app.py                                  # Document one module to rest.md\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format sphinx -o api.rst ./src         # Sphinx reST for a whole tree\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format table ./src                     # Route summary table on stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -prepath /api/v1 app.py                 # Prefix every route path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve :8080 app.py                     # Preview the document over HTTP\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Build the configuration: defaults, then the config file, then
	// explicitly-set flags on top.
	config := cli.DefaultConfig()
	if *configFlag != "" {
		if err := config.LoadFile(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			config.OutputFile = *outputFlag
		case "format":
			config.Format = *formatFlag
		case "prepath":
			config.Prepath = *prepathFlag
		case "group-by-module":
			config.GroupByModule = *groupFlag
		case "serve":
			config.Serve = *serveFlag
		}
	})
	config.Inputs = append(config.Inputs, flag.Args()...)
	config.Verbose = *verboseFlag
	config.Quiet = *quietFlag

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if config.Quiet {
		diagnostics = utils.NewQuietDiagnostics()
	} else if config.Verbose {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if err := run(config, diagnostics); err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}
}

func run(config *cli.Config, diagnostics *utils.DiagnosticSystem) error {
	diagnostics.ScanHeader("scanning for route handlers")
	if config.Verbose {
		for _, input := range config.Inputs {
			diagnostics.SourcePath(input)
		}
	}

	runner := cli.NewRunner(config, diagnostics)
	report, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	if err := runner.WriteOutput(report); err != nil {
		return err
	}

	diagnostics.ScanComplete(report.FilesScanned, report.RouteCount(), len(report.Diagnostics))

	if config.Serve != "" {
		return serve(config, runner, report, diagnostics)
	}
	return nil
}
