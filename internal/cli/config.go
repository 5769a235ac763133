package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/formatter"
)

// Config holds the configuration for a documentation run
type Config struct {
	// Inputs is the list of Python files or directories to scan
	Inputs []string

	// OutputFile is where the rendered document is written.
	// "-" writes to stdout.
	OutputFile string

	// Format selects the output format (markdown, sphinx, table)
	Format string

	// Prepath is prefixed to every route rule before resolution
	Prepath string

	// GroupByModule emits per-module headings in the output
	GroupByModule bool

	// Serve is a listen address for the doc preview server.
	// Empty disables the server.
	Serve string

	// Verbose enables detailed logging; Quiet shows errors only
	Verbose bool
	Quiet   bool
}

// DefaultConfig returns a config with the defaults the CLI starts from.
func DefaultConfig() *Config {
	return &Config{
		OutputFile: "rest.md",
		Format:     formatter.FormatMarkdown,
	}
}

// fileConfig mirrors Config for the YAML config file. Fields are
// pointers so absent keys do not clobber defaults or flags.
type fileConfig struct {
	Inputs        []string `yaml:"inputs"`
	Output        *string  `yaml:"output"`
	Format        *string  `yaml:"format"`
	Prepath       *string  `yaml:"prepath"`
	GroupByModule *bool    `yaml:"group_by_module"`
	Serve         *string  `yaml:"serve"`
}

// LoadFile overlays values from a YAML config file onto c. Flags parsed
// after this call still win over file values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapConfiguration(path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.WrapConfiguration(path, err)
	}

	if len(fc.Inputs) > 0 {
		c.Inputs = append(c.Inputs, fc.Inputs...)
	}
	if fc.Output != nil {
		c.OutputFile = *fc.Output
	}
	if fc.Format != nil {
		c.Format = *fc.Format
	}
	if fc.Prepath != nil {
		c.Prepath = *fc.Prepath
	}
	if fc.GroupByModule != nil {
		c.GroupByModule = *fc.GroupByModule
	}
	if fc.Serve != nil {
		c.Serve = *fc.Serve
	}
	return nil
}

// Validate checks the config for contradictions before a run.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New(errors.ConfigurationCode, "need at least one Python file or directory")
	}
	switch c.Format {
	case formatter.FormatMarkdown, formatter.FormatSphinx, formatter.FormatTable:
	default:
		return errors.New(errors.ConfigurationCode, "unknown output format %q", c.Format)
	}
	if c.Verbose && c.Quiet {
		return errors.New(errors.ConfigurationCode, "verbose and quiet are mutually exclusive")
	}
	return nil
}
