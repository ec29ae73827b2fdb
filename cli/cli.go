// Package cli provides an embeddable cobra command for scanning a model
// registry from the command line. Host applications register their models
// and mount the command:
//
//	func main() {
//	    reg := catalog.NewRegistry(&Author{}, &Book{})
//	    if err := cli.New(reg).Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Register the common database/sql drivers so --dsn works out of the
	// box for the supported dialects.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/modelgraph/catalog"
	"github.com/syssam/modelgraph/codegen"
	"github.com/syssam/modelgraph/dialect"
	"github.com/syssam/modelgraph/dialect/sql"
	"github.com/syssam/modelgraph/graph"
	"github.com/syssam/modelgraph/scan"
)

// scanFlags carries the options shared by the scan and gen subcommands.
type scanFlags struct {
	dialect string
	dsn     string
	exclude string
	timeout time.Duration
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dialect, "dialect", dialect.SQLite, "sql dialect used with --dsn (mysql, sqlite, postgres)")
	cmd.Flags().StringVar(&f.dsn, "dsn", "", "data source name; probes run against it in rollback-only transactions")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "path to a YAML method-exclusion file")
	cmd.Flags().DurationVar(&f.timeout, "probe-timeout", 0, "per-method probe deadline (0 disables)")
}

// run executes a scan with the flag set applied, streaming failures as
// warnings to errOut.
func (f *scanFlags) run(cmd *cobra.Command, reg *catalog.Registry) (*graph.Graph, error) {
	opts := []scan.Option{
		scan.WithReporter(warnReporter(cmd.ErrOrStderr())),
	}
	if f.exclude != "" {
		ex, err := scan.LoadExclusions(f.exclude)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scan.WithExclusions(ex))
	}
	if f.dsn != "" {
		drv, err := sql.Open(f.dialect, f.dsn)
		if err != nil {
			return nil, err
		}
		defer drv.Close()
		opts = append(opts, scan.WithDriver(drv))
	}
	if f.timeout > 0 {
		opts = append(opts, scan.WithProbeTimeout(f.timeout))
	}
	g, _, err := scan.New(reg, opts...).Scan(cmd.Context())
	return g, err
}

func warnReporter(w io.Writer) scan.Reporter {
	return scan.ReporterFunc(func(f scan.Failure) {
		fmt.Fprintf(w, "warn: %s.%s: %s\n", f.Entity, f.Method, f.Message)
		if f.Hint != "" {
			fmt.Fprintf(w, "      hint: %s\n", f.Hint)
		}
	})
}

// New returns the root command operating on the given registry.
func New(reg *catalog.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:           "modelgraph",
		Short:         "discover the relational schema implied by registered models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScanCmd(reg), newGenCmd(reg))
	return root
}

func newScanCmd(reg *catalog.Registry) *cobra.Command {
	var (
		flags  scanFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "scan the registry and render the schema graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := flags.run(cmd, reg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			sink, err := sinkFor(format, w)
			if err != nil {
				return err
			}
			return sink.Write(g)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml, table, mermaid)")
	cmd.Flags().StringVar(&out, "out", "", "write output to a file instead of stdout")
	return cmd
}

func newGenCmd(reg *catalog.Registry) *cobra.Command {
	var (
		flags scanFlags
		pkg   string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "scan the registry and generate schema constants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := flags.run(cmd, reg)
			if err != nil {
				return err
			}
			return codegen.New(pkg).WriteFile(g, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&pkg, "pkg", "schema", "package name for the generated file")
	cmd.Flags().StringVar(&out, "out", "schema_gen.go", "path of the generated file")
	return cmd
}

func sinkFor(format string, w io.Writer) (graph.Sink, error) {
	switch format {
	case "json":
		return graph.NewJSONSink(w), nil
	case "yaml":
		return graph.NewYAMLSink(w), nil
	case "table":
		return graph.NewTableSink(w), nil
	case "mermaid":
		return graph.NewMermaidSink(w), nil
	}
	return nil, fmt.Errorf("cli: unknown format %q", format)
}
