package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/pkg/browser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
	"github.com/shaiso/notion-cli/internal/telemetry"
)

// Options — окружение, в котором выполняется CLI.
// Нулевые поля заменяются значениями процесса.
type Options struct {
	Version   string
	Args      []string // nil — os.Args[1:]
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	FS        afero.Fs
	Getenv    func(string) string
	ConfigDir string // пусто — config.DefaultDir()

	HTTPClient  *http.Client
	OpenBrowser func(url string) error
}

func (o *Options) setDefaults() {
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Args == nil {
		o.Args = os.Args[1:]
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.OpenBrowser == nil {
		o.OpenBrowser = browser.OpenURL
	}
}

// globalFlags — PersistentFlags корневой команды.
type globalFlags struct {
	output      string
	raw         bool
	dryRun      bool
	pageSize    int
	startCursor string
	verbose     bool
	metrics     bool
}

// app связывает флаги, конфигурацию и клиент для одного запуска.
type app struct {
	opts     Options
	flags    globalFlags
	registry *prometheus.Registry
	metrics  *notion.Metrics
	cached   *notion.Client
}

// Execute строит дерево команд, выполняет его и печатает ошибку.
// Возвращённую ошибку main превращает в код выхода 1.
func Execute(ctx context.Context, opts Options) error {
	opts.setDefaults()

	root, a := newRootCmd(opts)
	root.SetArgs(opts.Args)

	err := root.ExecuteContext(ctx)

	if a.flags.metrics {
		if merr := telemetry.WriteMetrics(opts.Stderr, a.registry); merr != nil {
			slog.Warn("failed to write metrics", "error", merr)
		}
	}
	if err != nil {
		a.output().Error(err.Error())
	}
	return err
}

// newRootCmd создаёт корневую команду notion.
func newRootCmd(opts Options) (*cobra.Command, *app) {
	a := &app{
		opts:     opts,
		registry: telemetry.NewRegistry(),
	}
	a.metrics = notion.NewMetrics(a.registry)

	root := &cobra.Command{
		Use:           "notion",
		Short:         "Notion CLI - Interact with the Notion API from the command line",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(a.flags.output); err != nil {
				return err
			}
			if cmd.Flags().Changed("page-size") {
				if err := validatePageSize(a.flags.pageSize); err != nil {
					return err
				}
			}

			logger := telemetry.SetupLogger(opts.Stderr, telemetry.LoggerOptions{
				Level:   slog.LevelWarn,
				Verbose: a.flags.verbose,
			})
			logger = telemetry.WithCommand(logger, cmd.CommandPath())
			cmd.SetContext(telemetry.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.output, "output", string(FormatPretty), "Output format: pretty, json, raw")
	pf.BoolVar(&a.flags.raw, "raw", false, "Raw JSON output (shorthand for --output raw)")
	pf.BoolVar(&a.flags.dryRun, "dry-run", false, "Show the request without executing it (write operations only)")
	pf.IntVar(&a.flags.pageSize, "page-size", 0, "Number of items per page (max 100)")
	pf.StringVar(&a.flags.startCursor, "start-cursor", "", "Pagination cursor")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "Log HTTP requests to stderr")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "Print request metrics to stderr on exit")

	clientFn := ClientFunc(a.client)
	outputFn := OutputFunc(a.output)
	pageFn := PageFunc(a.pagination)

	root.AddCommand(
		newInitCmd(a),
		NewSearchCmd(clientFn, outputFn, pageFn),
		NewUserCmd(clientFn, outputFn, pageFn),
		NewPageCmd(clientFn, outputFn, pageFn),
		NewBlockCmd(clientFn, outputFn, pageFn),
		NewCommentCmd(clientFn, outputFn, pageFn),
		NewDatabaseCmd(clientFn, outputFn),
		NewDataSourceCmd(clientFn, outputFn, pageFn),
		NewFileUploadCmd(clientFn, outputFn, pageFn),
		NewManpageCmd(opts.Version),
	)

	return root, a
}
