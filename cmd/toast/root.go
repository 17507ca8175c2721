package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-toast/dialogs"
	"github.com/vcrobe/nojs-toast/dom"
	"github.com/vcrobe/nojs-toast/metrics"
	"github.com/vcrobe/nojs-toast/terminal"
	"github.com/vcrobe/nojs-toast/toast"
)

type showOptions struct {
	isError     bool
	level       string
	configPath  string
	noWidget    bool
	missing     []string
	wait        bool
	logLevel    string
	showMetrics bool
	width       int
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "toast [flags] <message...>",
		Short: "Show a toast notification",
		Long: `Show a toast the way the browser notifier does, against an in-memory page.

The page holds the toast markup for every configured level. When the widget
is disabled or a container is missing, the message takes the fallback path:
an error is logged and the message is printed to stderr.

Examples:
  toast Saved successfully
  toast --error Save failed
  toast --no-widget --wait Save failed      # block like alert() until Enter
  toast --missing errorToast -e Save failed # simulate a page without the error toast
  toast --config toast.yaml --metrics Done`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, strings.Join(args, " "), stdin, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.isError, "error", "e", false, "Show on the error surface")
	flags.StringVarP(&opts.level, "level", "l", "", "Show on a named level from the config (overrides --error)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML settings file")
	flags.BoolVar(&opts.noWidget, "no-widget", false, "Run without a widget library")
	flags.StringSliceVar(&opts.missing, "missing", nil, "Element ids to remove from the page before showing")
	flags.BoolVar(&opts.wait, "wait", false, "Block on fallback until a line is read from stdin")
	flags.StringVar(&opts.logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.showMetrics, "metrics", false, "Print toast counters after showing")
	flags.IntVar(&opts.width, "width", 0, "Toast box width (0 = fit message)")

	cmd.AddCommand(newMarkupCmd(stdout))

	return cmd
}

func runShow(opts showOptions, message string, stdin io.Reader, stdout, stderr io.Writer) error {
	settings, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	doc := dom.NewMemoryFor(settings.Targets)
	for _, id := range opts.missing {
		if !doc.Remove(id) {
			logger.Warn().Str("id", id).Msg("element not in page, nothing removed")
		}
	}

	fallback := &dialogs.Terminal{Out: stderr}
	if opts.wait {
		fallback.In = stdin
		fallback.Prompt = "press Enter to dismiss "
	}

	reg := prometheus.NewRegistry()
	cfg := &toast.Config{
		Document: doc,
		Fallback: fallback,
		Observer: metrics.New(metrics.WithRegistry(reg)),
		Logger:   logger,
	}
	if !opts.noWidget {
		cfg.Widgets = &terminal.Factory{Out: stdout, Width: opts.width}
	}
	settings.Apply(cfg)

	n := toast.New(cfg)
	switch {
	case opts.level != "":
		n.Show(toast.Level(opts.level), message)
	default:
		n.Notify(message, !opts.isError)
	}

	if opts.showMetrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func loadSettings(path string) (toast.Settings, error) {
	if path == "" {
		return toast.DefaultSettings(), nil
	}
	return toast.LoadSettings(path)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
