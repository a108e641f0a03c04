package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpb1/tzgrid/internal/geo"
	"github.com/dpb1/tzgrid/internal/grid"
	"github.com/dpb1/tzgrid/internal/terminal"
	"github.com/dpb1/tzgrid/internal/zones"
	"github.com/dpb1/tzgrid/pkg/core/config"
	"github.com/dpb1/tzgrid/pkg/core/logging"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
	"github.com/dpb1/tzgrid/pkg/core/version"
)

// Env holds what the command needs from the process
type Env struct {
	Stdout    io.Writer
	Stderr    io.Writer
	DB        zones.Database
	Now       func() time.Time
	Width     func() (int, error)
	ConfigDir string
}

// DefaultEnv wires the real terminal, clock and zone database
func DefaultEnv() Env {
	return Env{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		DB:        zones.NewSystem(),
		Now:       time.Now,
		Width:     terminal.Width,
		ConfigDir: config.BaseDir(),
	}
}

type options struct {
	verbose bool
	search  string
	width   int
	list    bool
	twelve  bool
	minutes bool
	date    string
	utc     bool
	geodata string
	color   string
	output  string
}

// NewRootCmd builds the tzgrid command bound to env
func NewRootCmd(env Env) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tzgrid [flags] [zone ...]",
		Short: "Show the time across several time zones",
		Long: `tzgrid prints a grid of hours centred on the current hour, one row
per time zone, sorted by UTC offset.

Zones may be IANA names, UTC offsets (UTC+5, UTC-7) or place names
looked up in the bundled city table. Use Label=zone to name a row.

Examples:
  tzgrid                                # UTC-11 ... UTC+11
  tzgrid America/Chicago Tokyo          # named zones and cities
  tzgrid Office=Berlin Home=Denver      # custom row labels
  tzgrid --twelve --date 2024-03-10T09:00 Sydney London
  tzgrid --search Springfield`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, opts, args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetVersionTemplate("tzgrid " + version.String())

	flags := root.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Be more verbose")
	flags.StringVarP(&opts.search, "search", "s", "", "Search the zone database and city table and print the matches")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width in characters (default: terminal width)")
	flags.BoolVarP(&opts.list, "list", "l", false, "List all recognised time zones")
	flags.BoolVarP(&opts.twelve, "twelve", "t", false, "Use 12-hour clock times")
	flags.BoolVarP(&opts.minutes, "minutes", "m", false, "Show hours and minutes")
	flags.StringVarP(&opts.date, "date", "d", "", "Centre the grid on this date/time (default: now)")
	flags.BoolVarP(&opts.utc, "utc", "u", false, "Use the list of UTC offsets")
	flags.StringVar(&opts.geodata, "geodata", "", "Read cities from this geonames file instead of the bundled table")
	flags.StringVar(&opts.color, "color", "", "Colour output: auto, always or never")
	flags.StringVarP(&opts.output, "output", "o", formatText, "Output format for --list and --search: text, json or yaml")

	return root
}

// Execute runs the command for the current process and reports errors
// on stderr.
func Execute() error {
	env := DefaultEnv()
	err := NewRootCmd(env).Execute()
	if err != nil {
		printError(env.Stderr, err)
	}
	return err
}

func run(cmd *cobra.Command, env Env, opts *options, args []string) error {
	cfg, cfgErr := config.Load(env.ConfigDir)

	logger, logErr := logging.NewFromOptions("tzgrid", logging.Options{
		Verbose: opts.verbose,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}, env.Stderr)
	if logErr != nil {
		logger.Warn("invalid logging settings", "error", logErr)
	}
	if cfgErr != nil {
		logger.Warn("configuration ignored", "error", cfgErr)
	}
	logger.Debug("configuration loaded", "dir", env.ConfigDir, "sources", cfg.Sources, "log_level", logger.Level().String())

	if err := checkOutputFormat(opts.output); err != nil {
		return err
	}

	table := geoTable(opts, cfg, logger)
	logger.Debug("geolocation table selected", "source", table.Source())
	resolver := zones.NewResolver(env.DB, table, logger.Named("zones"))

	if opts.list {
		return writeList(env.Stdout, opts.output, env.DB.All())
	}
	if opts.search != "" {
		candidates, err := resolver.Search(opts.search)
		if err != nil {
			return err
		}
		logger.Debug("search finished", "query", opts.search, "matches", len(candidates))
		return writeCandidates(env.Stdout, opts.output, candidates, opts.verbose)
	}

	return runGrid(cmd, env, opts, cfg, logger, resolver, args)
}

func runGrid(cmd *cobra.Command, env Env, opts *options, cfg *config.Config, logger *logging.Logger, resolver *zones.Resolver, args []string) error {
	ref, err := reference(opts.date, env.Now)
	if err != nil {
		return err
	}
	mode, err := clockMode(opts, cfg)
	if err != nil {
		return err
	}
	width, err := outputWidth(cmd, env, opts, cfg, logger)
	if err != nil {
		return err
	}

	color := cfg.Color
	if opts.color != "" {
		color = opts.color
	}
	styler, err := grid.NewStyler(env.Stdout, color)
	if err != nil {
		return err
	}

	tokens := zoneTokens(args, opts.utc, cfg.Zones, logger)
	entries, err := resolver.ResolveAll(tokens)
	if err != nil {
		return err
	}

	gridCfg := grid.Config{
		Reference: ref,
		Width:     width,
		Mode:      mode,
		LocalZone: env.DB.Local(),
	}
	logger.With("reference", ref.Format(time.RFC3339), "width", width, "mode", mode.String()).
		Debug("rendering grid", "zones", len(entries), "local", gridCfg.LocalZone)

	out, err := grid.Render(entries, gridCfg, env.DB, styler)
	if err != nil {
		return err
	}

	_, err = io.WriteString(env.Stdout, out)
	return err
}

// zoneTokens picks the zone list: arguments, then --utc, then the
// configured zones, then the UTC offsets.
func zoneTokens(args []string, utc bool, configured []string, logger *logging.Logger) []string {
	switch {
	case len(args) > 0:
		return args
	case utc:
		logger.Debug("using UTC offsets", "reason", "flag")
		return zones.UTCOffsetNames()
	case len(configured) > 0:
		logger.Debug("using configured zones", "count", len(configured))
		return configured
	default:
		logger.Debug("using UTC offsets", "reason", "default")
		return zones.UTCOffsetNames()
	}
}

func geoTable(opts *options, cfg *config.Config, logger *logging.Logger) *geo.Table {
	path := cfg.GeoData
	if opts.geodata != "" {
		path = opts.geodata
	}
	if path == "" {
		return geo.NewTable("bundled", geo.Bundled(), logger.Named("geo"))
	}
	return geo.NewTable(path, geo.File(path), logger.Named("geo"))
}

func clockMode(opts *options, cfg *config.Config) (grid.Mode, error) {
	switch {
	case opts.twelve && opts.minutes:
		return grid.Mode24Hour, tzerror.New("--twelve and --minutes cannot be combined").
			WithCode(tzerror.CodeInvalidInput)
	case opts.twelve:
		return grid.Mode12Hour, nil
	case opts.minutes:
		return grid.ModeHourMinute, nil
	}
	return grid.ParseMode(cfg.Clock)
}

func outputWidth(cmd *cobra.Command, env Env, opts *options, cfg *config.Config, logger *logging.Logger) (int, error) {
	if cmd.Flags().Changed("width") {
		if opts.width <= 0 {
			return 0, tzerror.Newf("invalid width %d", opts.width).
				WithCode(tzerror.CodeInvalidInput)
		}
		return opts.width, nil
	}
	if cfg.Width > 0 {
		return cfg.Width, nil
	}

	width, err := env.Width()
	if err != nil {
		logger.Debug("using fallback width", "width", width, "error", err)
	}
	return width, nil
}

func printError(w io.Writer, err error) {
	var unresolved *zones.UnresolvedZoneError
	if errors.As(err, &unresolved) {
		fmt.Fprint(w, unresolved.Report())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
