package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cruzr/cruzr/internal/config"
	"github.com/cruzr/cruzr/internal/log"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	Catalog     string
	MetricsAddr string
	Log         *log.Options

	// Config is loaded before any command runs, with flag overrides applied.
	Config config.Config
}

// NewRootCommand creates the cruzr command tree. Without a subcommand it
// runs the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Log: log.NewOptions()}

	cmd := &cobra.Command{
		Use:           "cruzr",
		Short:         "Cruzr - find and book a ride",
		Long:          "Browse the rental catalog, filter it and book a vehicle from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.ConfigPath, "config", "", "config file (default $CRUZR_CONFIG or "+config.DefaultPath()+")")
	fs.StringVar(&opts.Catalog, "catalog", "", "catalog source: builtin, a .yaml file or a .db file")
	fs.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	opts.Log.AddFlags(fs)

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	return cmd
}

// load reads the config file and lets explicitly set flags win over it.
func (o *RootOptions) load(fs *pflag.FlagSet) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if fs.Changed("catalog") {
		cfg.Catalog.Source = o.Catalog
	}
	if fs.Changed("metrics-addr") {
		cfg.Metrics.Addr = o.MetricsAddr
	}
	if !fs.Changed("log.level") && cfg.Log.Level != "" {
		o.Log.Level = cfg.Log.Level
	}
	if !fs.Changed("log.format") && cfg.Log.Format != "" {
		o.Log.Format = cfg.Log.Format
	}
	if !fs.Changed("log.output-paths") && len(cfg.Log.OutputPaths) > 0 {
		o.Log.OutputPaths = append([]string(nil), cfg.Log.OutputPaths...)
	}
	o.Config = cfg
	return nil
}

func (o *RootOptions) logger(name string) (log.Logger, error) {
	opts := *o.Log
	opts.Name = name
	return log.NewLogger(&opts)
}
