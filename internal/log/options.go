package log

import "github.com/spf13/pflag"

// Options configures a Logger.
type Options struct {
	Name          string   `mapstructure:"name"`
	Level         string   `mapstructure:"level"`
	Format        string   `mapstructure:"format"`
	EnableColor   bool     `mapstructure:"enable_color"`
	DisableCaller bool     `mapstructure:"disable_caller"`
	CallerSkip    int      `mapstructure:"caller_skip"`
	OutputPaths   []string `mapstructure:"output_paths"`
}

func NewOptions() *Options {
	return &Options{
		Level:       "info",
		Format:      "console",
		CallerSkip:  1,
		OutputPaths: []string{"stderr"},
	}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level (debug, info, warn, error).")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log output format (console or json).")
	fs.BoolVar(&o.EnableColor, "log.enable-color", o.EnableColor, "Colorize console log levels.")
	fs.BoolVar(&o.DisableCaller, "log.disable-caller", o.DisableCaller, "Omit the caller field.")
	fs.StringSliceVar(&o.OutputPaths, "log.output-paths", o.OutputPaths, "Log output paths (stdout, stderr or files).")
}
