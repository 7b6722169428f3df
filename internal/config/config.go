package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cruzr/cruzr/internal/criteria"
	"github.com/cruzr/cruzr/internal/log"
	"github.com/cruzr/cruzr/internal/workflow"
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig
	Filters  FiltersConfig
	Workflow WorkflowConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// CatalogConfig selects the catalog source: "builtin", a YAML file or a
// sqlite database.
type CatalogConfig struct {
	Source string
}

// FiltersConfig holds the filter form defaults.
type FiltersConfig struct {
	MaxPrice      float64  `mapstructure:"max_price"`
	PriceMin      float64  `mapstructure:"price_min"`
	PriceMax      float64  `mapstructure:"price_max"`
	PriceStep     float64  `mapstructure:"price_step"`
	RatingOptions []string `mapstructure:"rating_options"`
}

// WorkflowConfig holds the transient workflow delays.
type WorkflowConfig struct {
	BookingPending  time.Duration `mapstructure:"booking_pending"`
	BookingResolved time.Duration `mapstructure:"booking_resolved"`
	SearchBanner    time.Duration `mapstructure:"search_banner"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string
	Format      string
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig enables the metrics endpoint when Addr is set.
type MetricsConfig struct {
	Addr string
}

// DefaultPath is the config file used when neither an explicit path nor
// CRUZR_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "cruzr", "config.toml")
}

func setDefaults(v *viper.Viper) {
	d := criteria.NewDefaults()
	t := workflow.DefaultTimings()

	v.SetDefault("catalog.source", "builtin")
	v.SetDefault("filters.max_price", d.MaxPrice)
	v.SetDefault("filters.price_min", d.PriceMin)
	v.SetDefault("filters.price_max", d.PriceMax)
	v.SetDefault("filters.price_step", d.PriceStep)
	v.SetDefault("filters.rating_options", d.RatingOptions)
	v.SetDefault("workflow.booking_pending", t.BookingPending)
	v.SetDefault("workflow.booking_resolved", t.BookingResolved)
	v.SetDefault("workflow.search_banner", t.SearchBanner)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("metrics.addr", "")
}

// Load reads configuration from path (or CRUZR_CONFIG, or the default
// location) and the environment. Env var overrides use prefix CRUZR_. A
// missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("CRUZR_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CRUZR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.FilterDefaults().Validate(); err != nil {
		return Config{}, fmt.Errorf("filters: %w", err)
	}
	if err := c.Workflow.validate(); err != nil {
		return Config{}, fmt.Errorf("workflow: %w", err)
	}
	return c, nil
}

// FilterDefaults converts the filters section.
func (c Config) FilterDefaults() criteria.Defaults {
	return criteria.Defaults{
		MaxPrice:      c.Filters.MaxPrice,
		PriceMin:      c.Filters.PriceMin,
		PriceMax:      c.Filters.PriceMax,
		PriceStep:     c.Filters.PriceStep,
		RatingOptions: append([]string(nil), c.Filters.RatingOptions...),
	}
}

// Timings converts the workflow section.
func (c Config) Timings() workflow.Timings {
	return workflow.Timings{
		BookingPending:  c.Workflow.BookingPending,
		BookingResolved: c.Workflow.BookingResolved,
		SearchBanner:    c.Workflow.SearchBanner,
	}
}

// LogOptions converts the log section.
func (c Config) LogOptions() *log.Options {
	opts := log.NewOptions()
	if c.Log.Level != "" {
		opts.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		opts.Format = c.Log.Format
	}
	if len(c.Log.OutputPaths) > 0 {
		opts.OutputPaths = append([]string(nil), c.Log.OutputPaths...)
	}
	return opts
}

func (w WorkflowConfig) validate() error {
	if w.BookingPending <= 0 || w.BookingResolved <= 0 || w.SearchBanner <= 0 {
		return fmt.Errorf("delays must be positive (booking_pending=%s booking_resolved=%s search_banner=%s)",
			w.BookingPending, w.BookingResolved, w.SearchBanner)
	}
	return nil
}

// Save writes cfg as toml to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("filters.max_price", cfg.Filters.MaxPrice)
	v.Set("filters.price_min", cfg.Filters.PriceMin)
	v.Set("filters.price_max", cfg.Filters.PriceMax)
	v.Set("filters.price_step", cfg.Filters.PriceStep)
	v.Set("filters.rating_options", cfg.Filters.RatingOptions)
	v.Set("workflow.booking_pending", cfg.Workflow.BookingPending.String())
	v.Set("workflow.booking_resolved", cfg.Workflow.BookingResolved.String())
	v.Set("workflow.search_banner", cfg.Workflow.SearchBanner.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.output_paths", cfg.Log.OutputPaths)
	v.Set("metrics.addr", cfg.Metrics.Addr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
