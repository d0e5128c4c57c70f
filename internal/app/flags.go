package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"leafgrow/internal/tree"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	TPS        int
	Seed       int64
	Quiet      bool
	Debug      bool
	Overrides  map[string]string
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// asks main to seed from the clock.
func NewConfig() *Config {
	return &Config{Width: 480, Height: 800, TPS: 60, Overrides: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML tuning file")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in logical pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in logical pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for leaf placement (0 picks one from the clock)")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "discard log output")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the debug panel visible")
	fs.Func("set", "override a tuning value, key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		if c.Overrides == nil {
			c.Overrides = map[string]string{}
		}
		c.Overrides[strings.TrimSpace(key)] = strings.TrimSpace(value)
		return nil
	})
}

// TreeConfig loads the tuning file, if any, applies -set overrides and
// validates the result.
func (c *Config) TreeConfig() (tree.Config, error) {
	cfg := tree.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := tree.LoadConfig(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = tree.FromMap(cfg, c.Overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("overrides %s: %w", c.overrideKeys(), err)
	}
	return cfg, nil
}

func (c *Config) overrideKeys() string {
	keys := make([]string, 0, len(c.Overrides))
	for k := range c.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "[" + strings.Join(keys, ",") + "]"
}
