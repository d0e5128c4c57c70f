package tree

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid tree config")

// Config holds the tunables of the growth simulation. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	InitialLeaves float64 `yaml:"initial_leaves"`
	MaxLeaves     int     `yaml:"max_leaves"`
	MinLeaves     float64 `yaml:"min_leaves"`

	LevelScore   int           `yaml:"level_score"`
	LeavesScore  int           `yaml:"leaves_score"`
	TickInterval time.Duration `yaml:"tick_interval"`
	// ImmediateFirstTick evaluates the score once at drag start instead of
	// waiting a full interval.
	ImmediateFirstTick bool `yaml:"immediate_first_tick"`

	GrowthFactor         float64 `yaml:"growth_factor"`
	AdvancedGrowthFactor float64 `yaml:"advanced_growth_factor"`
	AdvancedGrowthLevel  int     `yaml:"advanced_growth_level"`

	TrunkWidth    float64 `yaml:"trunk_width"`
	TrunkHeight   float64 `yaml:"trunk_height"`
	CanopyRatio   float64 `yaml:"canopy_ratio"`
	LeafRadiusMin int     `yaml:"leaf_radius_min"`
	LeafRadiusMax int     `yaml:"leaf_radius_max"`

	Background string `yaml:"background"`
	TrunkColor string `yaml:"trunk_color"`

	Palettes []StrategySpec `yaml:"palettes"`
	Fallback *StrategySpec  `yaml:"fallback"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		InitialLeaves:        10,
		MaxLeaves:            1000,
		MinLeaves:            1,
		LevelScore:           5,
		LeavesScore:          500,
		TickInterval:         time.Second,
		GrowthFactor:         0.05,
		AdvancedGrowthFactor: 0.10,
		AdvancedGrowthLevel:  2,
		TrunkWidth:           50,
		TrunkHeight:          200,
		CanopyRatio:          0.75,
		LeafRadiusMin:        10,
		LeafRadiusMax:        30,
		Background:           "#99ff99",
		TrunkColor:           "#a52a2a",
	}
}

// LoadConfig decodes a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read tree config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse tree config YAML from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and that every color and palette entry parses.
func (c Config) Validate() error {
	bad := func(key string, v any) error {
		return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, key, v)
	}
	switch {
	case c.MinLeaves < 1:
		return bad("min_leaves", c.MinLeaves)
	case c.MaxLeaves < int(c.MinLeaves):
		return bad("max_leaves", c.MaxLeaves)
	case c.InitialLeaves < c.MinLeaves || c.InitialLeaves > float64(c.MaxLeaves):
		return bad("initial_leaves", c.InitialLeaves)
	case c.LevelScore < 1:
		return bad("level_score", c.LevelScore)
	case c.LeavesScore < 0:
		return bad("leaves_score", c.LeavesScore)
	case c.TickInterval <= 0:
		return bad("tick_interval", c.TickInterval)
	case c.GrowthFactor <= 0 || c.GrowthFactor >= 1:
		return bad("growth_factor", c.GrowthFactor)
	case c.AdvancedGrowthFactor <= 0 || c.AdvancedGrowthFactor >= 1:
		return bad("advanced_growth_factor", c.AdvancedGrowthFactor)
	case c.TrunkWidth < 0:
		return bad("trunk_width", c.TrunkWidth)
	case c.TrunkHeight < 0:
		return bad("trunk_height", c.TrunkHeight)
	case c.CanopyRatio <= 0 || c.CanopyRatio > 1:
		return bad("canopy_ratio", c.CanopyRatio)
	case c.LeafRadiusMin < 0 || c.LeafRadiusMax < c.LeafRadiusMin:
		return bad("leaf_radius_min/max", fmt.Sprintf("%d/%d", c.LeafRadiusMin, c.LeafRadiusMax))
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseHexColor(c.TrunkColor); err != nil {
		return fmt.Errorf("%w: trunk_color: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PaletteTable(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PaletteTable builds the level color table. Without palette entries the
// stock table is used; a missing fallback keeps the stock foliage range.
func (c Config) PaletteTable() (PaletteTable, error) {
	table := DefaultPalette()
	if len(c.Palettes) > 0 {
		table.Levels = make([]ColorStrategy, 0, len(c.Palettes))
		for i, spec := range c.Palettes {
			s, err := spec.Build()
			if err != nil {
				return PaletteTable{}, fmt.Errorf("palettes[%d]: %w", i, err)
			}
			table.Levels = append(table.Levels, s)
		}
	}
	if c.Fallback != nil {
		s, err := c.Fallback.Build()
		if err != nil {
			return PaletteTable{}, fmt.Errorf("fallback: %w", err)
		}
		table.Fallback = s
	}
	return table, nil
}

func (c Config) colors() (bg, trunk color.RGBA) {
	bg, _ = ParseHexColor(c.Background)
	trunk, _ = ParseHexColor(c.TrunkColor)
	return bg, trunk
}

// FromMap applies flag-style key/value overrides on top of base. Unknown keys
// and unparsable values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	floatKey := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	intKey := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	floatKey("initial_leaves", &c.InitialLeaves)
	intKey("max_leaves", &c.MaxLeaves)
	floatKey("min_leaves", &c.MinLeaves)
	intKey("level_score", &c.LevelScore)
	intKey("leaves_score", &c.LeavesScore)
	if v, ok := cfg["tick_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["immediate_first_tick"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ImmediateFirstTick = parsed
		}
	}
	floatKey("growth_factor", &c.GrowthFactor)
	floatKey("advanced_growth_factor", &c.AdvancedGrowthFactor)
	intKey("advanced_growth_level", &c.AdvancedGrowthLevel)
	floatKey("trunk_width", &c.TrunkWidth)
	floatKey("trunk_height", &c.TrunkHeight)
	floatKey("canopy_ratio", &c.CanopyRatio)
	intKey("leaf_radius_min", &c.LeafRadiusMin)
	intKey("leaf_radius_max", &c.LeafRadiusMax)
	if v, ok := cfg["background"]; ok {
		c.Background = v
	}
	if v, ok := cfg["trunk_color"]; ok {
		c.TrunkColor = v
	}
	return c
}
