package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"pixlife/pkg/core"
	"pixlife/pkg/life"
)

// ErrInvalidConfig is returned by Validate for settings no host can run with.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Scale   int    `json:"scale"`
	TPS     int    `json:"tps"`
	Seed    int64  `json:"seed"`
	Pattern string `json:"pattern"`
	Empty   bool   `json:"empty"`
	File    string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 320, Height: 240, Scale: 3, TPS: core.DefaultTPS, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial population")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped in the middle of the grid (blinker, block, glider)")
	fs.BoolVar(&c.Empty, "empty", c.Empty, "start from an all-dead grid instead of a random one")
	fs.StringVar(&c.File, "config", c.File, "optional JSON file with settings; explicit flags take precedence")
}

// LoadFile overlays the settings found in a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports settings that cannot produce a running session.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "scale %d", c.Scale)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tps %d", c.TPS)
	}
	if c.Pattern != "" {
		if _, err := life.PatternByName(c.Pattern); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Parse binds a fresh Config to fs, parses args, applies the -config file if
// one was named and validates the result. Flags set on the command line win
// over values from the file.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	return ParseWith(NewConfig(), fs, args)
}

// ParseWith is Parse starting from cfg instead of NewConfig, for hosts with
// their own defaults. Precedence is defaults, then file, then explicit flags.
func ParseWith(cfg *Config, fs *flag.FlagSet, args []string) (*Config, error) {
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := cfg.LoadFile(cfg.File); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, errors.Wrapf(err, "re-applying -%s", name)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
