// Package ruleconfig loads the ambient configuration a hashlife
// Engine needs but the node algebra itself has no opinion about: the
// birth/survive Rule and logging verbosity. It is grounded on
// junjiewwang-perf-analysis's pkg/config/config.go, which loads a
// mapstructure-tagged Config via github.com/spf13/viper with a
// setDefaults helper; this package keeps that same shape without
// pulling in that repo's CLI layer (spf13/cobra), since a
// command-line driver is explicitly out of scope for this module.
package ruleconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lauhayden/hashlife"
)

// Config is the full ambient configuration: the rule to simulate and
// how verbosely to log.
type Config struct {
	Rule RuleConfig `mapstructure:"rule"`
	Log  LogConfig  `mapstructure:"log"`
}

// RuleConfig mirrors hashlife.Rule in a form viper can unmarshal into.
type RuleConfig struct {
	Birth   []int `mapstructure:"birth"`
	Survive []int `mapstructure:"survive"`
}

// LogConfig controls the verbosity of the zerolog logger handed to a
// hashlife.NodeStore.
type LogConfig struct {
	// Level is a zerolog level name: "disabled", "info", "debug",
	// "trace", etc. Defaults to "disabled" so library use stays
	// silent unless a caller opts in.
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rule.birth", []int{3})
	v.SetDefault("rule.survive", []int{2, 3})
	v.SetDefault("log.level", "disabled")
}

// Load reads a Config from, in ascending priority: compiled-in
// defaults (Life's B3/S23, logging disabled), an optional config file
// at path (skipped entirely when path is ""), and HASHLIFE_-prefixed
// environment variables (e.g. HASHLIFE_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("HASHLIFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ruleconfig: reading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("ruleconfig: unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// HashlifeRule converts the loaded RuleConfig into a hashlife.Rule.
func (c *Config) HashlifeRule() hashlife.Rule {
	return hashlife.Rule{Birth: c.Rule.Birth, Survive: c.Rule.Survive}
}

// Logger builds a zerolog.Logger at the configured level, writing to
// stderr. An unparseable level falls back to zerolog.Disabled rather
// than failing the caller.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.Disabled
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// NewNodeStore builds a hashlife.NodeStore wired to this Config's
// logger, the concrete point where a loaded LogConfig actually reaches
// a NodeStore.
func (c *Config) NewNodeStore() *hashlife.NodeStore {
	return hashlife.NewNodeStoreWithLogger(c.Logger())
}
