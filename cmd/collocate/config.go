// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "COLLOCATE"

// Config keys and the flags bound to them.
const (
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyDropIncomplete = "input.drop_incomplete"
	keyOutputFormat   = "output.format"
)

var flagKeys = map[string]string{
	"log-level":       keyLogLevel,
	"log-format":      keyLogFormat,
	"drop-incomplete": keyDropIncomplete,
	"format":          keyOutputFormat,
}

// Output formats.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

var errOutputFormat = errors.New("output format must be \"table\" or \"csv\"")

// Settings is the resolved run configuration.
type Settings struct {
	DropIncomplete bool
	Format         string
}

// LoadConfig resolves configuration with precedence
// flags > COLLOCATE_* env > config file > defaults.
// A missing default config file is not an error; a missing explicit one is.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyDropIncomplete, false)
	v.SetDefault(keyOutputFormat, formatTable)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("collocate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// COLLOCATE_LOG_LEVEL=debug, COLLOCATE_OUTPUT_FORMAT=csv
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// settingsFrom extracts and validates Settings.
func settingsFrom(v *viper.Viper) (Settings, error) {
	s := Settings{
		DropIncomplete: v.GetBool(keyDropIncomplete),
		Format:         strings.ToLower(v.GetString(keyOutputFormat)),
	}
	switch s.Format {
	case formatTable, formatCSV:
	default:
		return Settings{}, fmt.Errorf("%q: %w", s.Format, errOutputFormat)
	}

	return s, nil
}
