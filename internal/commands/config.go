package commands

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/magpie/dump"
	"github.com/simonhull/firebird-suite/magpie/preen"
	"github.com/spf13/viper"
)

// LoadOptions builds emitter options for CLI runs from magpie.yml in the
// working directory, with MAGPIE_* environment overrides. A missing config
// file falls back to defaults; a malformed one is an error.
//
// The gate is always open here: running the CLI is the opt-in, so
// MAGPIE_ENABLED only matters for library call sites.
func LoadOptions() (*dump.Options, error) {
	v := viper.New()
	v.SetConfigName("magpie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("format", true)
	v.SetDefault("notify", true)

	// Environment overrides: MAGPIE_OUT, MAGPIE_FORMATTER, MAGPIE_FORMAT,
	// MAGPIE_NOTIFY - the same variables the library reads.
	v.SetEnvPrefix("MAGPIE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read magpie.yml: %w", err)
		}
	}

	opts := &dump.Options{
		Enabled: true,
		Format:  v.GetBool("format"),
		Notify:  v.GetBool("notify"),
		Dir:     v.GetString("out"),
	}

	if f := preen.Resolve(v.GetString("formatter")); f != nil {
		opts.Formatter = f
	} else {
		opts.Format = false
	}

	return opts, nil
}
