// internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mailgen/internal/cli"
)

// Keys the config file / environment may supply. Flags always win;
// environment variables are MAILGEN_-prefixed (MAILGEN_DOMAIN, …).
const (
	keyDomain   = "domain"
	keyOutput   = "output"
	keySimple   = "simple"
	keyLogLevel = "log_level"
)

// Load reads defaults from path (explicit --config, must exist) or from an
// optional mailgen.{toml,yaml,…} in the working directory, plus MAILGEN_*
// environment variables.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MAILGEN")
	for _, k := range []string{keyDomain, keyOutput, keySimple, keyLogLevel} {
		_ = v.BindEnv(k)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("mailgen")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return v, nil
}

// Apply fills options whose flags the user left at their defaults.
func Apply(v *viper.Viper, fs *pflag.FlagSet, opts *cli.Options) {
	if !fs.Changed("domain") {
		if s := v.GetString(keyDomain); s != "" {
			opts.Domain = s
		}
	}
	if !fs.Changed("output") {
		if s := v.GetString(keyOutput); s != "" {
			opts.Output = s
		}
	}
	if !fs.Changed("simple") && v.IsSet(keySimple) {
		opts.Simple = v.GetBool(keySimple)
	}
	if !fs.Changed("log-level") {
		if s := v.GetString(keyLogLevel); s != "" {
			opts.LogLevel = s
		}
	}
}
