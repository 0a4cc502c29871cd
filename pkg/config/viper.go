package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load reads configuration from file and environment variables.
// configPath is the directory containing config files.
// configName is the name of the config file (without extension).
// envPrefix, when non-empty, namespaces automatic env lookups (PREFIX_KEY).
func Load(configPath, configName, envPrefix string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil // Config file not found, rely on env vars
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return v, nil
}

// BindFlags binds each config key to the named flag in fs. Flags only take
// precedence when set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q for key %q is not defined", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}
