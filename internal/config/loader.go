package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "copycode"
	// ConfigName is the config file name without extension
	ConfigName = "config"
	// EnvPrefix is the prefix of environment overrides, e.g. COPYCODE_EXCLUDES
	EnvPrefix = "COPYCODE"
)

// SetDefaults registers every key with its built-in value so env and file
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("binary_extensions", d.BinaryExtensions)
	v.SetDefault("excludes", d.Excludes)
	v.SetDefault("apply_excludes", d.ApplyExcludes)
	v.SetDefault("no_ignore", d.NoIgnore)
	v.SetDefault("chat_url", d.ChatURL)
	v.SetDefault("tokens", d.Tokens)
	v.SetDefault("tokenizer", d.Tokenizer)
	v.SetDefault("tokenizer_model", d.TokenizerModel)
	v.SetDefault("tokenizer_file", d.TokenizerFile)
	v.SetDefault("languages_file", d.LanguagesFile)
}

// ReadInConfig points v at cfgFile, or at config.toml in ~/.config/copycode and
// the current directory, and reads it. A missing config file is not an error.
// It returns the path of the file used, if any.
func ReadInConfig(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigDir))
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals the viper state over the defaults and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
