package main

import (
	"errors"
	"fmt"

	"github.com/jrazmi/crudkit/app/generators/fieldspec"
	"github.com/spf13/viper"
)

const (
	configFileName = "scaffold"
	configFileType = "yaml"
	envPrefix      = "SCAFFOLD"

	cfgKeyAppDir        = "app_dir"
	cfgKeyModule        = "module"
	cfgKeyDefaultFields = "default_fields"
)

// settings are read from scaffold.yaml and SCAFFOLD_* variables.
type settings struct {
	AppDir        string
	Module        string
	DefaultFields []string
}

// loadSettings reads the config file when present. A missing default
// scaffold.yaml is not an error; a missing explicit --config file is.
func loadSettings(path string) (*settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAppDir, "app")
	v.SetDefault(cfgKeyModule, "")
	v.SetDefault(cfgKeyDefaultFields, fieldspec.DefaultFields())
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &settings{
		AppDir:        v.GetString(cfgKeyAppDir),
		Module:        v.GetString(cfgKeyModule),
		DefaultFields: v.GetStringSlice(cfgKeyDefaultFields),
	}, nil
}
