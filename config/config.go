// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/filesystem"
	"github.com/cbstream/cbstream/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state: .env file, environment bindings, defaults and the TOML file.
func Setup() error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// loadDotEnv exports variables from the optional .env file in the config directory.
// Variables already present in the process environment win.
func loadDotEnv() error {
	data, ok, err := filesystem.ReadIfExists(where.DotEnv())
	if err != nil || !ok {
		return err
	}

	vars, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", where.DotEnv(), err)
	}

	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
