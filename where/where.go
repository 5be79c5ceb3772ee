// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/cbstream/cbstream/constant"
	"github.com/cbstream/cbstream/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "CBSTREAM_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the application configuration directory.
// The path can be overridden with the CBSTREAM_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile resolves the path of the TOML settings file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// DotEnv resolves the path of the optional .env file read at startup.
func DotEnv() string {
	return filepath.Join(Config(), ".env")
}

// Logs resolves the absolute path to the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Temp resolves a volatile filesystem path for transient artifacts such as player sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
