// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Everything that touches disk (config file, .env, logs) goes through API(), so tests can
// swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadIfExists returns the contents of path, or ok=false when the file does not exist.
func ReadIfExists(path string) (data []byte, ok bool, err error) {
	exists, err := backend.Exists(path)
	if err != nil || !exists {
		return nil, false, err
	}

	data, err = backend.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
