// Package filesystem holds the swappable afero backend every file access goes through.
package filesystem

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
)

var (
	mu      sync.RWMutex
	backend = afero.Afero{Fs: afero.NewOsFs()}
)

// API returns the active backend.
func API() afero.Afero {
	mu.RLock()
	defer mu.RUnlock()

	return backend
}

// Use replaces the backend. Caches opened earlier keep writing to the old one.
func Use(fs afero.Fs) {
	mu.Lock()
	defer mu.Unlock()

	backend = afero.Afero{Fs: fs}
}

func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory backend. Tests call it from init.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// Gache adapts the backend to gache's FileSystem.
type Gache struct{}

func (Gache) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (Gache) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
