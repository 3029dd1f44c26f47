package draw

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name string
	// Extensions lists the file extensions the backend writes, e.g. ".png".
	Extensions []string
}

type registration struct {
	info    BackendInfo
	factory BackendFactory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

// Register makes a backend available by name. It is meant to be called from
// init() in backend packages:
//
//	func init() {
//	    draw.Register("svg", func() draw.Backend { return NewBackend() }, ".svg")
//	}
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory, extensions ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("draw: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("draw: Register called twice for " + name)
	}
	registry[name] = registration{
		info:    BackendInfo{Name: name, Extensions: append([]string(nil), extensions...)},
		factory: factory,
	}
}

// NewBackend creates a new instance of the named backend.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("draw: unknown backend %q (forgotten import?)", name)
	}
	return reg.factory(), nil
}

// BackendForExtension returns a new instance of the first backend, in name
// order, that writes files with extension ext. Case is ignored.
func BackendForExtension(ext string) (Backend, error) {
	for _, info := range Backends() {
		for _, e := range info.Extensions {
			if strings.EqualFold(e, ext) {
				return NewBackend(info.Name)
			}
		}
	}
	return nil, fmt.Errorf("draw: no backend writes %q files", ext)
}

// Backends returns the registered backends sorted by name.
func Backends() []BackendInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	infos := make([]BackendInfo, 0, len(registry))
	for _, reg := range registry {
		infos = append(infos, reg.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
