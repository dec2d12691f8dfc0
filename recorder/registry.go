// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"errors"
	"sync"

	"github.com/gogpu/rendergraph"
)

// Recorder is the command recorder interface consumed by the graph
// runtime, re-exported for registrants.
type Recorder = rendergraph.CommandRecorder

// ErrNotAvailable is returned when no recorder is registered.
var ErrNotAvailable = errors.New("recorder: not available")

// Factory creates a new recorder instance.
type Factory func() Recorder

// registry holds registered recorder factories.
var (
	registryMu sync.RWMutex
	recorders  = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	// Native bindings register themselves above the built-ins.
	priority = []string{NameTrace, NameNull}
)

// Register registers a recorder factory with the given name.
// This is typically called from init() functions in binding packages.
// If a recorder with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	recorders[name] = factory
}

// Unregister removes a recorder from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(recorders, name)
}

// Available returns a list of registered recorder names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(recorders))
	for name := range recorders {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a recorder with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := recorders[name]
	return ok
}

// Get returns a recorder instance by name.
// Returns nil if the recorder is not registered.
func Get(name string) Recorder {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := recorders[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available recorder based on priority.
// Returns nil if no recorders are registered.
func Default() Recorder {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := recorders[name]; ok {
			if r := factory(); r != nil {
				return r
			}
		}
	}

	// Fallback: return first available
	for _, factory := range recorders {
		if r := factory(); r != nil {
			return r
		}
	}

	return nil
}

// MustDefault returns the default recorder or panics.
func MustDefault() Recorder {
	r := Default()
	if r == nil {
		panic("recorder: no recorder available")
	}
	return r
}
