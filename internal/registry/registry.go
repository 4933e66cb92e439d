// Package registry holds the word packs available to the game. Packs
// register themselves in init() functions so the CLI can list and play them
// without hardcoded imports beyond a blank import per pack.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/word-match/internal/catalog"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
	Pairs  int
}

// Factory returns a fresh copy of a pack's catalog.
type Factory func() catalog.Catalog

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack to the registry. It panics if the id is taken or the
// catalog fails validation: a built-in pack that cannot be played is a
// programming error and should stop the binary at startup.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	c := f()
	if err := catalog.Validate(c); err != nil {
		panic(fmt.Sprintf("registry: pack %q is invalid: %v", id, err))
	}

	factories[id] = f
	infos[id] = PackInfo{
		ID:     id,
		Title:  c.Title,
		Levels: c.Len(),
		Pairs:  c.PairCount(),
	}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the catalog of a registered pack.
func Get(id string) (catalog.Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return catalog.Catalog{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a pack. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
