package extension

import (
	"sync"

	"github.com/azhkhn/falcon/core/registry"
)

var mu sync.Mutex

func getInitializers() map[string]InitFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryExtensions); ok && v != nil {
		return v.(map[string]InitFunc)
	}
	return make(map[string]InitFunc)
}

// Register binds an initializer to a package locator. Call from init() in
// extension packages. Panics on duplicates or after the registry is locked.
func Register(pkg string, init InitFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryExtensions) {
		panic("extension/registry: locked (register only during init before first request)")
	}
	inits := getInitializers()
	if _, ok := inits[pkg]; ok {
		panic("extension/registry: duplicate " + pkg)
	}
	inits[pkg] = init
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryExtensions, inits)
}

func getSchemas() map[string]string {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistrySchemas); ok && v != nil {
		return v.(map[string]string)
	}
	return make(map[string]string)
}

// RegisterSchema binds a packaged schema fragment (typically go:embed-ed next
// to the extension source) to a package locator. Call from init().
func RegisterSchema(pkg string, sdl string) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistrySchemas) {
		panic("extension/registry: locked (register only during init before first request)")
	}
	schemas := getSchemas()
	schemas[pkg] = sdl
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistrySchemas, schemas)
}

// Unregister removes a package's initializer and schema (for tests).
func Unregister(pkg string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryExtensions)
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistrySchemas)
	inits := getInitializers()
	delete(inits, pkg)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryExtensions, inits)
	schemas := getSchemas()
	delete(schemas, pkg)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistrySchemas, schemas)
}

func lookupInitializer(pkg string) (InitFunc, bool) {
	mu.Lock()
	defer mu.Unlock()
	init, ok := getInitializers()[pkg]
	return init, ok
}

func lookupSchema(pkg string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()
	sdl, ok := getSchemas()[pkg]
	return sdl, ok
}
