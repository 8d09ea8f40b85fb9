// Package registry orchestrates extension registration: two-phase init of
// every extension in declared order, auto-binding of schema fragments, and
// the per-extension lifecycle notification.
package registry

import (
	"context"
	"sync"

	"github.com/azhkhn/falcon/core/logger"
	"github.com/azhkhn/falcon/events"
	"github.com/azhkhn/falcon/extension"
	"github.com/azhkhn/falcon/graphql"
)

var log = logger.New("registry")

// EventExtensionRegistered is emitted after each extension is registered.
// All bus listeners complete before the next extension starts registering.
const EventExtensionRegistered = "extension.registered"

// ExtensionRegistered is the payload of EventExtensionRegistered.
type ExtensionRegistered struct {
	Name   string
	Config *graphql.PartialConfig
}

// Registry resolves and stores each extension's partial GraphQL config,
// keyed by extension name, in registration order. It implements
// graphql.ConfigSource for the config builder.
type Registry struct {
	mu      sync.RWMutex
	loader  extension.Loader
	bus     *events.Bus
	names   []string
	configs map[string]*graphql.PartialConfig
}

// New creates a Registry using the given loader and event bus. The loader is
// required; a nil bus disables notifications.
func New(loader extension.Loader, bus *events.Bus) *Registry {
	return &Registry{
		loader:  loader,
		bus:     bus,
		configs: make(map[string]*graphql.PartialConfig),
	}
}

// RegisterExtensions registers every entry strictly in order. Never
// concurrent: later extensions may depend on side effects of earlier ones,
// and registration order fixes merge precedence. A missing or failing
// initializer and a missing schema fragment are logged, not fatal.
func (r *Registry) RegisterExtensions(ctx context.Context, entries []extension.Entry) error {
	for _, e := range entries {
		if err := r.register(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(ctx context.Context, e extension.Entry) error {
	cfg := &graphql.PartialConfig{}

	if init, ok := r.loader.LoadInitializer(e.Package); ok {
		c, err := init(ctx, e.Config)
		if err != nil {
			log.Warnf("extension %q: initializer failed: %v - continuing with empty config", e.Name, err)
		} else {
			cfg.Merge(c)
		}
	} else {
		log.Debugf("extension %q: no initializer for package %q", e.Name, e.Package)
	}

	sdl, found, err := r.loader.LoadSchemaFragment(e.Package)
	if err != nil {
		log.Warnf("extension %q: schema fragment load failed: %v", e.Name, err)
	} else if !found {
		log.Debugf("extension %q: no schema fragment for package %q", e.Name, e.Package)
	}
	if found {
		bound, err := graphql.BindSchema([]string{sdl}, extension.APIName(e.Config))
		if err != nil {
			log.Warnf("extension %q: %v - skipping schema fragment", e.Name, err)
		} else {
			cfg.Merge(bound)
		}
	}

	r.store(e.Name, cfg)
	log.Infof("extension %q registered", e.Name)

	if r.bus != nil {
		// Listeners may mutate shared state; await them before the next
		// extension begins.
		if err := r.bus.Emit(ctx, EventExtensionRegistered, ExtensionRegistered{Name: e.Name, Config: cfg}); err != nil {
			log.Warnf("extension %q: registered listener failed: %v", e.Name, err)
		}
	}
	return nil
}

// store records cfg under name. A duplicate name overwrites the previous
// config entirely but keeps its original position.
func (r *Registry) store(name string, cfg *graphql.PartialConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[name]; !ok {
		r.names = append(r.names, name)
	}
	r.configs[name] = cfg
}

// Names returns the registered extension names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Config returns the resolved config stored under name.
func (r *Registry) Config(name string) (*graphql.PartialConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[name]
	return cfg, ok
}
