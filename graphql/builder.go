package graphql

import (
	"fmt"
	"net/http"
	"strings"

	gql "github.com/graph-gophers/graphql-go"
)

// Config is the base server configuration BuildServerConfig starts from,
// before any extension contribution is folded in.
type Config struct {
	Schemas   []string
	Resolvers []ResolverMap
	// Resolver is a convenience for a base config carrying a single resolver
	// map; it is normalized into a one-element prefix of Resolvers.
	Resolver    ResolverMap
	Context     ContextModifier
	DataSources map[string]DataSource

	// Passthrough settings for the serving layer.
	Playground bool
	Options    []gql.SchemaOpt
}

// ConfigSource yields resolved extension configs in registration order.
// Implemented by the extension registry.
type ConfigSource interface {
	Names() []string
	Config(name string) (*PartialConfig, bool)
}

// ServerConfig is the final artifact: the composite executable schema and the
// request-context builder the execution engine consumes. Built once at
// startup, immutable and shared read-only afterwards.
type ServerConfig struct {
	// Schema is the composite schema, parsed and validated. With a nil root
	// resolver it is inspectable (introspection, SDL) but not executable by
	// itself; execution is the hosting engine's job.
	Schema    *gql.Schema
	SchemaSDL string

	// Resolvers is the flattened resolver map. A later extension's entry for
	// the same type and field overrides an earlier one.
	Resolvers   ResolverMap
	DataSources *DataSourceMap

	// NewContext runs the accumulated context-modifier pipeline for one
	// request and returns the per-request context.
	NewContext func(r *http.Request) (*RequestContext, error)

	Playground bool
	Options    []gql.SchemaOpt
}

// BuildServerConfig merges the base config with every registered extension's
// config in registration order and builds the composite schema.
func BuildServerConfig(base *Config, src ConfigSource) (*ServerConfig, error) {
	if base == nil {
		base = &Config{}
	}

	agg := NewAggregateConfig()
	agg.Schemas = append(agg.Schemas, base.Schemas...)
	if base.Resolver != nil {
		agg.Resolvers = append(agg.Resolvers, base.Resolver)
	}
	agg.Resolvers = append(agg.Resolvers, base.Resolvers...)
	if base.Context != nil {
		agg.ContextModifiers = append(agg.ContextModifiers, base.Context)
	}
	for _, name := range sortedKeys(base.DataSources) {
		agg.DataSources.Set(name, base.DataSources[name])
	}

	if src != nil {
		for _, name := range src.Names() {
			if cfg, ok := src.Config(name); ok {
				agg.Merge(cfg, name)
			}
		}
	}

	sdl := strings.Join(agg.Schemas, "\n\n")
	schema, err := gql.ParseSchema(sdl, nil, base.Options...)
	if err != nil {
		return nil, fmt.Errorf("build composite schema: %w", err)
	}

	resolvers := ResolverMap{}
	for _, rm := range agg.Resolvers {
		for typeName, fields := range rm {
			if resolvers[typeName] == nil {
				resolvers[typeName] = map[string]ResolverFunc{}
			}
			for field, fn := range fields {
				resolvers[typeName][field] = fn
			}
		}
	}

	modifiers := append([]ContextModifier(nil), agg.ContextModifiers...)
	dataSources := agg.DataSources
	newContext := func(r *http.Request) (*RequestContext, error) {
		values := map[string]interface{}{}
		for _, m := range modifiers {
			vals, err := m.modifyContext(r, values)
			if err != nil {
				return nil, err
			}
			for k, v := range vals {
				values[k] = v
			}
		}
		return &RequestContext{DataSources: dataSources, Values: values}, nil
	}

	return &ServerConfig{
		Schema:      schema,
		SchemaSDL:   sdl,
		Resolvers:   resolvers,
		DataSources: dataSources,
		NewContext:  newContext,
		Playground:  base.Playground,
		Options:     base.Options,
	}, nil
}
