// Package graphql holds the composition engine of the gateway: partial
// configurations contributed by extensions, the merge policy that folds them
// into one aggregate, schema-fragment introspection, resolver auto-binding and
// the final server-config builder.
package graphql

import (
	"context"
	"net/http"
	"sort"

	"github.com/azhkhn/falcon/core/logger"
)

var log = logger.New("graphql")

// ResolverFunc is the signature for field resolvers. Parent, args and info are
// forwarded verbatim to data-source methods; the request context travels in
// ctx (see RequestContext).
type ResolverFunc func(ctx context.Context, parent interface{}, args map[string]interface{}, info *ResolveInfo) (interface{}, error)

// ResolverMap maps root type name -> field name -> resolver.
type ResolverMap map[string]map[string]ResolverFunc

// ResolveInfo describes the field being resolved.
type ResolveInfo struct {
	ParentType string
	FieldName  string
}

// ContextModifier contributes per-request context values. Implementations are
// ContextValues (merged as literals) and ContextFunc (invoked with the request
// and the values accumulated so far).
type ContextModifier interface {
	modifyContext(r *http.Request, acc map[string]interface{}) (map[string]interface{}, error)
}

// ContextValues is a static context contribution, merged key-wise.
type ContextValues map[string]interface{}

func (v ContextValues) modifyContext(_ *http.Request, _ map[string]interface{}) (map[string]interface{}, error) {
	return v, nil
}

// ContextFunc is a dynamic context contribution. It sees the values set by
// earlier modifiers and its return value is merged over them.
type ContextFunc func(r *http.Request, acc map[string]interface{}) (map[string]interface{}, error)

func (f ContextFunc) modifyContext(r *http.Request, acc map[string]interface{}) (map[string]interface{}, error) {
	return f(r, acc)
}

// PartialConfig is one extension's contribution to the server configuration.
// Partials are merged, never mutated destructively: the aggregate is rebuilt
// by accumulation on every BuildServerConfig call.
type PartialConfig struct {
	Schemas     []string
	Resolvers   ResolverMap
	Context     ContextModifier
	DataSources map[string]DataSource

	// Extra carries unrecognized config keys. The merger warns about each one
	// and drops it (forward-compatibility placeholder).
	Extra map[string]interface{}
}

// Merge folds src into p (deep merge: schemas concatenate, resolver maps and
// data-source bindings combine key-wise). Used by the registry to combine an
// extension's initializer-produced config with its schema-derived one.
func (p *PartialConfig) Merge(src *PartialConfig) {
	if src == nil {
		return
	}
	p.Schemas = append(p.Schemas, src.Schemas...)
	if src.Resolvers != nil {
		if p.Resolvers == nil {
			p.Resolvers = ResolverMap{}
		}
		for typeName, fields := range src.Resolvers {
			if p.Resolvers[typeName] == nil {
				p.Resolvers[typeName] = map[string]ResolverFunc{}
			}
			for field, fn := range fields {
				p.Resolvers[typeName][field] = fn
			}
		}
	}
	if src.Context != nil {
		p.Context = src.Context
	}
	if src.DataSources != nil {
		if p.DataSources == nil {
			p.DataSources = map[string]DataSource{}
		}
		for _, name := range sortedKeys(src.DataSources) {
			p.DataSources[name] = src.DataSources[name]
		}
	}
	if src.Extra != nil {
		if p.Extra == nil {
			p.Extra = map[string]interface{}{}
		}
		for k, v := range src.Extra {
			p.Extra[k] = v
		}
	}
}

// AggregateConfig accumulates all extension contributions in registration
// order. Insertion order is semantically significant: it fixes schema
// precedence, the order context modifiers run, and resolver override order.
type AggregateConfig struct {
	Schemas          []string
	Resolvers        []ResolverMap
	ContextModifiers []ContextModifier
	DataSources      *DataSourceMap
}

// NewAggregateConfig returns an empty aggregate.
func NewAggregateConfig() *AggregateConfig {
	return &AggregateConfig{DataSources: NewDataSourceMap()}
}

// Merge folds one extension's resolved config into the aggregate, field by
// field. Schemas and resolver maps append in order, the context modifier
// appends, data-source bindings assign. Unrecognized keys are logged and
// dropped. label names the contributing extension in diagnostics.
func (a *AggregateConfig) Merge(src *PartialConfig, label string) {
	if src == nil {
		return
	}
	a.Schemas = append(a.Schemas, src.Schemas...)
	if src.Resolvers != nil {
		a.Resolvers = append(a.Resolvers, src.Resolvers)
	}
	if src.Context != nil {
		a.ContextModifiers = append(a.ContextModifiers, src.Context)
	}
	// Sorted for a deterministic walk; cross-extension precedence is still
	// fixed by registration order.
	for _, name := range sortedKeys(src.DataSources) {
		a.DataSources.Set(name, src.DataSources[name])
	}
	for _, key := range sortedExtraKeys(src.Extra) {
		log.Warnf("unsupported config key %q from extension %q - ignoring", key, label)
	}
}

func sortedKeys(m map[string]DataSource) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedExtraKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
