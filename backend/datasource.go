// Package backend adapts backend capability providers to the gateway's
// data-source contract and implements the cross-backend config aggregation.
package backend

import (
	"context"
	"reflect"
	"strings"

	"github.com/azhkhn/falcon/graphql"
)

// MethodMap is a DataSource backed by an explicit field->resolver map.
type MethodMap map[string]graphql.ResolverFunc

func (m MethodMap) Method(name string) (graphql.ResolverFunc, bool) {
	fn, ok := m[name]
	return fn, ok
}

var resolverType = reflect.TypeOf(graphql.ResolverFunc(nil))

// Methods wraps a provider struct as a DataSource. Exported methods with the
// resolver signature are matched to field names case-insensitively, the way
// graphql-go matches schema fields to resolver methods. Lookup is lazy; a
// field with no matching method only fails when queried.
func Methods(provider interface{}) graphql.DataSource {
	return &reflectSource{v: reflect.ValueOf(provider)}
}

type reflectSource struct {
	v reflect.Value
}

// Unwrap exposes the wrapped provider, so capability checks (backend config,
// for one) reach through the adapter.
func (s *reflectSource) Unwrap() interface{} {
	return s.v.Interface()
}

func (s *reflectSource) Method(name string) (graphql.ResolverFunc, bool) {
	t := s.v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !strings.EqualFold(m.Name, name) {
			continue
		}
		fn := s.v.Method(i)
		if !fn.Type().ConvertibleTo(resolverType) {
			continue
		}
		wrapped := fn.Convert(resolverType).Interface().(graphql.ResolverFunc)
		return wrapped, true
	}
	return nil, false
}

// compile-time interface checks
var (
	_ graphql.DataSource = MethodMap(nil)
	_ graphql.DataSource = (*reflectSource)(nil)
)

// nopResolver resolves to nil. Useful as a placeholder binding in tests and
// sample extensions.
func nopResolver(context.Context, interface{}, map[string]interface{}, *graphql.ResolveInfo) (interface{}, error) {
	return nil, nil
}

// Nop returns a DataSource with the given field names all resolving to nil.
func Nop(fields ...string) graphql.DataSource {
	m := MethodMap{}
	for _, f := range fields {
		m[f] = nopResolver
	}
	return m
}
