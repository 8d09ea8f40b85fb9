package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubSource is a minimal DataSource for binding tests.
type stubSource map[string]ResolverFunc

func (s stubSource) Method(name string) (ResolverFunc, bool) {
	fn, ok := s[name]
	return fn, ok
}

func requestCtx(sources map[string]DataSource) context.Context {
	m := NewDataSourceMap()
	for name, ds := range sources {
		m.Set(name, ds)
	}
	return WithRequestContext(context.Background(), &RequestContext{DataSources: m})
}

func TestBindSchema_Empty(t *testing.T) {
	cfg, err := BindSchema(nil, "X")
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestBindSchema_SynthesizesPassthroughResolvers(t *testing.T) {
	cfg, err := BindSchema([]string{`type Query { foo: String }`}, "X")
	require.NoError(t, err)
	require.Equal(t, []string{`type Query { foo: String }`}, cfg.Schemas)
	require.Len(t, cfg.Resolvers, 1)
	require.Len(t, cfg.Resolvers["Query"], 1)

	var gotParent interface{}
	var gotArgs map[string]interface{}
	var gotInfo *ResolveInfo
	ds := stubSource{
		"foo": func(_ context.Context, parent interface{}, args map[string]interface{}, info *ResolveInfo) (interface{}, error) {
			gotParent, gotArgs, gotInfo = parent, args, info
			return "bar", nil
		},
	}
	ctx := requestCtx(map[string]DataSource{"X": ds})

	parent := map[string]interface{}{"id": 1}
	args := map[string]interface{}{"a": "b"}
	info := &ResolveInfo{ParentType: "Query", FieldName: "foo"}
	result, err := cfg.Resolvers["Query"]["foo"](ctx, parent, args, info)
	require.NoError(t, err)
	require.Equal(t, "bar", result)

	// all resolver arguments forwarded verbatim
	require.Equal(t, parent, gotParent)
	require.Equal(t, args, gotArgs)
	require.Same(t, info, gotInfo)
}

func TestBindSchema_MissingDataSourceResolvesNil(t *testing.T) {
	cfg, err := BindSchema([]string{`type Query { foo: String }`}, "X")
	require.NoError(t, err)

	ctx := requestCtx(nil)
	result, err := cfg.Resolvers["Query"]["foo"](ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestBindSchema_MissingMethodFailsAtCallTime(t *testing.T) {
	cfg, err := BindSchema([]string{`type Query { foo: String }`}, "X")
	require.NoError(t, err)

	// binding succeeded even though the provider has no foo method
	ctx := requestCtx(map[string]DataSource{"X": stubSource{}})
	_, err = cfg.Resolvers["Query"]["foo"](ctx, nil, nil, nil)
	require.Error(t, err)

	var notDefined *MethodNotDefinedError
	require.True(t, errors.As(err, &notDefined))
	require.Equal(t, "X", notDefined.DataSource)
	require.Equal(t, "foo", notDefined.FieldName)
}

func TestBindSchema_InvalidFragment(t *testing.T) {
	_, err := BindSchema([]string{`type Query {`}, "X")
	require.Error(t, err)
}
