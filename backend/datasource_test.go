package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azhkhn/falcon/graphql"
)

type catalog struct {
	calls int
}

func (c *catalog) Products(_ context.Context, _ interface{}, args map[string]interface{}, _ *graphql.ResolveInfo) (interface{}, error) {
	c.calls++
	return []string{"WS12"}, nil
}

// not a resolver signature; must never match
func (c *catalog) Close() error { return nil }

func TestMethods_MatchesFieldNamesCaseInsensitively(t *testing.T) {
	c := &catalog{}
	ds := Methods(c)

	fn, ok := ds.Method("products")
	require.True(t, ok)

	result, err := fn(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"WS12"}, result)
	require.Equal(t, 1, c.calls)
}

func TestMethods_MissingMethod(t *testing.T) {
	_, ok := Methods(&catalog{}).Method("orders")
	require.False(t, ok)
}

func TestMethods_SkipsNonResolverMethods(t *testing.T) {
	_, ok := Methods(&catalog{}).Method("close")
	require.False(t, ok)
}

func TestMethodMap(t *testing.T) {
	m := MethodMap{"foo": nopResolver}
	_, ok := m.Method("foo")
	require.True(t, ok)
	_, ok = m.Method("bar")
	require.False(t, ok)
}

func TestNop(t *testing.T) {
	ds := Nop("foo")
	fn, ok := ds.Method("foo")
	require.True(t, ok)
	result, err := fn(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Nil(t, result)
}
