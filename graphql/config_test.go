package graphql

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAggregateMerge_PreservesFragmentOrder(t *testing.T) {
	agg := NewAggregateConfig()
	agg.Merge(&PartialConfig{Schemas: []string{"s1", "s2"}}, "e1")
	agg.Merge(&PartialConfig{}, "e2") // zero fragments must not shift order
	agg.Merge(&PartialConfig{Schemas: []string{"s3"}}, "e3")

	if diff := cmp.Diff([]string{"s1", "s2", "s3"}, agg.Schemas); diff != "" {
		t.Errorf("schema order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateMerge_AppendsResolversAndContext(t *testing.T) {
	rm := ResolverMap{"Query": {"foo": nil}}
	agg := NewAggregateConfig()
	agg.Merge(&PartialConfig{Resolvers: rm, Context: ContextValues{"a": 1}}, "e1")
	agg.Merge(&PartialConfig{Context: ContextValues{"b": 2}}, "e2")

	require.Len(t, agg.Resolvers, 1)
	require.Len(t, agg.ContextModifiers, 2)
}

func TestAggregateMerge_DataSourcesAssign(t *testing.T) {
	agg := NewAggregateConfig()
	first := stubSource{}
	second := stubSource{"replaced": nil}
	agg.Merge(&PartialConfig{DataSources: map[string]DataSource{"shop": first}}, "e1")
	agg.Merge(&PartialConfig{DataSources: map[string]DataSource{"cms": second, "shop": second}}, "e2")

	require.Equal(t, []string{"shop", "cms"}, agg.DataSources.Names())
	ds, ok := agg.DataSources.Get("shop")
	require.True(t, ok)
	// later binding replaces the earlier one
	require.Len(t, ds.(stubSource), 1)
}

func TestAggregateMerge_UnsupportedKeyLeavesAggregateUnchanged(t *testing.T) {
	agg := NewAggregateConfig()
	agg.Merge(&PartialConfig{Schemas: []string{"s1"}}, "e1")
	before := append([]string(nil), agg.Schemas...)
	resolversBefore := len(agg.Resolvers)
	modifiersBefore := len(agg.ContextModifiers)
	sourcesBefore := agg.DataSources.Len()

	agg.Merge(&PartialConfig{Extra: map[string]interface{}{"cache": true}}, "e2")

	require.Equal(t, before, agg.Schemas)
	require.Equal(t, resolversBefore, len(agg.Resolvers))
	require.Equal(t, modifiersBefore, len(agg.ContextModifiers))
	require.Equal(t, sourcesBefore, agg.DataSources.Len())
}

func TestPartialMerge_DeepMerge(t *testing.T) {
	fooResolver := func(context.Context, interface{}, map[string]interface{}, *ResolveInfo) (interface{}, error) {
		return nil, nil
	}
	dst := &PartialConfig{
		Schemas:   []string{"a"},
		Resolvers: ResolverMap{"Query": {"foo": nil}},
	}
	dst.Merge(&PartialConfig{
		Schemas:   []string{"b"},
		Resolvers: ResolverMap{"Query": {"bar": nil}, "Mutation": {"baz": fooResolver}},
		Context:   ContextValues{"k": "v"},
	})

	require.Equal(t, []string{"a", "b"}, dst.Schemas)
	require.Len(t, dst.Resolvers["Query"], 2)
	require.Len(t, dst.Resolvers["Mutation"], 1)
	require.NotNil(t, dst.Context)
}

func TestDataSourceMap_RebindKeepsPosition(t *testing.T) {
	m := NewDataSourceMap()
	m.Set("a", stubSource{})
	m.Set("b", stubSource{})
	m.Set("a", stubSource{})
	require.Equal(t, []string{"a", "b"}, m.Names())
}

func TestDataSourceMap_RangeStopsEarly(t *testing.T) {
	m := NewDataSourceMap()
	m.Set("a", stubSource{})
	m.Set("b", stubSource{})
	var seen []string
	m.Range(func(name string, _ DataSource) bool {
		seen = append(seen, name)
		return false
	})
	require.Equal(t, []string{"a"}, seen)
}
