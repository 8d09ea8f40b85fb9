package graphql

// DataSource is the capability surface a backend provider exposes to the
// gateway: zero or more methods named after schema fields. Method lookup is
// optimistic; a missing method only surfaces when the field is queried.
type DataSource interface {
	// Method returns the resolver for a field name, if the provider has one.
	Method(name string) (ResolverFunc, bool)
}

// DataSourceMap is an insertion-ordered mapping of data-source name to
// provider. Order matters: the backend-config aggregation walks providers in
// the order their extensions were registered.
type DataSourceMap struct {
	names   []string
	sources map[string]DataSource
}

// NewDataSourceMap returns an empty map.
func NewDataSourceMap() *DataSourceMap {
	return &DataSourceMap{sources: make(map[string]DataSource)}
}

// Set binds a provider under name. Rebinding an existing name replaces the
// provider but keeps its original position.
func (m *DataSourceMap) Set(name string, ds DataSource) {
	if _, ok := m.sources[name]; !ok {
		m.names = append(m.names, name)
	}
	m.sources[name] = ds
}

// Get returns the provider bound under name.
func (m *DataSourceMap) Get(name string) (DataSource, bool) {
	if m == nil {
		return nil, false
	}
	ds, ok := m.sources[name]
	return ds, ok
}

// Names returns the bound names in insertion order.
func (m *DataSourceMap) Names() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.names...)
}

// Len returns the number of bound providers.
func (m *DataSourceMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Range calls fn for every provider in insertion order. It stops early when
// fn returns false.
func (m *DataSourceMap) Range(fn func(name string, ds DataSource) bool) {
	if m == nil {
		return
	}
	for _, name := range m.names {
		if !fn(name, m.sources[name]) {
			return
		}
	}
}
