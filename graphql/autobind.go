package graphql

import (
	"context"
	"fmt"
)

// MethodNotDefinedError is raised when a bound pass-through resolver is
// invoked but its data source has no method for the field. Binding is
// optimistic: the error surfaces at query time, never at bind time.
type MethodNotDefinedError struct {
	DataSource string
	TypeName   string
	FieldName  string
}

func (e *MethodNotDefinedError) Error() string {
	return fmt.Sprintf("%s.%s: resolver method %q is not defined on data source %q",
		e.TypeName, e.FieldName, e.FieldName, e.DataSource)
}

// BindSchema introspects the given schema fragments and synthesizes a
// pass-through resolver for every root-type field, each forwarding to the
// same-named method of the data source registered under dataSourceName.
// Returns nil when there are no fragments. Lets an extension ship only a
// schema contract plus a conventionally named backend provider, with no
// manual resolver wiring.
func BindSchema(schemas []string, dataSourceName string) (*PartialConfig, error) {
	if len(schemas) == 0 {
		return nil, nil
	}
	resolvers := ResolverMap{}
	for _, sdl := range schemas {
		fields, err := RootFields(sdl)
		if err != nil {
			return nil, fmt.Errorf("bind schema for data source %q: %w", dataSourceName, err)
		}
		for typeName, fieldNames := range fields {
			if resolvers[typeName] == nil {
				resolvers[typeName] = map[string]ResolverFunc{}
			}
			for _, fieldName := range fieldNames {
				resolvers[typeName][fieldName] = passthroughResolver(dataSourceName, typeName, fieldName)
			}
		}
	}
	return &PartialConfig{
		Schemas:   append([]string(nil), schemas...),
		Resolvers: resolvers,
	}, nil
}

// passthroughResolver forwards a field call to the named data source. A
// request without that data source resolves to nil (the extension is not
// wired to an active backend for this request, not a fault). A data source
// without the method is a call-time error.
func passthroughResolver(dataSourceName, typeName, fieldName string) ResolverFunc {
	return func(ctx context.Context, parent interface{}, args map[string]interface{}, info *ResolveInfo) (interface{}, error) {
		rc := RequestContextFromContext(ctx)
		if rc == nil {
			return nil, nil
		}
		ds, ok := rc.DataSources.Get(dataSourceName)
		if !ok {
			return nil, nil
		}
		method, ok := ds.Method(fieldName)
		if !ok {
			return nil, &MethodNotDefinedError{DataSource: dataSourceName, TypeName: typeName, FieldName: fieldName}
		}
		if info == nil {
			info = &ResolveInfo{ParentType: typeName, FieldName: fieldName}
		}
		return method(ctx, parent, args, info)
	}
}
