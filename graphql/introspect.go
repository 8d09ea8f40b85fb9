package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Root operation type names recognized by the introspector.
var rootTypeNames = []string{"Query", "Mutation", "Subscription"}

// RootFields parses a schema fragment and returns, for every root operation
// type it declares or extends, the declared field names in declaration order.
// The result is ephemeral, recomputed per fragment.
func RootFields(sdl string) (map[string][]string, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "fragment.graphql", Input: sdl})
	if err != nil {
		return nil, err
	}
	fields := make(map[string][]string)
	collect := func(defs ast.DefinitionList) {
		for _, def := range defs {
			if def.Kind != ast.Object || !isRootType(def.Name) {
				continue
			}
			for _, f := range def.Fields {
				fields[def.Name] = append(fields[def.Name], f.Name)
			}
		}
	}
	collect(doc.Definitions)
	collect(doc.Extensions)
	return fields, nil
}

func isRootType(name string) bool {
	for _, n := range rootTypeNames {
		if n == name {
			return true
		}
	}
	return false
}
