// Package graphqlserver serves a composed gateway configuration over HTTP.
// It dispatches root-level fields through the configuration's resolver map;
// shaping of each field's subtree is the backing data source's job (the
// gateway forwards whole calls, it does not execute selection sets).
package graphqlserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/azhkhn/falcon/graphql"
)

// Request is the standard GraphQL request body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Response is the standard GraphQL response.
type Response struct {
	Data   map[string]interface{} `json:"data,omitempty"`
	Errors []Error                `json:"errors,omitempty"`
}

type Error struct {
	Message string `json:"message"`
}

// Handler returns an http.Handler dispatching GraphQL requests against cfg.
// The per-request context is taken from the request context when the routing
// layer already built it, and built via cfg.NewContext otherwise.
func Handler(cfg *graphql.ServerConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRequest(r)
		if err != nil {
			writeResponse(w, &Response{Errors: []Error{{Message: err.Error()}}})
			return
		}
		ctx := r.Context()
		if graphql.RequestContextFromContext(ctx) == nil {
			rc, err := cfg.NewContext(r)
			if err != nil {
				writeResponse(w, &Response{Errors: []Error{{Message: err.Error()}}})
				return
			}
			ctx = graphql.WithRequestContext(ctx, rc)
		}
		writeResponse(w, execute(ctx, cfg, req))
	})
}

func decodeRequest(r *http.Request) (*Request, error) {
	req := &Request{}
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return nil, err
			}
		}
		return req, nil
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

func execute(ctx context.Context, cfg *graphql.ServerConfig, req *Request) *Response {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: req.Query})
	if err != nil {
		return &Response{Errors: []Error{{Message: err.Error()}}}
	}
	op := pickOperation(doc, req.OperationName)
	if op == nil {
		return &Response{Errors: []Error{{Message: "operation not found"}}}
	}
	var rootType string
	switch op.Operation {
	case ast.Query:
		rootType = "Query"
	case ast.Mutation:
		rootType = "Mutation"
	default:
		return &Response{Errors: []Error{{Message: "unsupported operation"}}}
	}

	resp := &Response{Data: map[string]interface{}{}}
	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			resp.Errors = append(resp.Errors, Error{Message: "only plain field selections are supported at the root"})
			continue
		}
		key := field.Name
		if field.Alias != "" {
			key = field.Alias
		}
		resolver, ok := lookupResolver(cfg.Resolvers, rootType, field.Name)
		if !ok {
			resp.Errors = append(resp.Errors, Error{Message: "cannot query field " + field.Name + " on type " + rootType})
			continue
		}
		args, err := fieldArgs(field, req.Variables)
		if err != nil {
			resp.Errors = append(resp.Errors, Error{Message: err.Error()})
			continue
		}
		info := &graphql.ResolveInfo{ParentType: rootType, FieldName: field.Name}
		result, err := resolver(ctx, nil, args, info)
		if err != nil {
			resp.Errors = append(resp.Errors, Error{Message: err.Error()})
			resp.Data[key] = nil
			continue
		}
		resp.Data[key] = result
	}
	return resp
}

func pickOperation(doc *ast.QueryDocument, name string) *ast.OperationDefinition {
	if name == "" {
		if len(doc.Operations) == 1 {
			return doc.Operations[0]
		}
		return nil
	}
	return doc.Operations.ForName(name)
}

func lookupResolver(rm graphql.ResolverMap, typeName, fieldName string) (graphql.ResolverFunc, bool) {
	fields, ok := rm[typeName]
	if !ok {
		return nil, false
	}
	fn, ok := fields[fieldName]
	return fn, ok
}

func fieldArgs(field *ast.Field, vars map[string]interface{}) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	for _, a := range field.Arguments {
		v, err := a.Value.Value(vars)
		if err != nil {
			return nil, err
		}
		args[a.Name] = v
	}
	return args, nil
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// SDLHandler serves the composite schema text.
func SDLHandler(cfg *graphql.ServerConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(cfg.SchemaSDL))
	})
}

// IntrospectionHandler serves the composite schema's introspection JSON.
func IntrospectionHandler(cfg *graphql.ServerConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := cfg.Schema.ToJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
}
