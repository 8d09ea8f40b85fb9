package graphql

import "context"

// Context key for resolver injection (avoids circular imports).
type contextKey string

const ctxKeyRequest contextKey = "requestContext"

// RequestContext is the per-request view resolvers get: the configured
// data-source providers and the values produced by the context-modifier
// pipeline. Built once per request by ServerConfig.NewContext; read-only
// afterwards.
type RequestContext struct {
	DataSources *DataSourceMap
	Values      map[string]interface{}
}

// WithRequestContext attaches rc to ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKeyRequest, rc)
}

// RequestContextFromContext returns the request context, or nil if absent.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(ctxKeyRequest); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}
	return nil
}
