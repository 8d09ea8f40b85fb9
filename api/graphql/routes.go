package graphql

import (
	"net/http"

	"github.com/labstack/echo/v4"

	graphqlpkg "github.com/azhkhn/falcon/graphql"
	"github.com/azhkhn/falcon/graphqlserver"
)

// RegisterGraphQLRoutes registers the gateway endpoints on e. Every request
// first runs the composed context-modifier pipeline, so resolvers and the
// backend-config aggregation see the assembled request context.
func RegisterGraphQLRoutes(e *echo.Echo, cfg *graphqlpkg.ServerConfig) {
	h := contextMiddleware(cfg, graphqlserver.Handler(cfg))
	e.POST("/graphql", echo.WrapHandler(h))
	e.GET("/graphql", echo.WrapHandler(h))
	e.GET("/graphql/schema", echo.WrapHandler(graphqlserver.SDLHandler(cfg)))
	e.GET("/graphql/introspection", echo.WrapHandler(graphqlserver.IntrospectionHandler(cfg)))
	if cfg.Playground {
		e.GET("/playground", echo.WrapHandler(playgroundHandler()))
	}
}

func contextMiddleware(cfg *graphqlpkg.ServerConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, err := cfg.NewContext(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		ctx := graphqlpkg.WithRequestContext(r.Context(), rc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
