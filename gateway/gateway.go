// Package gateway assembles the server: it loads the extension entries,
// registers them, and builds the final server configuration.
package gateway

import (
	"context"
	"encoding/json"
	"os"

	_ "embed"

	"github.com/azhkhn/falcon/backend"
	"github.com/azhkhn/falcon/config"
	"github.com/azhkhn/falcon/core/logger"
	"github.com/azhkhn/falcon/events"
	"github.com/azhkhn/falcon/extension"
	"github.com/azhkhn/falcon/extensions/shop"
	"github.com/azhkhn/falcon/graphql"
	"github.com/azhkhn/falcon/graphql/registry"
)

// Version is the gateway version reported by the base Query.version field.
const Version = "1.0.0"

//go:embed schema.graphql
var baseSchema string

var log = logger.New("gateway")

// EntriesFile is the conventional name of the extension-entries file.
const EntriesFile = "extensions.json"

// LoadEntries reads the declared extension entries. Falls back to the
// compiled-in shop extension when no entries file exists, so a bare checkout
// serves something useful. Declaration order in the file is registration
// order.
func LoadEntries() []extension.Entry {
	path := os.Getenv("EXTENSIONS_FILE")
	if path == "" {
		path = EntriesFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Infof("no %s - using built-in extensions", path)
		return []extension.Entry{{Name: "shop", Package: shop.Package, Config: map[string]interface{}{"api": "shop"}}}
	}
	var entries []extension.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warnf("parse %s: %v - using built-in extensions", path, err)
		return []extension.Entry{{Name: "shop", Package: shop.Package, Config: map[string]interface{}{"api": "shop"}}}
	}
	return entries
}

// BaseConfig returns the base server configuration the extension configs are
// merged onto.
func BaseConfig() *graphql.Config {
	return &graphql.Config{
		Schemas: []string{baseSchema},
		Resolver: graphql.ResolverMap{
			"Query": {
				"version": func(ctx context.Context, parent interface{}, args map[string]interface{}, info *graphql.ResolveInfo) (interface{}, error) {
					return Version, nil
				},
				"backendConfig": backend.FetchBackendConfig,
			},
		},
		Playground: config.AppConfig.Playground,
	}
}

// Bootstrap registers all declared extensions and builds the final server
// configuration.
func Bootstrap(ctx context.Context, bus *events.Bus) (*graphql.ServerConfig, error) {
	loader := extension.NewLoader(config.AppConfig.ExtensionsDir)
	reg := registry.New(loader, bus)
	if err := reg.RegisterExtensions(ctx, LoadEntries()); err != nil {
		return nil, err
	}
	return graphql.BuildServerConfig(BaseConfig(), reg)
}
