// Package extension defines the extension package contract: an initializer
// registered under a package locator, an optional packaged schema fragment,
// and the loader that resolves both for the registry.
package extension

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/azhkhn/falcon/graphql"
)

// Entry describes one extension to register: its identifier, its package
// locator and its configuration bag. Supplied at startup, immutable during
// registration.
type Entry struct {
	Name    string
	Package string
	Config  map[string]interface{}
}

// InitFunc is an extension's programmatic initializer. It receives the
// extension's configuration bag and returns its partial GraphQL config (nil
// is treated as an empty contribution).
type InitFunc func(ctx context.Context, config map[string]interface{}) (*graphql.PartialConfig, error)

// DecodeConfig decodes an extension's configuration bag into a typed struct.
// Decoding is weakly typed so loosely authored config values (numbers as
// strings and the like) convert on a best-effort basis.
func DecodeConfig(config map[string]interface{}, target interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(config)
}

// APIName returns the data-source name an extension's schema fields bind to,
// taken from the conventional "api" config key. Empty when unset.
func APIName(config map[string]interface{}) string {
	var c struct {
		API string `json:"api"`
	}
	if err := DecodeConfig(config, &c); err != nil {
		return ""
	}
	return c.API
}
