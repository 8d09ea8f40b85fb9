package backend

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/azhkhn/falcon/core/logger"
	"github.com/azhkhn/falcon/graphql"
)

var log = logger.New("backend")

// RemoteConfig is the public configuration a backend capability provider
// exposes (supported locales, etc.). Request-scoped and ephemeral.
type RemoteConfig struct {
	Locales []string `json:"locales"`
}

// ConfigProvider is the optional capability of a data source to report its
// backend configuration. Providers backed by remote APIs may perform a
// network call here.
type ConfigProvider interface {
	FetchBackendConfig(ctx context.Context, parent interface{}, args map[string]interface{}, info *graphql.ResolveInfo) (*RemoteConfig, error)
}

// DecodeRemoteConfig decodes a loosely typed backend-config payload (as
// fetched from a remote API) into a RemoteConfig.
func DecodeRemoteConfig(payload map[string]interface{}) (*RemoteConfig, error) {
	var cfg RemoteConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(payload); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FetchBackendConfig is the request-scoped resolver that queries every
// configured provider for its backend config and reduces the results into one
// merged view. Providers are queried strictly in sequence, in data-source
// insertion order: a provider's fetch may trigger first-use initialization,
// and concurrent first-touch initialization across providers is disallowed.
//
// All configured data sources must support the capability; as soon as one
// does not, the whole aggregation yields nil (never a partial merge).
func FetchBackendConfig(ctx context.Context, parent interface{}, args map[string]interface{}, info *graphql.ResolveInfo) (interface{}, error) {
	rc := graphql.RequestContextFromContext(ctx)
	if rc == nil || rc.DataSources.Len() == 0 {
		return nil, nil
	}

	var configs []*RemoteConfig
	var fetchErr error
	supported := true
	rc.DataSources.Range(func(name string, ds graphql.DataSource) bool {
		provider, ok := asConfigProvider(ds)
		if !ok {
			log.Debugf("data source %q does not support backend config - skipping aggregation", name)
			supported = false
			return false
		}
		cfg, err := provider.FetchBackendConfig(ctx, parent, args, info)
		if err != nil {
			fetchErr = err
			return false
		}
		if cfg != nil {
			configs = append(configs, cfg)
		}
		return true
	})
	if fetchErr != nil {
		return nil, fetchErr
	}
	if !supported || len(configs) == 0 {
		return nil, nil
	}

	merged := &RemoteConfig{}
	for i, cfg := range configs {
		if i == 0 {
			merged.Locales = cfg.Locales
			continue
		}
		merged.Locales = mergeLocales(merged.Locales, cfg.Locales)
	}
	return merged, nil
}

func asConfigProvider(ds graphql.DataSource) (ConfigProvider, bool) {
	if p, ok := ds.(ConfigProvider); ok {
		return p, true
	}
	if u, ok := ds.(interface{ Unwrap() interface{} }); ok {
		p, ok := u.Unwrap().(ConfigProvider)
		return p, ok
	}
	return nil, false
}

// mergeLocales intersects two locale lists. A nil side means the provider
// reported no list at all and the present side wins; an empty non-nil list is
// a real intersection result and stays empty through further folds.
func mergeLocales(a, b []string) []string {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	set := make(map[string]bool, len(b))
	for _, l := range b {
		set[l] = true
	}
	out := []string{}
	for _, l := range a {
		if set[l] {
			out = append(out, l)
		}
	}
	return out
}
