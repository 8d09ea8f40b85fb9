// Package shop is a compiled-in sample extension: a small product catalog
// exposed through the gateway's auto-binding. It ships only a schema contract
// plus a conventionally named backend provider; all Query fields forward to
// the same-named ShopAPI methods.
package shop

import (
	"context"
	"fmt"

	_ "embed"

	"github.com/azhkhn/falcon/backend"
	"github.com/azhkhn/falcon/extension"
	"github.com/azhkhn/falcon/graphql"
)

//go:embed schema.graphql
var schemaSDL string

// Package is the extension's package locator.
const Package = "falcon-shop"

func init() {
	extension.Register(Package, initialize)
	extension.RegisterSchema(Package, schemaSDL)
}

type shopConfig struct {
	API     string   `json:"api"`
	Locales []string `json:"locales"`
}

func initialize(_ context.Context, config map[string]interface{}) (*graphql.PartialConfig, error) {
	var c shopConfig
	if err := extension.DecodeConfig(config, &c); err != nil {
		return nil, err
	}
	if c.API == "" {
		c.API = "shop"
	}
	if len(c.Locales) == 0 {
		c.Locales = []string{"en"}
	}
	return &graphql.PartialConfig{
		Context: graphql.ContextValues{"shopApi": c.API},
		DataSources: map[string]graphql.DataSource{
			c.API: backend.Methods(NewShopAPI(c.Locales)),
		},
	}, nil
}

// Product is a catalog entry.
type Product struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ShopAPI is the extension's backend provider.
type ShopAPI struct {
	locales  []string
	products []Product
}

func NewShopAPI(locales []string) *ShopAPI {
	return &ShopAPI{
		locales: locales,
		products: []Product{
			{SKU: "WS12", Name: "Radiant Tee", Price: 22},
			{SKU: "WJ04", Name: "Ingrid Running Jacket", Price: 84},
			{SKU: "MS10", Name: "Logan Heat Tec Tee", Price: 24},
		},
	}
}

func (a *ShopAPI) ShopProducts(_ context.Context, _ interface{}, args map[string]interface{}, _ *graphql.ResolveInfo) (interface{}, error) {
	limit := len(a.products)
	if v, ok := args["limit"]; ok {
		if n, ok := toInt(v); ok {
			if n < 0 {
				n = 0
			}
			if n < limit {
				limit = n
			}
		}
	}
	return a.products[:limit], nil
}

func (a *ShopAPI) ShopProduct(_ context.Context, _ interface{}, args map[string]interface{}, _ *graphql.ResolveInfo) (interface{}, error) {
	sku, _ := args["sku"].(string)
	for _, p := range a.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product %q not found", sku)
}

// FetchBackendConfig reports the shop's public backend configuration.
func (a *ShopAPI) FetchBackendConfig(context.Context, interface{}, map[string]interface{}, *graphql.ResolveInfo) (*backend.RemoteConfig, error) {
	return &backend.RemoteConfig{Locales: a.locales}, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
