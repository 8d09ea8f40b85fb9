package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	api "github.com/azhkhn/falcon/api/graphql"
	"github.com/azhkhn/falcon/config"
	"github.com/azhkhn/falcon/events"
	"github.com/azhkhn/falcon/gateway"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Compose all extensions and serve the gateway",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		cfg, err := gateway.Bootstrap(context.Background(), events.NewBus())
		if err != nil {
			fmt.Printf("Failed to compose gateway: %v\n", err)
			os.Exit(1)
		}
		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.Logger())
		e.Use(middleware.Recover())
		api.RegisterGraphQLRoutes(e, cfg)
		port := config.AppConfig.Port
		if port == "" {
			port = "8080"
		}
		e.Logger.Fatal(e.Start(":" + port))
	},
}

var schemaPrintCmd = &cobra.Command{
	Use:   "schema:print",
	Short: "Compose all extensions and print the resulting schema",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		cfg, err := gateway.Bootstrap(context.Background(), events.NewBus())
		if err != nil {
			fmt.Printf("Failed to compose schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(cfg.SchemaSDL)
	},
}

var extensionsListCmd = &cobra.Command{
	Use:   "extensions:list",
	Short: "List the declared extension entries in registration order",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		for _, e := range gateway.LoadEntries() {
			fmt.Printf("%s\t%s\n", e.Name, e.Package)
		}
	},
}
