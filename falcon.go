//go:build !cli
// +build !cli

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	graphqlApi "github.com/azhkhn/falcon/api/graphql"
	"github.com/azhkhn/falcon/config"
	"github.com/azhkhn/falcon/events"
	"github.com/azhkhn/falcon/gateway"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	cfg, err := gateway.Bootstrap(context.Background(), events.NewBus())
	if err != nil {
		log.Fatal("gateway:", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	graphqlApi.RegisterGraphQLRoutes(e, cfg)

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Falcon GQL ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println("Composable e-commerce GraphQL gateway")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
