//go:build cli
// +build cli

package main

import (
	_ "github.com/azhkhn/falcon/extensions/shop"

	"github.com/azhkhn/falcon/cmd"
	"github.com/azhkhn/falcon/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
