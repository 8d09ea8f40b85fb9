package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName       string
	Port          string
	Env           string
	Debug         bool
	ExtensionsDir string // filesystem fallback root for extension schema files
	Playground    bool
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		dir := os.Getenv("EXTENSIONS_DIR")
		if dir == "" {
			dir = "."
		}
		AppConfig = &Config{
			AppName:       os.Getenv("APP_NAME"),
			Port:          os.Getenv("PORT"),
			Env:           os.Getenv("APP_ENV"),
			Debug:         os.Getenv("DEBUG") == "true",
			ExtensionsDir: dir,
			Playground:    os.Getenv("PLAYGROUND") != "false",
		}
	})
}
