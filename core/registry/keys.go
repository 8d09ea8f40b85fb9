package registry

// Core keys for GlobalRegistry.
const (
	// Extension points stored in GlobalRegistry during init()
	KeyRegistryCmd        = "registry:cmd"
	KeyRegistryExtensions = "registry:extensions"
	KeyRegistrySchemas    = "registry:schemas"
)
