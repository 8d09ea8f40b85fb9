package extension

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SchemaFileName is the conventional name of an extension's schema fragment.
const SchemaFileName = "schema.graphql"

// Loader resolves an extension's initializer and schema fragment from its
// package locator. Keeps the registry free of module/path mechanics.
type Loader interface {
	// LoadInitializer returns the extension's initializer, or false when the
	// package has none.
	LoadInitializer(locator string) (InitFunc, bool)
	// LoadSchemaFragment returns the extension's schema fragment, or false
	// when none can be resolved. Absence is not an error.
	LoadSchemaFragment(locator string) (string, bool, error)
}

// DefaultLoader resolves initializers from the built-in package registry and
// schema fragments first from packaged registrations, then from
// <Dir>/<locator>/schema.graphql on the filesystem.
type DefaultLoader struct {
	// Fs is the filesystem used for the fallback path. Defaults to the OS
	// filesystem; tests use an in-memory one.
	Fs afero.Fs
	// Dir is the root the fallback path is resolved against. Defaults to the
	// process working directory.
	Dir string
}

// NewLoader returns a DefaultLoader rooted at dir.
func NewLoader(dir string) *DefaultLoader {
	return &DefaultLoader{Fs: afero.NewOsFs(), Dir: dir}
}

func (l *DefaultLoader) LoadInitializer(locator string) (InitFunc, bool) {
	return lookupInitializer(locator)
}

func (l *DefaultLoader) LoadSchemaFragment(locator string) (string, bool, error) {
	if sdl, ok := lookupSchema(locator); ok {
		return sdl, true, nil
	}
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := filepath.Join(l.Dir, locator, SchemaFileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}
