package extension

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/azhkhn/falcon/graphql"
)

func TestLoader_PackagedSchemaTakesPrecedence(t *testing.T) {
	defer Unregister("pkg-a")
	RegisterSchema("pkg-a", "packaged")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ext/pkg-a/schema.graphql", []byte("from-fs"), 0644))

	l := &DefaultLoader{Fs: fs, Dir: "ext"}
	sdl, ok, err := l.LoadSchemaFragment("pkg-a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "packaged", sdl)
}

func TestLoader_FilesystemFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ext/pkg-b/schema.graphql", []byte("from-fs"), 0644))

	l := &DefaultLoader{Fs: fs, Dir: "ext"}
	sdl, ok, err := l.LoadSchemaFragment("pkg-b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "from-fs", sdl)
}

func TestLoader_AbsenceIsNotAnError(t *testing.T) {
	l := &DefaultLoader{Fs: afero.NewMemMapFs(), Dir: "ext"}
	_, ok, err := l.LoadSchemaFragment("missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoader_Initializer(t *testing.T) {
	defer Unregister("pkg-c")
	Register("pkg-c", func(context.Context, map[string]interface{}) (*graphql.PartialConfig, error) {
		return &graphql.PartialConfig{Schemas: []string{"s"}}, nil
	})

	l := NewLoader(".")
	init, ok := l.LoadInitializer("pkg-c")
	require.True(t, ok)
	cfg, err := init(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"s"}, cfg.Schemas)

	_, ok = l.LoadInitializer("unknown")
	require.False(t, ok)
}

func TestDecodeConfig_WeaklyTyped(t *testing.T) {
	var c struct {
		API   string `json:"api"`
		Limit int    `json:"limit"`
	}
	err := DecodeConfig(map[string]interface{}{"api": "shop", "limit": "25"}, &c)
	require.NoError(t, err)
	require.Equal(t, "shop", c.API)
	require.Equal(t, 25, c.Limit)
}

func TestAPIName(t *testing.T) {
	require.Equal(t, "shop", APIName(map[string]interface{}{"api": "shop"}))
	require.Equal(t, "", APIName(nil))
}
