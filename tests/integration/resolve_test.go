package integration

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoloader/internal/app"
	"autoloader/internal/types"
	"autoloader/tests/testutil"
)

func entryKind(entry app.ResolveEntry) string {
	if entry.Kind == types.ResultResolved {
		return "classmap"
	}
	return "namespace"
}

func TestResolveFixtureManifests(t *testing.T) {
	root := testutil.RepoRoot(t)
	service := app.NewService()
	classes := filepath.Join(root, "testdata", "classes")

	for _, name := range []string{"autoload.yaml", "composer.json", "autoload.toml", "autoload.go"} {
		t.Run(name, func(t *testing.T) {
			result, err := service.Resolve(t.Context(), app.ResolveRequest{
				LoadRequest: app.LoadRequest{
					BaseDir:   root,
					Manifests: []string{filepath.Join(root, "testdata", "manifests", name)},
				},
				Symbols: []string{"TestClass", `Demo\TestClass`, `Demo\Deep\TestClass`, `Demo\Nope`},
			})
			require.NoError(t, err)

			want := []app.ResolveEntry{
				{Symbol: "TestClass", Kind: types.ResultResolved, Path: filepath.Join(classes, "TestClass.go")},
				{Symbol: `Demo\TestClass`, Kind: types.ResultResolvedPath, Path: filepath.Join(classes, "Demo", "TestClass.go")},
				{Symbol: `Demo\Deep\TestClass`, Kind: types.ResultResolvedPath, Path: filepath.Join(classes, "Demo", "Deep", "TestClass.go")},
			}
			if diff := cmp.Diff(want, result.Entries); diff != "" {
				t.Fatalf("unexpected entries (-want +got):\n%s", diff)
			}
			assert.Equal(t, []string{`Demo\Nope`}, result.Missing)
		})
	}
}

func TestInspectFixtureManifest(t *testing.T) {
	root := testutil.RepoRoot(t)
	result, err := app.NewService().Inspect(t.Context(), app.InspectRequest{
		LoadRequest: app.LoadRequest{
			BaseDir:   root,
			Manifests: []string{filepath.Join(root, "testdata", "manifests", "autoload.yaml")},
		},
		Prefix: "Demo",
	})
	require.NoError(t, err)
	assert.Equal(t, []types.NamespaceMapping{
		types.Namespace(`Demo\`, filepath.Join(root, "testdata", "classes", "Demo")),
	}, result.Namespaces)
	assert.Equal(t, []string{filepath.Join(root, "testdata", "classes", "Demo")}, result.PrefixPaths)
}
