package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoloader/internal/app"
	"autoloader/tests/testutil"
)

// TestGoldenDump dumps an optimized manifest for the sample tree and compares
// it against a committed golden file. If the golden file does not exist yet
// (first run), it is written so it can be committed.
//
// To update the golden file after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenDump(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	output := filepath.Join(t.TempDir(), "autoload.yaml")
	service := app.NewService()
	_, err := service.Dump(t.Context(), app.DumpRequest{
		LoadRequest: app.LoadRequest{
			BaseDir:   root,
			Manifests: []string{filepath.Join(root, "testdata", "manifests", "autoload.yaml")},
		},
		Output: output,
	})
	require.NoError(t, err)

	actual, err := os.ReadFile(output)
	require.NoError(t, err)

	goldenPath := filepath.Join(goldenDir, "autoload.yaml")
	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		// Golden file doesn't exist yet -- write it.
		require.NoError(t, os.MkdirAll(goldenDir, 0o755))
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual),
		"autoload.yaml differs from golden file; delete %s to regenerate", goldenPath)
}

// TestDumpedManifestResolves feeds a dumped manifest back into a fresh
// service and checks every symbol resolves from the class map alone.
func TestDumpedManifestResolves(t *testing.T) {
	root := testutil.RepoRoot(t)
	output := filepath.Join(t.TempDir(), "autoload.yaml")
	service := app.NewService()

	dumped, err := service.Dump(t.Context(), app.DumpRequest{
		LoadRequest: app.LoadRequest{
			BaseDir:   root,
			Manifests: []string{filepath.Join(root, "testdata", "manifests", "autoload.toml")},
		},
		Output: output,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dumped.Classes)

	result, err := service.Resolve(t.Context(), app.ResolveRequest{
		LoadRequest: app.LoadRequest{BaseDir: root, Manifests: []string{output}},
		Symbols:     []string{"TestClass", `Demo\TestClass`, `Demo\Deep\TestClass`},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Missing)
	for _, entry := range result.Entries {
		assert.Equal(t, "classmap", entryKind(entry), "symbol %s", entry.Symbol)
	}
}
