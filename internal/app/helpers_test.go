package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeProject lays out a small source tree with a manifest mapping Demo\ to
// src/Demo and one legacy class outside any namespace directory.
func writeProject(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	writeFile(t, base, "src/Demo/TestClass.go", "package main\n\ntype AppDemoTestClass struct{}\n")
	writeFile(t, base, "src/Demo/Deep/TestClass.go", "package main\n\ntype AppDemoDeepTestClass struct{}\n")
	writeFile(t, base, "src/Demo/TestClass_test.go", "package main\n")
	writeFile(t, base, "lib/Legacy.go", "package main\n\ntype AppLegacyThing struct{}\n")
	manifest := writeFile(t, base, "autoload.yaml", `autoload:
  classmap:
    'Legacy\Thing': lib/Legacy.go
  psr-4:
    'Demo\': src/Demo
`)
	return base, manifest
}
