package adapters

import (
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"autoloader/internal/ports"
)

type ClassScannerAdapter struct{}

func NewClassScannerAdapter() ClassScannerAdapter {
	return ClassScannerAdapter{}
}

func (a ClassScannerAdapter) Scan(dir string, ext string) ([]string, error) {
	if dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("scan directory is empty")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan " + dir).
			WithCause(err)
	}
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if shouldSkipScanPath(match) {
			continue
		}
		files = append(files, match)
	}
	sort.Strings(files)
	return files, nil
}

func shouldSkipScanPath(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

var _ ports.ClassScannerPort = ClassScannerAdapter{}
