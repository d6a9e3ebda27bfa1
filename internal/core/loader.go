package core

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

const (
	// NamespaceSeparator separates the segments of a symbol.
	NamespaceSeparator = `\`
	// SourceExtension is appended to every path derived from a namespace.
	SourceExtension = ".go"
)

type namespaceEntry struct {
	prefix string
	paths  []string
	seq    int
}

// Loader maps symbols to source units through an explicit class map and a
// namespace table, and loads them through the host's load primitive.
//
// A Loader is not safe for concurrent use.
type Loader struct {
	BaseDir string
	Files   ports.FileLoaderPort

	classes    []types.ClassMapping
	classIndex map[string]int
	namespaces []*namespaceEntry
	prefixes   prefixIndex
	nextSeq    int

	host   ports.HookHostPort
	hookID ports.HookID
}

// NewLoader returns an empty, unregistered Loader. Relative paths are resolved
// against baseDir, or against the working directory when baseDir is empty.
func NewLoader(baseDir string, files ports.FileLoaderPort) *Loader {
	loader := &Loader{
		BaseDir: absBaseDir(baseDir),
		Files:   files,
	}
	loader.Clear()
	return loader
}

func (l *Loader) AddClassMap(entries ...types.ClassMapping) *Loader {
	for _, entry := range entries {
		symbol := normalizeClass(entry.Symbol)
		path := l.resolvePath(entry.Path)
		if idx, ok := l.classIndex[symbol]; ok {
			l.classes[idx].Path = path
			continue
		}
		l.classIndex[symbol] = len(l.classes)
		l.classes = append(l.classes, types.ClassMapping{Symbol: symbol, Path: path})
	}
	return l
}

func (l *Loader) AddNamespaces(entries ...types.NamespaceMapping) *Loader {
	for _, mapping := range entries {
		prefix := normalizeNamespace(mapping.Prefix)
		entry, ok := l.prefixes.get(prefix)
		if !ok {
			l.nextSeq++
			entry = &namespaceEntry{prefix: prefix, paths: []string{}, seq: l.nextSeq}
			l.namespaces = append(l.namespaces, entry)
			l.prefixes.put(entry)
		}
		for _, path := range mapping.Paths {
			path = l.resolvePath(path)
			if slices.Contains(entry.paths, path) {
				continue
			}
			entry.paths = append(entry.paths, path)
		}
	}
	return l
}

// Clear empties both tables. Hook registration is left untouched.
func (l *Loader) Clear() {
	l.classes = nil
	l.classIndex = map[string]int{}
	l.namespaces = nil
	l.prefixes = newPrefixIndex()
}

func (l *Loader) ClassMap() []types.ClassMapping {
	return append([]types.ClassMapping{}, l.classes...)
}

// Namespace returns the directories registered for prefix.
func (l *Loader) Namespace(prefix string) []string {
	entry, ok := l.prefixes.get(normalizeNamespace(prefix))
	if !ok {
		return []string{}
	}
	return append([]string{}, entry.paths...)
}

// NamespacePaths returns the directories registered for prefix followed by the
// directories implied by class map entries living under prefix.
func (l *Loader) NamespacePaths(prefix string) []string {
	prefix = normalizeNamespace(prefix)
	paths := l.Namespace(prefix)
	for _, class := range l.classes {
		if !strings.HasPrefix(class.Symbol, prefix) {
			continue
		}
		suffix := class.Symbol[len(prefix)-1:]
		testPath := symbolToPath(suffix) + SourceExtension
		if !strings.HasSuffix(class.Path, testPath) {
			continue
		}
		dir := class.Path[:len(class.Path)-len(testPath)]
		if dir == "" {
			dir = string(filepath.Separator)
		}
		if slices.Contains(paths, dir) {
			continue
		}
		paths = append(paths, dir)
	}
	return paths
}

func (l *Loader) Namespaces() []types.NamespaceMapping {
	out := make([]types.NamespaceMapping, 0, len(l.namespaces))
	for _, entry := range l.namespaces {
		out = append(out, types.NamespaceMapping{
			Prefix: entry.prefix,
			Paths:  append([]string{}, entry.paths...),
		})
	}
	return out
}

// HasNamespace reports whether prefix was registered, even with no
// directories.
func (l *Loader) HasNamespace(prefix string) bool {
	_, ok := l.prefixes.get(normalizeNamespace(prefix))
	return ok
}

// LoadManifest feeds the class map and PSR-4 prefixes of the manifest at path
// into the loader. A missing manifest is not an error.
func (l *Loader) LoadManifest(ctx context.Context, source ports.ManifestSourcePort, path string) error {
	manifest, ok, err := source.Open(path)
	if err != nil {
		return err
	}
	if !ok {
		log.Ctx(ctx).Debug().Str("manifest", path).Msg("manifest not found, skipped")
		return nil
	}
	classes, err := manifest.ClassMap()
	if err != nil {
		return err
	}
	namespaces, err := manifest.PrefixesPSR4()
	if err != nil {
		return err
	}
	l.AddClassMap(classes...)
	l.AddNamespaces(namespaces...)
	log.Ctx(ctx).Debug().
		Str("manifest", path).
		Int("classes", len(classes)).
		Int("namespaces", len(namespaces)).
		Msg("manifest loaded")
	return nil
}

// Register installs Resolve at the front of the host's lookup chain.
func (l *Loader) Register(host ports.HookHostPort) *Loader {
	if l.hookID != 0 || host == nil {
		return l
	}
	l.host = host
	l.hookID = host.RegisterHook(l.Resolve, true)
	return l
}

func (l *Loader) Unregister() *Loader {
	if l.hookID == 0 {
		return l
	}
	l.host.UnregisterHook(l.hookID)
	l.host = nil
	l.hookID = 0
	return l
}

func (l *Loader) Registered() bool {
	return l.hookID != 0
}

func (l *Loader) RemoveClass(symbol string) bool {
	symbol = normalizeClass(symbol)
	idx, ok := l.classIndex[symbol]
	if !ok {
		return false
	}
	l.classes = slices.Delete(l.classes, idx, idx+1)
	delete(l.classIndex, symbol)
	for i := idx; i < len(l.classes); i++ {
		l.classIndex[l.classes[i].Symbol] = i
	}
	return true
}

func (l *Loader) RemoveNamespace(prefix string) bool {
	prefix = normalizeNamespace(prefix)
	entry, ok := l.prefixes.get(prefix)
	if !ok {
		return false
	}
	l.prefixes.delete(prefix)
	l.namespaces = slices.DeleteFunc(l.namespaces, func(candidate *namespaceEntry) bool {
		return candidate == entry
	})
	return true
}

// Resolve loads the unit defining symbol. The class map is consulted first,
// then every registered prefix of symbol in registration order, each with its
// directories in registration order. A symbol nobody defines yields the zero
// Result and no error.
func (l *Loader) Resolve(ctx context.Context, symbol string) (types.Result, error) {
	if l.Files == nil {
		return types.Result{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("loader requires a file loader")
	}
	logger := log.Ctx(ctx)

	if idx, ok := l.classIndex[symbol]; ok {
		path := l.classes[idx].Path
		loaded, err := l.Files.Load(path)
		if err != nil {
			return types.Result{}, err
		}
		if loaded {
			logger.Debug().Str("symbol", symbol).Str("path", path).Msg("resolved from class map")
			return types.Resolved(), nil
		}
		logger.Debug().Str("symbol", symbol).Str("path", path).Msg("stale class map entry")
	}

	for _, entry := range l.prefixes.matching(symbol) {
		fileName := symbolToPath(symbol[len(entry.prefix):]) + SourceExtension
		for _, dir := range append([]string{}, entry.paths...) {
			filePath := filepath.Join(dir, fileName)
			loaded, err := l.Files.Load(filePath)
			if err != nil {
				return types.Result{}, err
			}
			if loaded {
				logger.Debug().Str("symbol", symbol).Str("path", filePath).Msg("resolved from namespace")
				return types.ResolvedAt(filePath), nil
			}
		}
	}

	logger.Debug().Str("symbol", symbol).Msg("symbol not found")
	return types.Result{}, nil
}

func (l *Loader) resolvePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.BaseDir, path)
	}
	return filepath.Clean(path)
}

func absBaseDir(baseDir string) string {
	if strings.TrimSpace(baseDir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return string(filepath.Separator)
		}
		return wd
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return filepath.Clean(baseDir)
	}
	return abs
}

func normalizeClass(symbol string) string {
	return strings.TrimLeft(symbol, NamespaceSeparator)
}

func normalizeNamespace(prefix string) string {
	return strings.Trim(prefix, NamespaceSeparator) + NamespaceSeparator
}

func symbolToPath(symbol string) string {
	return strings.ReplaceAll(symbol, NamespaceSeparator, string(filepath.Separator))
}
