package core

import (
	"context"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

// ClassMapBuilder turns a loader's namespace table into explicit class map
// entries, so every reachable symbol resolves without a directory search.
type ClassMapBuilder struct {
	Scanner ports.ClassScannerPort
	Policy  ports.ScanPolicyPort
}

func NewClassMapBuilder(scanner ports.ClassScannerPort, policy ports.ScanPolicyPort) ClassMapBuilder {
	return ClassMapBuilder{
		Scanner: scanner,
		Policy:  policy,
	}
}

// Build returns the loader's class map followed by one entry per source file
// found under the namespace directories. Entries already produced, explicit
// ones included, are never overridden, which mirrors resolution precedence.
func (b ClassMapBuilder) Build(ctx context.Context, loader *Loader) ([]types.ClassMapping, error) {
	if b.Scanner == nil || loader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class map builder requires a scanner and a loader")
	}
	logger := log.Ctx(ctx)

	out := loader.ClassMap()
	seen := map[string]struct{}{}
	for _, entry := range out {
		seen[entry.Symbol] = struct{}{}
	}

	for _, namespace := range loader.Namespaces() {
		for _, dir := range namespace.Paths {
			files, err := b.Scanner.Scan(dir, SourceExtension)
			if err != nil {
				return nil, err
			}
			for _, rel := range files {
				if b.Policy != nil && b.Policy.Excluded(rel) {
					logger.Debug().Str("file", rel).Msg("excluded from class map")
					continue
				}
				local, ok := relPathToSymbol(rel)
				if !ok {
					logger.Debug().Str("file", rel).Msg("not a symbol path, skipped")
					continue
				}
				symbol := namespace.Prefix + local
				if _, dup := seen[symbol]; dup {
					continue
				}
				seen[symbol] = struct{}{}
				out = append(out, types.ClassMapping{
					Symbol: symbol,
					Path:   filepath.Join(dir, filepath.FromSlash(rel)),
				})
			}
		}
	}
	logger.Debug().Int("classes", len(out)).Msg("class map built")
	return out, nil
}

func relPathToSymbol(rel string) (string, bool) {
	trimmed := strings.TrimSuffix(rel, SourceExtension)
	if trimmed == rel || trimmed == "" {
		return "", false
	}
	segments := strings.Split(trimmed, "/")
	for _, segment := range segments {
		if !token.IsIdentifier(segment) {
			return "", false
		}
	}
	return strings.Join(segments, NamespaceSeparator), true
}
