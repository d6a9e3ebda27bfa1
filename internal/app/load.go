package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autoloader/internal/core"
	"autoloader/internal/ports"
	"autoloader/internal/types"
)

func (s Service) newLoader(ctx context.Context, req LoadRequest, files ports.FileLoaderPort) (*core.Loader, error) {
	classes, err := ParseClassPairs(req.ClassMap)
	if err != nil {
		return nil, err
	}
	namespaces, err := ParseNamespacePairs(req.Namespaces)
	if err != nil {
		return nil, err
	}

	loader := core.NewLoader(strings.TrimSpace(req.BaseDir), files)
	assert.NotEmpty(ctx, loader.BaseDir, "loader base dir must be resolved")
	for _, manifest := range req.Manifests {
		manifest = strings.TrimSpace(manifest)
		if manifest == "" {
			continue
		}
		if err := loader.LoadManifest(ctx, s.Manifests, manifest); err != nil {
			return nil, err
		}
	}
	loader.AddClassMap(classes...)
	loader.AddNamespaces(namespaces...)
	log.Ctx(ctx).Debug().
		Str("base_dir", loader.BaseDir).
		Int("classes", len(loader.ClassMap())).
		Int("namespaces", len(loader.Namespaces())).
		Msg("loader ready")
	return loader, nil
}

// ParseClassPairs turns "Symbol=path" values into class mappings.
func ParseClassPairs(values []string) ([]types.ClassMapping, error) {
	var classes []types.ClassMapping
	for _, value := range values {
		symbol, path, err := splitPair(value, "classmap")
		if err != nil {
			return nil, err
		}
		classes = append(classes, types.Class(symbol, path))
	}
	return classes, nil
}

// ParseNamespacePairs turns "Prefix=dir[,dir...]" values into namespace
// mappings. "Prefix=" registers an empty namespace.
func ParseNamespacePairs(values []string) ([]types.NamespaceMapping, error) {
	var namespaces []types.NamespaceMapping
	for _, value := range values {
		prefix, dirs, err := splitPair(value, "namespace")
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, dir := range strings.Split(dirs, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				paths = append(paths, dir)
			}
		}
		namespaces = append(namespaces, types.Namespace(prefix, paths...))
	}
	return namespaces, nil
}

func splitPair(value string, kind string) (string, string, error) {
	key, rest, ok := strings.Cut(strings.TrimSpace(value), "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid %s entry %q (expected KEY=VALUE)", kind, value))
	}
	rest = strings.TrimSpace(rest)
	if kind == "classmap" && rest == "" {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("classmap entry %q has no path", value))
	}
	return key, rest, nil
}
