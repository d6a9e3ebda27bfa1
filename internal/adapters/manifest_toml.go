package adapters

import (
	"github.com/pelletier/go-toml/v2"

	"autoloader/internal/types"
)

func decodeTOMLManifest(data []byte) (StaticManifest, error) {
	var doc types.TOMLManifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		return StaticManifest{}, invalidManifest("failed to parse manifest toml", err)
	}
	var manifest StaticManifest
	for _, class := range doc.Classes {
		manifest.Classes = append(manifest.Classes, types.Class(class.Symbol, class.Path))
	}
	for _, namespace := range doc.Namespaces {
		var paths []string
		if namespace.Path != "" {
			paths = append(paths, namespace.Path)
		}
		paths = append(paths, namespace.Paths...)
		manifest.Namespaces = append(manifest.Namespaces, types.Namespace(namespace.Prefix, paths...))
	}
	return manifest, nil
}
