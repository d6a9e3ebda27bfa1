package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

// ManifestFileAdapter opens manifests from disk, choosing the decoder from the
// file extension.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Open(path string) (ports.ManifestPort, bool, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false, nil
	}
	format, err := manifestFormat(path)
	if err != nil {
		return nil, false, err
	}
	switch format {
	case types.ManifestFormatScript:
		manifest, err := openScriptManifest(path)
		if err != nil {
			return nil, false, err
		}
		return manifest, true, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read manifest").
				WithCause(err)
		}
		var manifest StaticManifest
		if format == types.ManifestFormatTOML {
			manifest, err = decodeTOMLManifest(data)
		} else {
			manifest, err = decodeYAMLManifest(data)
		}
		if err != nil {
			return nil, false, err
		}
		return manifest, true, nil
	}
}

func manifestFormat(path string) (types.ManifestFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return types.ManifestFormatYAML, nil
	case ".toml":
		return types.ManifestFormatTOML, nil
	case ".go":
		return types.ManifestFormatScript, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported manifest format: " + path)
	}
}

// StaticManifest is a manifest fully decoded up front.
type StaticManifest struct {
	Classes    []types.ClassMapping
	Namespaces []types.NamespaceMapping
}

func (m StaticManifest) ClassMap() ([]types.ClassMapping, error) {
	return append([]types.ClassMapping{}, m.Classes...), nil
}

func (m StaticManifest) PrefixesPSR4() ([]types.NamespaceMapping, error) {
	return append([]types.NamespaceMapping{}, m.Namespaces...), nil
}

var _ ports.ManifestSourcePort = ManifestFileAdapter{}
var _ ports.ManifestPort = StaticManifest{}
