package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"autoloader/internal/types"
)

// decodeYAMLManifest reads classmap and psr-4 from a YAML or JSON document,
// optionally nested under an autoload key. It walks yaml.Node trees because
// decoding into Go maps would lose the registration order.
func decodeYAMLManifest(data []byte) (StaticManifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return StaticManifest{}, invalidManifest("failed to parse manifest", err)
	}
	if len(doc.Content) == 0 {
		return StaticManifest{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return StaticManifest{}, invalidManifest("manifest must be a mapping", nil)
	}
	if autoload := mappingValue(root, "autoload"); autoload != nil {
		if autoload.Kind != yaml.MappingNode {
			return StaticManifest{}, invalidManifest("autoload must be a mapping", nil)
		}
		root = autoload
	}

	var manifest StaticManifest
	if node := mappingValue(root, "classmap"); node != nil && !isNull(node) {
		if node.Kind != yaml.MappingNode {
			return StaticManifest{}, invalidManifest("classmap must map symbols to files", nil)
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return StaticManifest{}, invalidManifest(fmt.Sprintf("classmap entry %s must be a path", key.Value), nil)
			}
			manifest.Classes = append(manifest.Classes, types.Class(key.Value, value.Value))
		}
	}
	if node := mappingValue(root, "psr-4"); node != nil && !isNull(node) {
		if node.Kind != yaml.MappingNode {
			return StaticManifest{}, invalidManifest("psr-4 must map prefixes to directories", nil)
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			paths, err := scalarOrList(value)
			if err != nil {
				return StaticManifest{}, invalidManifest(fmt.Sprintf("psr-4 entry %s", key.Value), err)
			}
			manifest.Namespaces = append(manifest.Namespaces, types.Namespace(key.Value, paths...))
		}
	}
	return manifest, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func scalarOrList(node *yaml.Node) ([]string, error) {
	switch {
	case isNull(node):
		return nil, nil
	case node.Kind == yaml.ScalarNode:
		return []string{node.Value}, nil
	case node.Kind == yaml.SequenceNode:
		paths := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("directory list must hold paths")
			}
			paths = append(paths, item.Value)
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("expected a path or a list of paths")
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func invalidManifest(msg string, cause error) error {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}
