package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

// ManifestWriterAdapter writes an optimized manifest that ManifestFileAdapter
// can read back.
type ManifestWriterAdapter struct{}

func NewManifestWriterAdapter() ManifestWriterAdapter {
	return ManifestWriterAdapter{}
}

func (a ManifestWriterAdapter) Write(path string, baseDir string, classes []types.ClassMapping, namespaces []types.NamespaceMapping) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest output path is empty")
	}
	classNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, class := range classes {
		classNode.Content = append(classNode.Content,
			symbolNode(class.Symbol),
			pathNode(relativeTo(baseDir, class.Path)),
		)
	}
	prefixNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, namespace := range namespaces {
		dirs := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, dir := range namespace.Paths {
			dirs.Content = append(dirs.Content, pathNode(relativeTo(baseDir, dir)))
		}
		prefixNode.Content = append(prefixNode.Content, symbolNode(namespace.Prefix), dirs)
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "classmap"}, classNode,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "psr-4"}, prefixNode,
	)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create manifest directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	return nil
}

func symbolNode(symbol string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: symbol, Style: yaml.SingleQuotedStyle}
}

func pathNode(path string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: path}
}

// relativeTo rewrites path relative to baseDir when it lies inside it.
func relativeTo(baseDir string, path string) string {
	if baseDir == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

var _ ports.ManifestWriterPort = ManifestWriterAdapter{}
