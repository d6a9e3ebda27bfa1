package ports

import "autoloader/internal/types"

// ManifestPort is an opened external manifest. Only its two accessors are
// consulted.
type ManifestPort interface {
	ClassMap() ([]types.ClassMapping, error)
	PrefixesPSR4() ([]types.NamespaceMapping, error)
}

// ManifestSourcePort opens manifest files. A missing file reports ok == false
// without an error.
type ManifestSourcePort interface {
	Open(path string) (manifest ManifestPort, ok bool, err error)
}

type ManifestWriterPort interface {
	Write(path string, baseDir string, classes []types.ClassMapping, namespaces []types.NamespaceMapping) error
}
