package app

import "autoloader/internal/types"

// LoadRequest describes how to populate a loader. Manifests are loaded first,
// in order; ClassMap ("Symbol=path") and Namespaces ("Prefix=dir[,dir...]")
// are applied after them.
type LoadRequest struct {
	BaseDir    string
	Manifests  []string
	ClassMap   []string
	Namespaces []string
}

type ResolveRequest struct {
	LoadRequest
	Symbols []string
}

type ResolveEntry struct {
	Symbol string
	Kind   types.ResultKind
	Path   string
}

type ResolveResult struct {
	Entries     []ResolveEntry
	Missing     []string
	LoadedFiles []string
}

type InspectRequest struct {
	LoadRequest
	Prefix string
}

type InspectResult struct {
	BaseDir     string
	Namespaces  []types.NamespaceMapping
	ClassMap    []types.ClassMapping
	Prefix      string
	PrefixPaths []string
}

type DumpRequest struct {
	LoadRequest
	Output   string
	Excludes []string
}

type DumpResult struct {
	Output     string
	Classes    int
	Namespaces int
}
