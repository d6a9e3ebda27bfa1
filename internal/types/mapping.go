package types

// ClassMapping binds one fully-qualified symbol to the file defining it.
type ClassMapping struct {
	Symbol string
	Path   string
}

// NamespaceMapping binds a namespace prefix to its search directories, in
// priority order.
type NamespaceMapping struct {
	Prefix string
	Paths  []string
}

// Namespace builds a NamespaceMapping, so a single directory and a list of
// directories register the same way.
func Namespace(prefix string, paths ...string) NamespaceMapping {
	return NamespaceMapping{Prefix: prefix, Paths: append([]string{}, paths...)}
}

// Class builds a ClassMapping.
func Class(symbol string, path string) ClassMapping {
	return ClassMapping{Symbol: symbol, Path: path}
}
