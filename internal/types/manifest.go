package types

// ManifestFormat identifies how a manifest file is decoded.
type ManifestFormat string

const (
	ManifestFormatYAML   ManifestFormat = "yaml"
	ManifestFormatTOML   ManifestFormat = "toml"
	ManifestFormatScript ManifestFormat = "script"
)

// TOMLManifest is the on-disk shape of a TOML manifest. Array-of-tables keeps
// registration order, which a TOML table would lose.
type TOMLManifest struct {
	Classes    []TOMLClass     `toml:"class"`
	Namespaces []TOMLNamespace `toml:"namespace"`
}

type TOMLClass struct {
	Symbol string `toml:"symbol"`
	Path   string `toml:"path"`
}

type TOMLNamespace struct {
	Prefix string   `toml:"prefix"`
	Path   string   `toml:"path"`
	Paths  []string `toml:"paths"`
}
