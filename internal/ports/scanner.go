package ports

// ClassScannerPort lists source files below a directory.
type ClassScannerPort interface {
	// Scan returns slash-separated paths relative to dir, sorted, for every
	// file carrying ext. A missing dir yields no files.
	Scan(dir string, ext string) ([]string, error)
}

// ScanPolicyPort decides which scanned files are left out of a generated
// class map.
type ScanPolicyPort interface {
	Excluded(relPath string) bool
}
