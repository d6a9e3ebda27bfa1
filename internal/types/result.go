package types

type ResultKind int

const (
	ResultNotFound ResultKind = iota
	ResultResolved
	ResultResolvedPath
)

func (k ResultKind) String() string {
	switch k {
	case ResultResolved:
		return "resolved"
	case ResultResolvedPath:
		return "resolved-path"
	default:
		return "not-found"
	}
}

// Result is the outcome of one resolution attempt. The zero value means the
// symbol was not found.
type Result struct {
	Kind ResultKind
	Path string
}

func (r Result) Found() bool {
	return r.Kind != ResultNotFound
}

func Resolved() Result {
	return Result{Kind: ResultResolved}
}

func ResolvedAt(path string) Result {
	return Result{Kind: ResultResolvedPath, Path: path}
}
