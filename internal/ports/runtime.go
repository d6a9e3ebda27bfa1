package ports

import (
	"context"

	"autoloader/internal/types"
)

// FileLoaderPort is the host's load primitive.
type FileLoaderPort interface {
	// Load evaluates the file at path into the running program. It returns
	// false when no regular file exists at path. Loading a file twice is a
	// no-op that still reports true.
	Load(path string) (bool, error)
}

// Hook is a resolver installed in the host's on-demand lookup chain.
type Hook func(ctx context.Context, symbol string) (types.Result, error)

// HookID identifies an installed hook. The zero value is never issued.
type HookID int

// HookHostPort is the host's on-demand symbol lookup chain.
type HookHostPort interface {
	// RegisterHook installs hook, at the front of the chain when prepend is
	// set, and returns its handle.
	RegisterHook(hook Hook, prepend bool) HookID
	// UnregisterHook removes the hook with the given handle. It reports
	// whether a hook was removed.
	UnregisterHook(id HookID) bool
}

// RuntimePort is a host that loads units and triggers hooks for symbols it
// has not seen defined yet.
type RuntimePort interface {
	FileLoaderPort
	HookHostPort
	Require(ctx context.Context, symbol string) (types.Result, error)
	LoadedFiles() []string
}
