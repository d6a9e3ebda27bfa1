package adapters

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

type runtimeHook struct {
	id   ports.HookID
	hook ports.Hook
}

// SourceRuntime is the host program: Go source units are evaluated into one
// shared yaegi interpreter, each file at most once. Symbols are looked up
// through the installed hook chain the first time they are required.
//
// A SourceRuntime is not safe for concurrent use.
type SourceRuntime struct {
	interp  *interp.Interpreter
	hooks   []runtimeHook
	nextID  ports.HookID
	loaded  []string
	seen    map[string]struct{}
	defined map[string]types.Result
}

func NewSourceRuntime() *SourceRuntime {
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	return &SourceRuntime{
		interp:  i,
		seen:    map[string]struct{}{},
		defined: map[string]types.Result{},
	}
}

// Load evaluates the file at path unless it was loaded before.
func (r *SourceRuntime) Load(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}
	key := filepath.Clean(path)
	if _, ok := r.seen[key]; ok {
		return true, nil
	}
	if _, err := r.interp.EvalPath(key); err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to load source unit " + key).
			WithCause(err)
	}
	r.seen[key] = struct{}{}
	r.loaded = append(r.loaded, key)
	return true, nil
}

func (r *SourceRuntime) RegisterHook(hook ports.Hook, prepend bool) ports.HookID {
	r.nextID++
	entry := runtimeHook{id: r.nextID, hook: hook}
	if prepend {
		r.hooks = append([]runtimeHook{entry}, r.hooks...)
	} else {
		r.hooks = append(r.hooks, entry)
	}
	return entry.id
}

func (r *SourceRuntime) UnregisterHook(id ports.HookID) bool {
	before := len(r.hooks)
	r.hooks = slices.DeleteFunc(r.hooks, func(entry runtimeHook) bool {
		return entry.id == id
	})
	return len(r.hooks) != before
}

// Require returns how symbol was defined, asking the hook chain the first
// time. Misses are not remembered, so a later hook may still define the
// symbol.
func (r *SourceRuntime) Require(ctx context.Context, symbol string) (types.Result, error) {
	if result, ok := r.defined[symbol]; ok {
		return result, nil
	}
	for _, entry := range slices.Clone(r.hooks) {
		result, err := entry.hook(ctx, symbol)
		if err != nil {
			return types.Result{}, err
		}
		if result.Found() {
			r.defined[symbol] = result
			return result, nil
		}
	}
	log.Ctx(ctx).Debug().Str("symbol", symbol).Int("hooks", len(r.hooks)).Msg("unknown symbol")
	return types.Result{}, nil
}

// Defined reports whether symbol was resolved by an earlier Require.
func (r *SourceRuntime) Defined(symbol string) bool {
	_, ok := r.defined[symbol]
	return ok
}

// LoadedFiles lists evaluated units in load order.
func (r *SourceRuntime) LoadedFiles() []string {
	return append([]string{}, r.loaded...)
}

// Eval evaluates src against everything loaded so far.
func (r *SourceRuntime) Eval(src string) (reflect.Value, error) {
	return r.interp.Eval(src)
}

var _ ports.RuntimePort = (*SourceRuntime)(nil)
