package adapters

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

const (
	classMapAccessor = "ClassMap"
	prefixesAccessor = "PrefixesPsr4"
)

// ScriptManifest is a Go source manifest evaluated by its own interpreter.
// It must define:
//
//	func ClassMap() map[string]string
//	func PrefixesPsr4() map[string][]string // or map[string]string
//
// Go maps carry no order, so entries come back sorted by key.
type ScriptManifest struct {
	path   string
	interp *interp.Interpreter
}

func openScriptManifest(path string) (ScriptManifest, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return ScriptManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return ScriptManifest{}, invalidManifest(fmt.Sprintf("manifest %s is empty", path), nil)
	}
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	if _, err := i.EvalPath(path); err != nil {
		return ScriptManifest{}, invalidManifest(fmt.Sprintf("failed to evaluate manifest %s", path), err)
	}
	return ScriptManifest{path: path, interp: i}, nil
}

func (m ScriptManifest) ClassMap() ([]types.ClassMapping, error) {
	entries, err := m.call(classMapAccessor)
	if err != nil {
		return nil, err
	}
	var classes []types.ClassMapping
	for _, key := range sortedKeys(entries) {
		paths := entries[key]
		if len(paths) != 1 {
			return nil, m.accessorError(classMapAccessor, fmt.Errorf("entry %s must map to one path", key))
		}
		classes = append(classes, types.Class(key, paths[0]))
	}
	return classes, nil
}

func (m ScriptManifest) PrefixesPSR4() ([]types.NamespaceMapping, error) {
	entries, err := m.call(prefixesAccessor)
	if err != nil {
		return nil, err
	}
	var namespaces []types.NamespaceMapping
	for _, key := range sortedKeys(entries) {
		namespaces = append(namespaces, types.Namespace(key, entries[key]...))
	}
	return namespaces, nil
}

func (m ScriptManifest) call(name string) (map[string][]string, error) {
	fn, err := m.interp.Eval(name)
	if err != nil {
		return nil, m.accessorError(name, err)
	}
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, m.accessorError(name, fmt.Errorf("%s is not a function", name))
	}
	if fn.Type().NumIn() != 0 {
		return nil, m.accessorError(name, fmt.Errorf("%s must take no arguments", name))
	}
	results := fn.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, m.accessorError(name, fmt.Errorf("%s must return a map[, error]", name))
	}
	if len(results) == 2 && !results[1].IsNil() {
		if e, ok := results[1].Interface().(error); ok {
			return nil, m.accessorError(name, e)
		}
		return nil, m.accessorError(name, fmt.Errorf("%s returned a non-error second value", name))
	}
	entries, err := stringLists(results[0])
	if err != nil {
		return nil, m.accessorError(name, err)
	}
	return entries, nil
}

func (m ScriptManifest) accessorError(name string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("manifest %s: accessor %s", m.path, name)).
		WithCause(cause)
}

// stringLists accepts map[string]string, map[string][]string and maps whose
// values are interfaces holding either.
func stringLists(value reflect.Value) (map[string][]string, error) {
	switch typed := value.Interface().(type) {
	case map[string]string:
		out := make(map[string][]string, len(typed))
		for key, path := range typed {
			out[key] = []string{path}
		}
		return out, nil
	case map[string][]string:
		return typed, nil
	}
	value = unwrap(value)
	if value.Kind() != reflect.Map || value.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected a map keyed by string, got %s", value.Type())
	}
	out := make(map[string][]string, value.Len())
	iter := value.MapRange()
	for iter.Next() {
		elem := unwrap(iter.Value())
		switch elem.Kind() {
		case reflect.String:
			out[iter.Key().String()] = []string{elem.String()}
		case reflect.Slice:
			paths := make([]string, 0, elem.Len())
			for i := 0; i < elem.Len(); i++ {
				item := unwrap(elem.Index(i))
				if item.Kind() != reflect.String {
					return nil, fmt.Errorf("entry %s holds a non-string path", iter.Key().String())
				}
				paths = append(paths, item.String())
			}
			out[iter.Key().String()] = paths
		default:
			return nil, fmt.Errorf("entry %s must be a path or a list of paths", iter.Key().String())
		}
	}
	return out, nil
}

func unwrap(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}
	return value
}

func sortedKeys(values map[string][]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var _ ports.ManifestPort = ScriptManifest{}
