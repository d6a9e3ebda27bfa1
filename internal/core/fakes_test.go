package core

import (
	"context"
	"slices"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

type fakeFiles struct {
	existing map[string]bool
	failing  map[string]error
	attempts []string
	loaded   []string
}

func newFakeFiles(existing ...string) *fakeFiles {
	files := &fakeFiles{existing: map[string]bool{}, failing: map[string]error{}}
	for _, path := range existing {
		files.existing[path] = true
	}
	return files
}

func (f *fakeFiles) Load(path string) (bool, error) {
	f.attempts = append(f.attempts, path)
	if err, ok := f.failing[path]; ok {
		return false, err
	}
	if !f.existing[path] {
		return false, nil
	}
	if !slices.Contains(f.loaded, path) {
		f.loaded = append(f.loaded, path)
	}
	return true, nil
}

type fakeHook struct {
	id   ports.HookID
	hook ports.Hook
}

type fakeHost struct {
	hooks  []fakeHook
	nextID ports.HookID
}

func newFakeHost() *fakeHost {
	return &fakeHost{}
}

func (h *fakeHost) RegisterHook(hook ports.Hook, prepend bool) ports.HookID {
	h.nextID++
	entry := fakeHook{id: h.nextID, hook: hook}
	if prepend {
		h.hooks = append([]fakeHook{entry}, h.hooks...)
	} else {
		h.hooks = append(h.hooks, entry)
	}
	return entry.id
}

func (h *fakeHost) UnregisterHook(id ports.HookID) bool {
	before := len(h.hooks)
	h.hooks = slices.DeleteFunc(h.hooks, func(entry fakeHook) bool {
		return entry.id == id
	})
	return len(h.hooks) != before
}

func (h *fakeHost) trigger(ctx context.Context, symbol string) (types.Result, error) {
	for _, entry := range h.hooks {
		result, err := entry.hook(ctx, symbol)
		if err != nil || result.Found() {
			return result, err
		}
	}
	return types.Result{}, nil
}

type fakeManifest struct {
	classes       []types.ClassMapping
	namespaces    []types.NamespaceMapping
	classErr      error
	namespacesErr error
}

func (m fakeManifest) ClassMap() ([]types.ClassMapping, error) {
	return m.classes, m.classErr
}

func (m fakeManifest) PrefixesPSR4() ([]types.NamespaceMapping, error) {
	return m.namespaces, m.namespacesErr
}

type fakeManifestSource struct {
	manifests map[string]ports.ManifestPort
	err       error
}

func (s fakeManifestSource) Open(path string) (ports.ManifestPort, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	manifest, ok := s.manifests[path]
	return manifest, ok, nil
}

type fakeScanner struct {
	files map[string][]string
	err   error
}

func (s fakeScanner) Scan(dir string, ext string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.files[dir], nil
}

type fakePolicy struct {
	excluded map[string]bool
}

func (p fakePolicy) Excluded(relPath string) bool {
	return p.excluded[relPath]
}
