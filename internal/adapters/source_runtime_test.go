package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoloader/internal/ports"
	"autoloader/internal/types"
)

const alphaUnit = `package main

type RuntimeAlpha struct{}

func RuntimeAlphaName() string { return "alpha" }
`

const betaUnit = `package main

func RuntimeBetaName() string { return RuntimeAlphaName() + "-beta" }
`

func TestSourceRuntime_LoadOnce(t *testing.T) {
	dir := t.TempDir()
	alpha := writeTestFile(t, dir, "Alpha.go", alphaUnit)
	beta := writeTestFile(t, dir, "Beta.go", betaUnit)

	runtime := NewSourceRuntime()
	ok, err := runtime.Load(alpha)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second load of the same unit must not redeclare its symbols.
	ok, err = runtime.Load(alpha)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = runtime.Load(beta)
	require.NoError(t, err)
	assert.True(t, ok)

	value, err := runtime.Eval("RuntimeBetaName()")
	require.NoError(t, err)
	assert.Equal(t, "alpha-beta", value.String())
	assert.Equal(t, []string{alpha, beta}, runtime.LoadedFiles())
}

func TestSourceRuntime_LoadMissing(t *testing.T) {
	dir := t.TempDir()
	runtime := NewSourceRuntime()

	ok, err := runtime.Load(filepath.Join(dir, "Missing.go"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = runtime.Load(dir)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, runtime.LoadedFiles())
}

func TestSourceRuntime_LoadBrokenUnit(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "Broken.go", "package main\n\nfunc Broken( {\n")
	runtime := NewSourceRuntime()

	ok, err := runtime.Load(path)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Empty(t, runtime.LoadedFiles())
}

type recordingHook struct {
	name    string
	defines map[string]types.Result
	calls   *[]string
}

func (h recordingHook) resolve(_ context.Context, symbol string) (types.Result, error) {
	*h.calls = append(*h.calls, h.name+":"+symbol)
	return h.defines[symbol], nil
}

func TestSourceRuntime_HookChainOrder(t *testing.T) {
	var calls []string
	runtime := NewSourceRuntime()
	runtime.RegisterHook(recordingHook{name: "first", calls: &calls}.resolve, false)
	runtime.RegisterHook(recordingHook{name: "second", calls: &calls}.resolve, false)
	runtime.RegisterHook(recordingHook{name: "front", calls: &calls}.resolve, true)

	result, err := runtime.Require(context.Background(), `Demo\Nothing`)
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Equal(t, []string{`front:Demo\Nothing`, `first:Demo\Nothing`, `second:Demo\Nothing`}, calls)
}

func TestSourceRuntime_RequireCachesHits(t *testing.T) {
	var calls []string
	runtime := NewSourceRuntime()
	hook := recordingHook{
		name:    "loader",
		calls:   &calls,
		defines: map[string]types.Result{`Demo\Hit`: types.ResolvedAt("/src/Demo/Hit.go")},
	}
	runtime.RegisterHook(hook.resolve, false)

	for i := 0; i < 2; i++ {
		result, err := runtime.Require(context.Background(), `Demo\Hit`)
		require.NoError(t, err)
		assert.Equal(t, types.ResolvedAt("/src/Demo/Hit.go"), result)
	}
	assert.True(t, runtime.Defined(`Demo\Hit`))
	assert.Equal(t, []string{`loader:Demo\Hit`}, calls)

	// Misses are asked again every time.
	for i := 0; i < 2; i++ {
		_, err := runtime.Require(context.Background(), `Demo\Miss`)
		require.NoError(t, err)
	}
	assert.False(t, runtime.Defined(`Demo\Miss`))
	assert.Len(t, calls, 3)
}

func TestSourceRuntime_RequireStopsAtFirstHit(t *testing.T) {
	var calls []string
	runtime := NewSourceRuntime()
	runtime.RegisterHook(recordingHook{
		name:    "first",
		calls:   &calls,
		defines: map[string]types.Result{`Demo\Hit`: types.Resolved()},
	}.resolve, false)
	runtime.RegisterHook(recordingHook{name: "second", calls: &calls}.resolve, false)

	result, err := runtime.Require(context.Background(), `Demo\Hit`)
	require.NoError(t, err)
	assert.Equal(t, types.ResultResolved, result.Kind)
	assert.Equal(t, []string{`first:Demo\Hit`}, calls)
}

func TestSourceRuntime_RequirePropagatesHookErrors(t *testing.T) {
	boom := errors.New("boom")
	runtime := NewSourceRuntime()
	runtime.RegisterHook(func(context.Context, string) (types.Result, error) {
		return types.Result{}, boom
	}, false)

	_, err := runtime.Require(context.Background(), `Demo\Hit`)
	require.ErrorIs(t, err, boom)
	assert.False(t, runtime.Defined(`Demo\Hit`))
}

func TestSourceRuntime_UnregisterHook(t *testing.T) {
	var calls []string
	runtime := NewSourceRuntime()
	id := runtime.RegisterHook(recordingHook{name: "gone", calls: &calls}.resolve, false)

	assert.True(t, runtime.UnregisterHook(id))
	assert.False(t, runtime.UnregisterHook(id))
	assert.False(t, runtime.UnregisterHook(ports.HookID(99)))

	_, err := runtime.Require(context.Background(), `Demo\Hit`)
	require.NoError(t, err)
	assert.Empty(t, calls)
}
