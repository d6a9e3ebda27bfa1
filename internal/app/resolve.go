package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autoloader/internal/types"
)

// Resolve builds a loader, installs it on a fresh runtime and requires every
// symbol through the runtime's hook chain.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	var symbols []string
	for _, symbol := range req.Symbols {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one symbol is required")
	}
	if s.NewRuntime == nil {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no runtime configured")
	}

	runtime := s.NewRuntime()
	loader, err := s.newLoader(ctx, req.LoadRequest, runtime)
	if err != nil {
		return ResolveResult{}, err
	}
	loader.Register(runtime)
	defer loader.Unregister()

	explicit := map[string]string{}
	for _, class := range loader.ClassMap() {
		explicit[class.Symbol] = class.Path
	}

	var result ResolveResult
	for _, symbol := range symbols {
		resolved, err := runtime.Require(ctx, symbol)
		if err != nil {
			return ResolveResult{}, err
		}
		if !resolved.Found() {
			result.Missing = append(result.Missing, symbol)
			continue
		}
		entry := ResolveEntry{Symbol: symbol, Kind: resolved.Kind, Path: resolved.Path}
		if resolved.Kind == types.ResultResolved {
			entry.Path = explicit[symbol]
		}
		result.Entries = append(result.Entries, entry)
	}
	result.LoadedFiles = runtime.LoadedFiles()
	return result, nil
}
