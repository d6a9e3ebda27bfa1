package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autoloader/internal/core"
	"autoloader/internal/policies"
)

// Dump writes an optimized manifest: the namespace table plus a class map
// listing every symbol found under it.
func (s Service) Dump(ctx context.Context, req DumpRequest) (DumpResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return DumpResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output manifest path is required")
	}
	policy, err := policies.NewExcludePolicy(req.Excludes...)
	if err != nil {
		return DumpResult{}, err
	}
	loader, err := s.newLoader(ctx, req.LoadRequest, nil)
	if err != nil {
		return DumpResult{}, err
	}
	classes, err := core.NewClassMapBuilder(s.Scanner, policy).Build(ctx, loader)
	if err != nil {
		return DumpResult{}, err
	}
	namespaces := loader.Namespaces()
	if err := s.Writer.Write(output, loader.BaseDir, classes, namespaces); err != nil {
		return DumpResult{}, err
	}
	log.Ctx(ctx).Debug().Str("output", output).Int("classes", len(classes)).Msg("manifest written")
	return DumpResult{Output: output, Classes: len(classes), Namespaces: len(namespaces)}, nil
}
