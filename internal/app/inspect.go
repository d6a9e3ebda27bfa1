package app

import (
	"context"
	"strings"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	loader, err := s.newLoader(ctx, req.LoadRequest, nil)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		BaseDir:    loader.BaseDir,
		Namespaces: loader.Namespaces(),
		ClassMap:   loader.ClassMap(),
	}
	if prefix := strings.TrimSpace(req.Prefix); prefix != "" {
		result.Prefix = prefix
		result.PrefixPaths = loader.NamespacePaths(prefix)
	}
	return result, nil
}
