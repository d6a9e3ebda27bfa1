package app

import (
	"autoloader/internal/adapters"
	"autoloader/internal/ports"
)

type Service struct {
	Manifests  ports.ManifestSourcePort
	Scanner    ports.ClassScannerPort
	Writer     ports.ManifestWriterPort
	NewRuntime func() ports.RuntimePort
}

func NewService() Service {
	return Service{
		Manifests: adapters.NewManifestFileAdapter(),
		Scanner:   adapters.NewClassScannerAdapter(),
		Writer:    adapters.NewManifestWriterAdapter(),
		NewRuntime: func() ports.RuntimePort {
			return adapters.NewSourceRuntime()
		},
	}
}
