package application

import (
	"os"
	"path/filepath"

	"github.com/docforge/docforge/internal/domain"
)

// HealthService is the operational pre-flight probe over the paths the
// generator depends on. It is not part of the generation pipeline.
type HealthService struct{}

// NewHealthService creates a HealthService.
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check reports whether the template file, template directory, and output
// directory exist.
func (s *HealthService) Check(templatePath, outputPath string) *domain.HealthStatus {
	health := &domain.HealthStatus{
		Healthy:           true,
		Issues:            []string{},
		TemplateExists:    exists(templatePath),
		TemplateDirExists: exists(filepath.Dir(templatePath)),
		OutputDirExists:   exists(filepath.Dir(outputPath)),
	}

	if !health.TemplateDirExists {
		health.Healthy = false
		health.Issues = append(health.Issues, "Template directory does not exist")
	}
	if !health.OutputDirExists {
		health.Healthy = false
		health.Issues = append(health.Issues, "Output directory does not exist")
	}
	if !health.TemplateExists {
		health.Healthy = false
		health.Issues = append(health.Issues, "Template file does not exist")
	}

	return health
}

// exists probes a path by opening it, releasing the handle immediately.
func exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
