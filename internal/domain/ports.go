package domain

// ConfigLoader loads project configuration from a project root.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// DocumentStore reads templates and persists generated documents and reports.
type DocumentStore interface {
	ReadTemplate(path string) (string, error)
	WriteDocument(path, content string) error
	WriteReport(path string, report *ValidationReport) error
}

// CommitResolver reports version-control information for metadata stamping.
type CommitResolver interface {
	IsRepo(path string) bool
	CommitHash(path string) (string, error)
}
