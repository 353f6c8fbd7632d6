package domain

// HealthStatus is the result of the pre-flight probe over the files and
// directories the generator depends on.
type HealthStatus struct {
	Healthy           bool     `json:"healthy"`
	Issues            []string `json:"issues"`
	TemplateExists    bool     `json:"template_exists"`
	TemplateDirExists bool     `json:"template_dir_exists"`
	OutputDirExists   bool     `json:"output_dir_exists"`
}
