package config

// OutputConfig controls where and how the generated URL list is written.
type OutputConfig struct {
	OutputFile     string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	Format         string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,outputformat"`
	IncludeSummary bool   `json:"include_summary" yaml:"include_summary"`
	Unique         bool   `json:"unique" yaml:"unique"`
}

// NewDefaultOutputConfig writes a text list with summary to stdout.
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format:         DefaultOutputFormat,
		IncludeSummary: DefaultOutputIncludeSummary,
	}
}
