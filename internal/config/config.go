// Package config provides configuration structures and loading for roundsniff.
package config

// Config represents the complete application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus" mapstructure:"corpus"`
	Sampling SamplingConfig `yaml:"sampling" mapstructure:"sampling"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// CorpusConfig locates the directory of round files to scan.
type CorpusConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// SamplingConfig bounds how much of the corpus one run reads. The caps are
// plain truncation in encounter order, not random sampling, so repeated runs
// over the same corpus see the same records.
type SamplingConfig struct {
	MaxFiles          int `yaml:"max_files" mapstructure:"max_files"`
	MaxRecordsPerFile int `yaml:"max_records_per_file" mapstructure:"max_records_per_file"`
	MaxSampleValues   int `yaml:"max_sample_values" mapstructure:"max_sample_values"`
}

// ReportConfig sizes the report sections.
type ReportConfig struct {
	TopKeys    int  `yaml:"top_keys" mapstructure:"top_keys"`
	SampleKeys int  `yaml:"sample_keys" mapstructure:"sample_keys"`
	TopShapes  int  `yaml:"top_shapes" mapstructure:"top_shapes"`
	Color      bool `yaml:"color" mapstructure:"color"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir: "rounds",
		},
		Sampling: SamplingConfig{
			MaxFiles:          200,
			MaxRecordsPerFile: 25,
			MaxSampleValues:   5,
		},
		Report: ReportConfig{
			TopKeys:    40,
			SampleKeys: 30,
			TopShapes:  5,
			Color:      true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(dir string, maxFiles, maxRecords int, logLevel, logFormat string, noColor bool) {
	if dir != "" {
		c.Corpus.Dir = dir
	}
	if maxFiles > 0 {
		c.Sampling.MaxFiles = maxFiles
	}
	if maxRecords > 0 {
		c.Sampling.MaxRecordsPerFile = maxRecords
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if noColor {
		c.Report.Color = false
	}
}
