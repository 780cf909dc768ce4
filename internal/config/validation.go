package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Corpus.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "corpus.dir",
			Message: "directory is required",
		})
	}

	errors = append(errors, c.validateSampling()...)
	errors = append(errors, c.validateReport()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSampling() ValidationErrors {
	var errors ValidationErrors

	if c.Sampling.MaxFiles <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sampling.max_files",
			Message: "must be greater than zero",
		})
	}
	if c.Sampling.MaxRecordsPerFile <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sampling.max_records_per_file",
			Message: "must be greater than zero",
		})
	}
	if c.Sampling.MaxSampleValues <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sampling.max_sample_values",
			Message: "must be greater than zero",
		})
	}

	return errors
}

func (c *Config) validateReport() ValidationErrors {
	var errors ValidationErrors

	if c.Report.TopKeys <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.top_keys",
			Message: "must be greater than zero",
		})
	}
	if c.Report.SampleKeys <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.sample_keys",
			Message: "must be greater than zero",
		})
	}
	if c.Report.TopShapes <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.top_shapes",
			Message: "must be greater than zero",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (must be json or text)", c.Logging.Format),
		})
	}

	return errors
}
