package sniffer

import "fmt"

// ConfigError reports a corpus problem that makes a run impossible: the
// directory is missing, is not a directory, or holds no .json files. It is
// raised before any accumulation, so no partial report can follow it.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
