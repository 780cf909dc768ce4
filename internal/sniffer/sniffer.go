// Package sniffer implements the single-pass schema scan over a corpus of
// JSON round files. It owns no state beyond the counters of one run.
package sniffer

import (
	"fmt"
	"os"

	"github.com/fairwaydata/roundsniff/internal/jsonval"
	"github.com/fairwaydata/roundsniff/internal/logger"
)

// SamplingConfig bounds how much of the corpus one run reads.
type SamplingConfig struct {
	MaxFiles          int
	MaxRecordsPerFile int
	MaxSampleValues   int
}

// Stats counts what one run saw, sampled, and silently dropped.
type Stats struct {
	FilesSampled     int // files that contributed at least a resolved sequence
	FilesSkipped     int // files with no usable record sequence
	RecordsSampled   int
	RecordsDiscarded int // sequence entries that were not objects
}

// Run scans dir sequentially and returns the accumulated counters.
//
// A missing or empty directory fails with *ConfigError before anything is
// read. A file that does not parse as JSON aborts the whole run; files and
// records with merely unexpected shapes are skipped and only show up in
// Stats. That asymmetry is deliberate: a syntax error means the corpus is
// not what the caller thinks it is, a shape mismatch is ordinary
// heterogeneity.
func Run(dir string, sampling SamplingConfig, log *logger.Logger) (*Aggregate, *Stats, error) {
	files, err := listCorpus(dir, sampling.MaxFiles)
	if err != nil {
		return nil, nil, err
	}
	log.WithDir(dir).Debugf("sampling %d files", len(files))

	agg := NewAggregate(sampling.MaxSampleValues)
	stats := &Stats{}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}

		doc, err := jsonval.Parse(data)
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}

		records, discarded, ok := extractRecords(doc, sampling.MaxRecordsPerFile)
		if !ok {
			stats.FilesSkipped++
			log.WithFile(path).Debug("no usable round sequence, skipping")
			continue
		}

		stats.FilesSampled++
		stats.RecordsSampled += len(records)
		stats.RecordsDiscarded += discarded

		for _, r := range records {
			agg.Add(r)
		}
	}

	log.Infof("sampled %d records from %d files (%d files skipped, %d records discarded)",
		stats.RecordsSampled, stats.FilesSampled, stats.FilesSkipped, stats.RecordsDiscarded)
	return agg, stats, nil
}
