// Package report renders the sniffer's counters as labeled text sections on
// an io.Writer. The section order is fixed; downstream eyes get used to it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/fairwaydata/roundsniff/internal/classify"
	"github.com/fairwaydata/roundsniff/internal/jsonval"
	"github.com/fairwaydata/roundsniff/internal/sniffer"
)

// keyColumnWidth is the padded width of the key column in the frequency table.
const keyColumnWidth = 30

// Config sizes the report sections.
type Config struct {
	TopKeys    int
	SampleKeys int
	TopShapes  int
	Color      bool
}

var headerStyle = color.New(color.FgCyan, color.OpBold)

// renderer writes report text, remembering the first write error so section
// code stays free of error plumbing.
type renderer struct {
	w     io.Writer
	color bool
	err   error
}

func (r *renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) header(title string) {
	if r.color {
		r.printf("\n%s\n", headerStyle.Sprint(title))
		return
	}
	r.printf("\n%s\n", title)
}

// Render writes the full report: key frequencies, sample values, heuristic
// field candidates, and shape fingerprints.
func Render(w io.Writer, agg *sniffer.Aggregate, cfg Config) error {
	r := &renderer{w: w, color: cfg.Color}
	r.topKeys(agg, cfg.TopKeys)
	r.sampleValues(agg, cfg.SampleKeys)
	r.fieldCandidates(agg)
	r.shapes(agg, cfg.TopShapes)
	return r.err
}

// RenderTopKeys writes only the key-frequency section.
func RenderTopKeys(w io.Writer, agg *sniffer.Aggregate, cfg Config) error {
	r := &renderer{w: w, color: cfg.Color}
	r.topKeys(agg, cfg.TopKeys)
	return r.err
}

// RenderShapes writes only the shape-fingerprint section.
func RenderShapes(w io.Writer, agg *sniffer.Aggregate, cfg Config) error {
	r := &renderer{w: w, color: cfg.Color}
	r.shapes(agg, cfg.TopShapes)
	return r.err
}

func (r *renderer) topKeys(agg *sniffer.Aggregate, n int) {
	r.header("=== TOP KEYS (most common) ===")
	for _, kc := range agg.TopKeys(n) {
		r.printf("%s  %d\n", runewidth.FillRight(kc.Key, keyColumnWidth), kc.Count)
	}
}

func (r *renderer) sampleValues(agg *sniffer.Aggregate, n int) {
	r.header("=== SAMPLE VALUES (first few) ===")

	keys := agg.Keys()
	if len(keys) > n {
		keys = keys[:n]
	}
	for _, k := range keys {
		r.printf("\n%s:\n", k)
		for _, v := range agg.Samples(k) {
			r.printf("  %s\n", v)
		}
	}
}

func (r *renderer) fieldCandidates(agg *sniffer.Aggregate) {
	r.header("=== HEURISTIC FIELD CANDIDATES ===")

	groups := classify.Groups(agg.Keys())
	for _, category := range classify.Categories {
		r.printf("%s: [%s]\n", category, strings.Join(groups[category], ", "))

		if category == "date" {
			if iso := isoLikeKeys(agg, groups[category]); len(iso) > 0 {
				r.printf("  iso-like samples: [%s]\n", strings.Join(iso, ", "))
			}
		}
	}
}

// isoLikeKeys returns the date-candidate keys that have at least one string
// sample resembling an ISO date.
func isoLikeKeys(agg *sniffer.Aggregate, keys []string) []string {
	var out []string
	for _, k := range keys {
		for _, v := range agg.Samples(k) {
			if v.Kind == jsonval.String && classify.LooksLikeDate(v.Str) {
				out = append(out, k)
				break
			}
		}
	}
	return out
}

func (r *renderer) shapes(agg *sniffer.Aggregate, n int) {
	r.header("=== MOST COMMON ROUND SHAPES (key sets) ===")
	for _, shape := range agg.TopShapes(n) {
		r.printf("\nCount: %d\n", shape.Count)
		r.printf("Keys: [%s]\n", strings.Join(shape.Keys, ", "))
	}
}
